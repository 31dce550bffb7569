// Command siteadmin runs operational tasks against a brand-showcase
// deployment: schema migrations, account bootstrap, session cleanup and a
// smoke test of a running server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/brand-showcase/internal/adapter"
	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/internal/store"
	"github.com/MKhiriev/brand-showcase/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := &cli{
		openDB:    store.Connect,
		newClient: adapter.NewHTTPSiteClient,
		buildInfo: models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		logger:    logger.New(os.Stderr, "siteadmin"),
	}

	if err := newRootCmd(c).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
