package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/brand-showcase/internal/adapter"
	"github.com/MKhiriev/brand-showcase/internal/config"
	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/internal/store"
	"github.com/MKhiriev/brand-showcase/models"
)

// cli carries the dependencies and persistent flags shared by every
// subcommand.
type cli struct {
	openDB    func(ctx context.Context, cfg config.DB, log *logger.Logger) (*store.DB, error)
	newClient func(address string, timeout time.Duration, log *logger.Logger) (adapter.SiteClient, error)
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	configPath string
	dbDriver   string
	dsn        string
	logLevel   string
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "siteadmin",
		Short:         "Administrative tasks for the brand-showcase server",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.SetLevel(c.logLevel)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "JSON config file path")
	flags.StringVar(&c.dbDriver, "db-driver", "", "database driver (postgres|sqlite)")
	flags.StringVar(&c.dsn, "dsn", "", "database DSN")
	flags.StringVar(&c.logLevel, "log-level", "warn", "log level")

	root.AddCommand(
		newMigrateCmd(c),
		newCreateAdminCmd(c),
		newPurgeSessionsCmd(c),
		newCheckCmd(c),
		newVersionCmd(c),
	)

	return root
}

// storageConfig resolves the storage section from the usual config sources.
// The persistent flags are handed to the config loader as its own flags, so
// environment variables still take precedence over them.
func (c *cli) storageConfig() (*config.StructuredConfig, error) {
	var args []string
	if c.configPath != "" {
		args = append(args, "-c", c.configPath)
	}
	if c.dbDriver != "" {
		args = append(args, "-db-driver", c.dbDriver)
	}
	if c.dsn != "" {
		args = append(args, "-d", c.dsn)
	}

	cfg, err := config.LoadStorage(args)
	if err != nil {
		return nil, fmt.Errorf("error loading configs: %w", err)
	}
	return cfg, nil
}

// connect opens the configured database. Migrations are applied when
// migrate is set.
func (c *cli) connect(ctx context.Context, migrate bool) (*store.DB, error) {
	cfg, err := c.storageConfig()
	if err != nil {
		return nil, err
	}

	db, err := c.openDB(ctx, cfg.Storage.DB, c.logger)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if migrate {
		if err = db.Migrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("error applying migrations: %w", err)
		}
	}
	return db, nil
}

func newVersionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			c.buildInfo.Fprint(cmd.OutOrStdout())
		},
	}
}
