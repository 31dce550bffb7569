package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
)

// NetAddress is a listen address given as [host]:port. It implements
// flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags reads command-line overrides from args. Flags that are not
// given leave their field zero so lower-priority sources can fill it.
//
//	-a                server listen address, [host]:port
//	-d                database DSN
//	-db-driver        postgres or sqlite
//	-c, -config       JSON config file
//	-session-secret   cookie signing secret
//	-session-ttl      session lifetime, e.g. 8h
//	-request-timeout  per-request deadline, e.g. 30s
//	-images-backend   files or minio
//	-images-dir       upload directory for the files backend
//	-log-level        zerolog level name
func ParseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var listen NetAddress

	fs := flag.NewFlagSet("brand-showcase", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&listen, "a", "server listen address [host]:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "db-driver", "", "database driver (postgres|sqlite)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file")
	fs.StringVar(&cfg.Auth.SessionSecret, "session-secret", "", "cookie signing secret")
	fs.DurationVar(&cfg.Auth.SessionTTL, "session-ttl", 0, "session lifetime")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "per-request deadline")
	fs.StringVar(&cfg.Storage.Images.Backend, "images-backend", "", "image backend (files|minio)")
	fs.StringVar(&cfg.Storage.Images.Dir, "images-dir", "", "upload directory")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	cfg.Server.HTTPAddress = listen.String()

	return cfg, nil
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts "host:port", "[ipv6]:port" or ":port". The host, when
// present, must be localhost or an IP literal.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid port %q", portStr)
	}
	if port < 1 || port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host, a.Port = host, port
	return nil
}
