package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/brand-showcase/internal/adapter"
	"github.com/MKhiriev/brand-showcase/models"
)

var errCheckFailed = errors.New("check failed")

func newCheckCmd(c *cli) *cobra.Command {
	var (
		address string
		timeout time.Duration
		creds   models.Credentials
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Smoke test a running server: health, login, whoami, logout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			client, err := c.newClient(address, timeout, c.logger)
			if err != nil {
				return err
			}

			health, err := client.Health(ctx)
			if err != nil {
				return fmt.Errorf("%w: health: %w", errCheckFailed, err)
			}
			fmt.Fprintf(out, "health: %s (version %s)\n", health.Status, health.Version)

			if _, err = client.Login(ctx, creds); err != nil {
				return fmt.Errorf("%w: login: %w", errCheckFailed, err)
			}
			fmt.Fprintln(out, "login: ok")

			me, err := client.CurrentUser(ctx)
			if err != nil {
				return fmt.Errorf("%w: current user: %w", errCheckFailed, err)
			}
			if me.Username != creds.Username {
				return fmt.Errorf("%w: session belongs to %q", errCheckFailed, me.Username)
			}
			fmt.Fprintf(out, "whoami: %s (%s)\n", me.Username, me.Role)

			if err = client.Logout(ctx); err != nil {
				return fmt.Errorf("%w: logout: %w", errCheckFailed, err)
			}
			if _, err = client.CurrentUser(ctx); !errors.Is(err, adapter.ErrUnauthorized) {
				return fmt.Errorf("%w: session still valid after logout", errCheckFailed)
			}
			fmt.Fprintln(out, "logout: ok")

			return nil
		},
	}

	cmd.Flags().StringVar(&address, "url", "http://localhost:8080", "server base URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "per-request timeout")
	cmd.Flags().StringVar(&creds.Username, "username", "", "account username")
	cmd.Flags().StringVar(&creds.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
