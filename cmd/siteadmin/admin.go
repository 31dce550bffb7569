// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/brand-showcase/internal/crypto"
	"github.com/MKhiriev/brand-showcase/internal/store"
	"github.com/MKhiriev/brand-showcase/internal/validators"
	"github.com/MKhiriev/brand-showcase/models"
)

func newCreateAdminCmd(c *cli) *cobra.Command {
	var creds models.Credentials

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an active admin account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := validators.NewSiteValidator().Validate(ctx, creds); err != nil {
				return err
			}

			hash, err := crypto.NewPasswordHasher().Hash(creds.Password)
			if err != nil {
				return fmt.Errorf("error hashing password: %w", err)
			}

			db, err := c.connect(ctx, true)
			if err != nil {
				return err
			}
			defer db.Close()

			user, err := store.NewUserRepository(db, c.logger).CreateUser(ctx, models.User{
				Username:     creds.Username,
				PasswordHash: hash,
				Role:         models.RoleAdmin,
				IsActive:     true,
			})
			if errors.Is(err, store.ErrLoginAlreadyExists) {
				return fmt.Errorf("user %q already exists", creds.Username)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created admin %q (id %d)\n", user.Username, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&creds.Username, "username", "", "account username")
	cmd.Flags().StringVar(&creds.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newPurgeSessionsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "purge-sessions",
		Short: "Delete expired sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			db, err := c.connect(ctx, true)
			if err != nil {
				return err
			}
			defer db.Close()

			n, err := store.NewSessionRepository(db, c.logger).DeleteExpiredSessions(ctx, time.Now().UTC())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d expired sessions\n", n)
			return nil
		},
	}
}
