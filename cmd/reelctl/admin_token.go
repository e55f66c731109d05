// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/reelmatch/internal/auth"
	"github.com/tomtom215/reelmatch/internal/config"
)

// newAdminTokenCmd mints a bearer token for the admin cache endpoints.
// The signing secret is read only from configuration, never from a flag,
// so it does not end up in shell history.
func newAdminTokenCmd() *cobra.Command {
	var (
		user string
		ttl  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "admin-token",
		Short: "Mint an admin bearer token",
		Long:  "Signs an HS256 token with the admin role using ADMIN_JWT_SECRET from the environment or config file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if user == "" {
				return errors.New("--user is required")
			}

			cfg, err := config.LoadUnvalidated()
			if err != nil {
				return err
			}
			if !cfg.Security.AdminEnabled() {
				return errors.New("ADMIN_JWT_SECRET is not set")
			}

			m, err := auth.NewJWTManager(cfg.Security.AdminJWTSecret, ttl)
			if err != nil {
				return err
			}
			token, err := m.GenerateToken(user, auth.RoleAdmin)
			if err != nil {
				return fmt.Errorf("sign token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "Username recorded in the token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", auth.DefaultTokenTTL, "Token lifetime")
	return cmd
}
