package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/devdash-backend/internal/auth"
	"github.com/heartmarshall/devdash-backend/internal/domain"
)

// newTokenCmd mints an access token signed with the configured secret, for
// local development against a running server.
func newTokenCmd() *cobra.Command {
	var (
		subject  string
		email    string
		name     string
		fullName string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			id := uuid.New()
			if subject != "" {
				if id, err = uuid.Parse(subject); err != nil {
					return fmt.Errorf("invalid --sub: %w", err)
				}
			}

			tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
			token, err := tokens.GenerateAccessToken(domain.Principal{
				ID:       id,
				Email:    email,
				Name:     name,
				FullName: fullName,
			})
			if err != nil {
				return fmt.Errorf("generate token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "sub", "", "user id (random when empty)")
	cmd.Flags().StringVar(&email, "email", "", "email claim")
	cmd.Flags().StringVar(&name, "name", "", "display name claim")
	cmd.Flags().StringVar(&fullName, "full-name", "", "full name claim")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
