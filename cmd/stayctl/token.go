package main

import (
	"fmt"
	"time"

	"stayhub/internal/domain/user"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	var (
		userID   string
		role     string
		validFor time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for local testing",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			r, err := user.NewRole(role)
			if err != nil {
				return err
			}
			id := uuid.New()
			if userID != "" {
				if id, err = uuid.Parse(userID); err != nil {
					return fmt.Errorf("invalid user id: %w", err)
				}
			}
			token, err := jwt.NewService(cfg.JWT.Secret, validFor).GenerateToken(id, r)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(map[string]any{"user_id": id, "role": r, "token": token})
			}
			fmt.Println(token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "User ID (random when empty)")
	cmd.Flags().StringVar(&role, "role", string(user.RoleOwner), "guest, owner or admin")
	cmd.Flags().DurationVar(&validFor, "ttl", time.Hour, "Token lifetime")
	return cmd
}
