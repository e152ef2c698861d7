package system

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nutrivida/nutrivida_backend/config"
	entuser "github.com/nutrivida/nutrivida_backend/internal/repo/user"
	"github.com/nutrivida/nutrivida_backend/pkg/database"
	"github.com/nutrivida/nutrivida_backend/pkg/util/password"
)

// NewSeedCommand creates the nutritionist account. The practice runs with a
// single nutritionist, so this is a one-time setup step after migrate.
func NewSeedCommand() *cobra.Command {
	var (
		email     string
		pass      string
		firstName string
		lastName  string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the nutritionist account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			ctx := context.Background()

			exists, err := client.User.Query().
				Where(entuser.RoleEQ(entuser.RoleNutritionist)).
				Exist(ctx)
			if err != nil {
				return fmt.Errorf("failed to check existing account: %w", err)
			}
			if exists {
				fmt.Println("A nutritionist account already exists, nothing to do.")
				return nil
			}

			hash, err := password.Hash(pass)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			u, err := client.User.Create().
				SetEmail(strings.ToLower(strings.TrimSpace(email))).
				SetPasswordHash(hash).
				SetFirstName(firstName).
				SetLastName(lastName).
				SetRole(entuser.RoleNutritionist).
				SetOnboardingStep(entuser.OnboardingStepCompleted).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to create account: %w", err)
			}

			fmt.Printf("Nutritionist account created: %s (%s)\n", u.Email, u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&pass, "password", "", "account password")
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
