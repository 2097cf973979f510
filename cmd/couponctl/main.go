package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"couponhub/cmd/bootstrap/components"
	"couponhub/internal/handler/middleware"
	"couponhub/internal/infra/db"
	"couponhub/internal/pkg/config"
	"couponhub/internal/pkg/password"
	"couponhub/internal/usecase"
)

const commandTimeout = 30 * time.Second

var errMemoryStore = errors.New("STORE_DRIVER=memory keeps no state between processes; choose postgres or mongo")

var rootCmd = &cobra.Command{
	Use:           "couponctl",
	Short:         "Operational tooling for couponhub",
	Long:          "Admin provisioning and schema management for the couponhub API. Storage settings come from the same environment variables as the server.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [PASSWORD]",
	Short: "Print the bcrypt hash of a password",
	Args:  cobra.ExactArgs(1),
	RunE:  runHashPassword,
}

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create the admin account or replace its password",
	RunE:  runSeedAdmin,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema for the configured store",
	RunE:  runMigrate,
}

func init() {
	hashPasswordCmd.Flags().Int("cost", password.DefaultCost, "bcrypt work factor")
	seedAdminCmd.Flags().StringP("username", "u", "admin", "Admin username")
	seedAdminCmd.Flags().StringP("password", "p", "", "Admin password (defaults to $ADMIN_PASSWORD)")

	rootCmd.AddCommand(hashPasswordCmd, seedAdminCmd, migrateCmd)
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	cost, _ := cmd.Flags().GetInt("cost")
	hash, err := password.HashPasswordWithCost(args[0], cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}

func runSeedAdmin(cmd *cobra.Command, _ []string) error {
	username, _ := cmd.Flags().GetString("username")
	plain, _ := cmd.Flags().GetString("password")
	if plain == "" {
		plain = os.Getenv("ADMIN_PASSWORD")
	}

	handles, cleanup, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	adminRepo, err := components.NewAdminRepository(handles)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	saved, err := usecase.NewAdminUseCase(adminRepo).Provision(ctx, username, plain)
	if err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "admin %q ready (id %s)\n", saved.Username, saved.ID)
	return nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	// Opening the store applies the postgres schema, or converts legacy mongo rows and builds indexes.
	handles, cleanup, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Fprintf(cmd.OutOrStdout(), "%s schema up to date\n", handles.Driver)
	return nil
}

func openStore(ctx context.Context) (*db.Handles, func(), error) {
	cfg, err := config.LoadStorageConfig()
	if err != nil {
		return nil, nil, err
	}
	middleware.NewLogger(cfg.Log)

	if cfg.Store.Driver == config.StoreDriverMemory {
		return nil, nil, errMemoryStore
	}

	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	handles, cleanup, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s store: %w", cfg.Store.Driver, err)
	}
	return handles, cleanup, nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
