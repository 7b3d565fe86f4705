package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cvlsoft/aios_backend/config"
	"github.com/cvlsoft/aios_backend/internal/repo"
	"github.com/cvlsoft/aios_backend/pkg/database"
)

func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the lead store (indexes)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			if timeout <= 0 {
				timeout = 30 * time.Second
			}
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			fmt.Println("Connecting to lead store...")
			client, err := database.NewMongo(ctx, cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to mongo: %w", err)
			}
			defer client.Disconnect(context.Background())

			leads := repo.NewLeadRepository(client.Database(cfg.Database.Name))
			if err := leads.EnsureIndexes(ctx); err != nil {
				return fmt.Errorf("failed to create indexes: %w", err)
			}

			fmt.Println("Lead store initialized successfully.")
			return nil
		},
	}

	return cmd
}
