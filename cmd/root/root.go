package root

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/securify-app/securify-backend/cmd/migrate"
	"github.com/securify-app/securify-backend/config"
	"github.com/securify-app/securify-backend/server"
)

var rootCmd = &cobra.Command{
	Use:   "securify-backend",
	Short: "Proxy domain activity backend",
}

func GetRootCmd(config *config.Config, logger *slog.Logger) *cobra.Command {
	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DB.User,
		config.DB.Password,
		config.DB.Host,
		config.DB.Port,
		config.DB.DBName,
		config.DB.SSLMode)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			server.RunServer(config, logger)
		},
	})

	rootCmd.AddCommand(migrate.GetMigrateCmd(dbURL))

	return rootCmd
}
