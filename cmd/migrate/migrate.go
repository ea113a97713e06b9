package migrate

import (
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
)

func GetMigrateCmd(dbURL string) *cobra.Command {
	var down bool

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Run: func(cmd *cobra.Command, args []string) {
			m, err := migrate.New(
				"file://migrations",
				dbURL,
			)
			if err != nil {
				log.Fatal("❌ Failed to initialize migrations:", err)
			}

			if down {
				if err := m.Down(); err != nil {
					if errors.Is(err, migrate.ErrNoChange) {
						fmt.Println("⚠️ No migrations to rollback.")
						return
					}
					log.Fatal("❌ Failed to apply down migrations:", err)
				}
				fmt.Println("✅ Migrations rolled back successfully!")
				return
			}

			if err := m.Up(); err != nil {
				if errors.Is(err, migrate.ErrNoChange) {
					fmt.Println("⚠️ No new migrations to apply.")
					return
				}
				log.Fatal("❌ Failed to apply up migrations:", err)
			}

			fmt.Println("✅ Migrations applied successfully!")
		},
	}

	migrateCmd.Flags().BoolVarP(&down, "down", "d", false, "Rollback migrations")

	return migrateCmd
}
