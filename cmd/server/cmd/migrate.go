package cmd

import (
	"bookshelf/internal/infrastructure/migration"

	"github.com/spf13/cobra"
)

func newMigrateCmd(e *env) *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Применить или откатить миграции схемы",
		RunE: func(_ *cobra.Command, _ []string) error {
			m := migration.NewMigration(e.cfg.DB.URI(), nil, e.log)
			if down {
				return m.Down()
			}
			return m.Up()
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "Откатить все миграции")

	return cmd
}
