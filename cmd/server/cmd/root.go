package cmd

import (
	"fmt"

	"bookshelf/internal/app/server/config"
	"bookshelf/internal/utils/logger"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

// env - общее для подкоманд состояние, заполняется в PersistentPreRunE
type env struct {
	cfg *config.Config
	log *slog.Logger
}

func NewRootCmd() *cobra.Command {
	e := &env{}

	cmd := &cobra.Command{
		Use:   "bookshelf",
		Short: "Личный каталог книг с поиском по Open Library",
		Long: `Bookshelf - веб-приложение для ведения личного списка книг.

Книги ищутся в Open Library и сохраняются в PostgreSQL вместе с id обложки.
Настройки читаются из окружения и файла .env, SESSION_SECRET обязателен.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			e.cfg = cfg
			e.log = logger.New(cfg.Env)
			return nil
		},
	}

	cmd.AddCommand(
		newServeCmd(e),
		newMigrateCmd(e),
		newUserCmd(e),
	)

	return cmd
}
