package cmd

import (
	"bookshelf/internal/app/server"
	"bookshelf/internal/utils/logger"

	"github.com/spf13/cobra"
)

func newServeCmd(e *env) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP сервер",
		Long: `Применяет миграции и запускает HTML интерфейс и JSON API.

Сервер останавливается по Ctrl+C, незавершенным запросам дается 5 секунд.`,
		Example: `  # адрес из RUN_ADDRESS (по умолчанию :3000)
  bookshelf serve

  # переопределить адрес
  bookshelf serve --addr :8080`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				e.cfg.Server.RunAddress = addr
			}

			app, err := server.New(cmd.Context(), e.cfg, e.log)
			if err != nil {
				return err
			}
			defer func() {
				if err := app.Close(); err != nil {
					e.log.Error("close app", logger.Err(err))
				}
			}()

			return app.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Адрес для прослушивания, например :8080")

	return cmd
}
