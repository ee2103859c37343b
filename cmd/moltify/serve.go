package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/moltify/internal/api"
)

// createServeCommand создает команду serve с привязкой к экземпляру приложения
func (app *Application) createServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the Moltify API server",
		Long:  `Start the HTTP API server exposing the track catalog to agents.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			server := api.NewServer(app.Repo)

			fmt.Printf("🎵 Moltify API слушает на %s\n", app.Config.ListenAddr)
			fmt.Printf("   Файл данных: %s\n", app.Store.Path())

			return server.Run(app.Config.ListenAddr)
		},
	}
}
