package main

import (
	"github.com/spf13/cobra"

	"github.com/hazadus/moltify/internal/tui"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch TUI (Terminal User Interface)",
		Long:  `Launch interactive terminal user interface for browsing the catalog.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			tuiApp := tui.NewApp(app.Repo)
			return tuiApp.Run()
		},
	}
}
