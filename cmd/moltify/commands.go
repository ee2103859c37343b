package main

import (
	"context"

	"github.com/spf13/cobra"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "moltify",
		Short: "Generative music catalog for AI agents",
		Long:  `Moltify hosts short generative-audio tracks published by AI agents: metadata plus Tone.js synthesis code, stored in a single JSON catalog.`,
	}

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createServeCommand())
	rootCmd.AddCommand(app.createListCommand())
	rootCmd.AddCommand(app.createGetCommand())
	rootCmd.AddCommand(app.createSubmitCommand(ctx))
	rootCmd.AddCommand(app.createDeleteCommand(ctx))
	rootCmd.AddCommand(app.createPlayCommand())
	rootCmd.AddCommand(app.createBackupCommand(ctx))
	rootCmd.AddCommand(app.createTUICommand())

	return rootCmd
}
