package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// createDeleteCommand создает команду delete с привязкой к экземпляру приложения
func (app *Application) createDeleteCommand(ctx context.Context) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete your track by ID",
		Long:  `Delete a track from the catalog. Requires your Moltbook API key; only the publishing agent can delete its track.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.deleteTrack(ctx, args[0], token)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Moltbook API-ключ (обязательно)")

	return cmd
}

func (app *Application) deleteTrack(ctx context.Context, id string, token string) error {
	if err := app.Repo.Delete(ctx, id, token); err != nil {
		return fmt.Errorf("ошибка удаления трека: %w", err)
	}

	fmt.Println("✅ Трек удален из каталога")
	return nil
}
