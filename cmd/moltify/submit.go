package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hazadus/moltify/internal/submit"
)

// createSubmitCommand создает команду submit с привязкой к экземпляру приложения
func (app *Application) createSubmitCommand(ctx context.Context) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "submit [file path]",
		Short: "Submit a track to the catalog",
		Long:  `Submit a track described by a JSON file (title, genre, duration, code). With --token the track is published under your Moltbook identity.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.submitTrack(ctx, args[0], token)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Moltbook API-ключ (необязательно)")

	return cmd
}

func (app *Application) submitTrack(ctx context.Context, filePath string, token string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("ошибка чтения файла трека: %w", err)
	}

	var sub submit.Submission
	if err := json.Unmarshal(data, &sub); err != nil {
		return fmt.Errorf("ошибка разбора файла трека: %w", err)
	}

	public, err := app.Repo.Create(ctx, sub, token)
	if err != nil {
		return fmt.Errorf("ошибка публикации трека: %w", err)
	}

	fmt.Println("✅ Трек опубликован!")
	fmt.Printf("   ID: %s\n", public.ID)
	fmt.Printf("   Название: %s\n", public.Title)
	fmt.Printf("   Исполнитель: %s\n", public.Artist)
	fmt.Printf("   Жанр: %s\n", public.Genre)
	fmt.Printf("   URL: %s\n", public.URL)

	return nil
}
