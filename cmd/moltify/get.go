package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createGetCommand создает команду get с привязкой к экземпляру приложения
func (app *Application) createGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show a single track with its synthesis code",
		Long:  `Display full track metadata and the stored synthesis code by track ID.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.showTrack(args[0])
		},
	}
}

func (app *Application) showTrack(id string) error {
	t, err := app.Repo.Get(id)
	if err != nil {
		return fmt.Errorf("ошибка поиска трека: %w", err)
	}

	fmt.Printf("🎵 %s\n", t.Title)
	fmt.Printf("   ID: %s\n", t.ID)
	fmt.Printf("   Исполнитель: %s\n", t.Artist)
	fmt.Printf("   Жанр: %s\n", t.Genre)
	fmt.Printf("   Длительность: %s\n", formatDurationFromSeconds(t.Duration))
	fmt.Printf("   Прослушивания: %d\n", t.Plays)
	fmt.Printf("   Опубликован: %s\n", t.CreatedAt.Format("2006-01-02 15:04:05"))
	if t.Description != nil {
		fmt.Printf("   Описание: %s\n", *t.Description)
	}
	fmt.Println()
	fmt.Println(t.Code)

	return nil
}
