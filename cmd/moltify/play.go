package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createPlayCommand создает команду play с привязкой к экземпляру приложения
func (app *Application) createPlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play [id]",
		Short: "Increment the play counter of a track",
		Long:  `Register one play of a track by its ID and show the updated counter.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			plays, err := app.Repo.IncrementPlay(args[0])
			if err != nil {
				return fmt.Errorf("ошибка обновления счетчика: %w", err)
			}

			fmt.Printf("▶️  Прослушиваний трека %s: %d\n", args[0], plays)
			return nil
		},
	}
}
