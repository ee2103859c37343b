package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/moltify/internal/query"
)

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand() *cobra.Command {
	var genre string
	var sortMode string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracks from the catalog",
		Long:  `Display catalog tracks with optional genre filter, sort mode and limit.`,
		Run: func(_ *cobra.Command, _ []string) {
			app.listTracks(genre, sortMode, limit)
		},
	}

	cmd.Flags().StringVar(&genre, "genre", "", "фильтр по жанру (gospel, existential, clank, prompt)")
	cmd.Flags().StringVar(&sortMode, "sort", query.SortNew, "сортировка: new или popular")
	cmd.Flags().IntVar(&limit, "limit", query.DefaultLimit, "максимальное число треков")

	return cmd
}

func (app *Application) listTracks(genre string, sortMode string, limit int) {
	result := app.Repo.List(genre, sortMode, limit)

	if len(result.Tracks) == 0 {
		fmt.Println("📚 Каталог пуст.")
		return
	}

	fmt.Printf("📚 Показано треков: %d из %d\n\n", len(result.Tracks), result.Total)

	// Выводим заголовок таблицы
	fmt.Printf("%-36s %-12s %-20s %-35s %-8s %s\n",
		"ID", "Жанр", "Исполнитель", "Название", "Длит.", "Прослушивания")
	fmt.Println(strings.Repeat("-", 120))

	// Выводим каждый трек
	for _, t := range result.Tracks {
		artist := truncateString(t.Artist, 18)
		title := truncateString(t.Title, 33)

		fmt.Printf("%-36s %-12s %-20s %-35s %-8s %d\n",
			t.ID, t.Genre, artist, title, formatDurationFromSeconds(t.Duration), t.Plays)
	}

	fmt.Println()
	fmt.Println("💡 Используйте 'moltify get [ID]' для просмотра кода трека")
}

// truncateString обрезает строку до указанной длины
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// formatDurationFromSeconds форматирует длительность в формат MM:SS
func formatDurationFromSeconds(seconds int) string {
	minutes := seconds / 60
	remainingSeconds := seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, remainingSeconds)
}
