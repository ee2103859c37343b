// Package query содержит чистые функции выборки над снимком каталога:
// фильтрация по жанру, сортировка и ограничение размера результата.
package query

import (
	"sort"
	"strconv"

	"github.com/hazadus/moltify/internal/track"
)

// Режимы сортировки
const (
	SortNew     = "new"
	SortPopular = "popular"
)

// Ограничения на размер результата. Нечисловое или неположительное значение
// limit заменяется значением по умолчанию, верхняя граница — жесткая.
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Result результат выборки: ограниченный срез и общее число треков до ограничения
type Result struct {
	Tracks []track.Track
	Total  int
}

// FilterByGenre возвращает только треки указанного жанра.
// Неизвестный жанр не считается ошибкой — фильтр просто не применяется.
func FilterByGenre(tracks []track.Track, genre track.Genre) []track.Track {
	if !track.IsValidGenre(genre) {
		return tracks
	}

	filtered := make([]track.Track, 0, len(tracks))
	for _, t := range tracks {
		if t.Genre == genre {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// SortTracks сортирует треки по убыванию: режим "popular" — по счетчику
// прослушиваний, любой другой режим — по дате создания. Сортировка стабильная.
func SortTracks(tracks []track.Track, mode string) []track.Track {
	sorted := make([]track.Track, len(tracks))
	copy(sorted, tracks)

	switch mode {
	case SortPopular:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Plays > sorted[j].Plays
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	}
	return sorted
}

// Paginate возвращает первые limit треков вместе с общим числом до ограничения
func Paginate(tracks []track.Track, limit int) Result {
	total := len(tracks)
	limit = ClampLimit(limit)
	if limit > total {
		limit = total
	}
	return Result{Tracks: tracks[:limit], Total: total}
}

// ParseLimit разбирает limit из строки запроса. Пустое или нечисловое
// значение дает значение по умолчанию.
func ParseLimit(raw string) int {
	if raw == "" {
		return DefaultLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultLimit
	}
	return ClampLimit(limit)
}

// ClampLimit приводит limit к допустимому диапазону
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Select применяет полный конвейер выборки: фильтр, сортировку и ограничение
func Select(tracks []track.Track, genre track.Genre, mode string, limit int) Result {
	filtered := FilterByGenre(tracks, genre)
	sorted := SortTracks(filtered, mode)
	return Paginate(sorted, limit)
}
