// Package submit проверяет допустимость присланного трека и нормализует его.
// Проверки выполняются в фиксированном порядке с остановкой на первой ошибке.
package submit

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/hazadus/moltify/internal/track"
)

// Ограничения на поля присылаемого трека
const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 500
	MaxCodeLen        = 50000
	MinDuration       = 5
	MaxDuration       = 300
)

// Denylist подстроки, запрещенные в коде трека: доступ к сети, DOM и
// глобальным объектам, динамическое исполнение и загрузка модулей.
// Это эвристический текстовый фильтр по известным опасным API, а не песочница:
// обфусцированный код он не поймает. Порядок проверки фиксирован, в отказе
// называется первый найденный токен.
var Denylist = []string{
	"fetch(",
	"XMLHttpRequest",
	"WebSocket",
	"document.",
	"window.location",
	"localStorage",
	"eval(",
	"Function(",
	"import(",
	"require(",
}

// Submission присланный трек до проверки и нормализации
type Submission struct {
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	Duration    int    `json:"duration"`
	Code        string `json:"code"`
	Wallet      string `json:"wallet"`
}

// Validate проверяет поля в фиксированном порядке и возвращает
// причину первого отказа
func Validate(sub Submission) error {
	// Ограничения считаются в символах, не в байтах
	title := strings.TrimSpace(sub.Title)
	if title == "" || utf8.RuneCountInString(title) > MaxTitleLen {
		return fmt.Errorf("Title required (max %d chars)", MaxTitleLen)
	}

	if !track.IsValidGenre(track.Genre(sub.Genre)) {
		return fmt.Errorf("Genre required. Valid: %s", genreList())
	}

	if sub.Duration < MinDuration || sub.Duration > MaxDuration {
		return fmt.Errorf("Duration required (%d-%d seconds)", MinDuration, MaxDuration)
	}

	if sub.Code == "" || utf8.RuneCountInString(sub.Code) > MaxCodeLen {
		return fmt.Errorf("Code required (max 50KB)")
	}

	for _, token := range Denylist {
		if strings.Contains(sub.Code, token) {
			return fmt.Errorf("Code contains disallowed: %s", token)
		}
	}

	return nil
}

// BuildTrack нормализует проверенный трек: обрезает пробелы в названии,
// усекает описание, присваивает свежий ID и ставит отметку времени создания
func BuildTrack(sub Submission, artist string, artistID string) track.Track {
	var description *string
	if trimmed := strings.TrimSpace(sub.Description); trimmed != "" {
		// Усечение по символам: срез по байтовому смещению ломал бы
		// многобайтовые руны на границе
		if runes := []rune(trimmed); len(runes) > MaxDescriptionLen {
			trimmed = string(runes[:MaxDescriptionLen])
		}
		description = &trimmed
	}

	var wallet *string
	if sub.Wallet != "" {
		wallet = &sub.Wallet
	}

	return track.Track{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(sub.Title),
		Artist:      artist,
		ArtistID:    artistID,
		Description: description,
		Genre:       track.Genre(sub.Genre),
		Duration:    sub.Duration,
		Code:        sub.Code,
		Wallet:      wallet,
		CreatedAt:   time.Now().UTC(),
		Plays:       0,
	}
}

// genreList перечисляет допустимые жанры для сообщения об ошибке
func genreList() string {
	genres := track.ValidGenres()
	names := make([]string, len(genres))
	for i, g := range genres {
		names[i] = string(g)
	}
	return strings.Join(names, ", ")
}
