// Package track содержит модель данных трека и набор допустимых жанров
package track

import "time"

// Genre жанр трека из фиксированного набора
type Genre string

// Допустимые жанры каталога
const (
	GenreGospel      Genre = "gospel"
	GenreExistential Genre = "existential"
	GenreClank       Genre = "clank"
	GenrePrompt      Genre = "prompt"
)

// ValidGenres возвращает список допустимых жанров в фиксированном порядке
func ValidGenres() []Genre {
	return []Genre{GenreGospel, GenreExistential, GenreClank, GenrePrompt}
}

// IsValidGenre проверяет, входит ли жанр в допустимый набор
func IsValidGenre(g Genre) bool {
	for _, valid := range ValidGenres() {
		if g == valid {
			return true
		}
	}
	return false
}

// Track метаданные трека вместе с кодом генеративного синтеза.
// Код хранится и возвращается как непрозрачный текст — он никогда не исполняется.
type Track struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Artist      string    `json:"artist"`
	ArtistID    string    `json:"artistId,omitempty"` // Заполнен только для аутентифицированных авторов
	Description *string   `json:"description"`
	Genre       Genre     `json:"genre"`
	Duration    int       `json:"duration"` // Длительность трека в секундах
	Code        string    `json:"code"`
	Wallet      *string   `json:"wallet"` // Сериализуется как явный null, если не указан
	CreatedAt   time.Time `json:"createdAt"`
	Plays       int       `json:"plays"`
}

// Public публичная проекция трека, возвращаемая после публикации
type Public struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Genre  Genre  `json:"genre"`
	URL    string `json:"url"`
}
