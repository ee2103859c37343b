// Package store отвечает за долговременное хранение каталога треков
// в виде единого JSON-документа на диске.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hazadus/moltify/internal/track"
)

// Store управляет JSON-документом каталога
type Store struct {
	path string
}

// NewStore создает новый Store для указанного файла данных
func NewStore(filePath string) (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := strings.Replace(filePath, "~", home, 1)

	return &Store{path: path}, nil
}

// Path возвращает путь к файлу данных
func (s *Store) Path() string {
	return s.path
}

// Initialize создает директорию хранения и записывает стартовый каталог,
// если документ еще не существует. Повторные вызовы безопасны.
func (s *Store) Initialize() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("ошибка создания директории данных: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("ошибка проверки файла данных: %w", err)
	}

	if err := s.Save(SeedTracks()); err != nil {
		return fmt.Errorf("ошибка записи стартового каталога: %w", err)
	}
	return nil
}

// Load возвращает текущий каталог. Если документ отсутствует или поврежден,
// возвращается стартовый каталог — ошибка чтения никогда не поднимается наверх.
func (s *Store) Load() []track.Track {
	data, err := os.ReadFile(s.path)
	if err != nil || len(data) == 0 {
		return SeedTracks()
	}

	var tracks []track.Track
	if err := json.Unmarshal(data, &tracks); err != nil {
		return SeedTracks()
	}
	return tracks
}

// Save сериализует каталог и целиком перезаписывает документ.
// Запись идет во временный файл с последующим переименованием: читатель
// никогда не увидит наполовину записанный документ и не откатится
// на стартовый каталог посреди перезаписи.
// Ошибка записи (нет места, нет прав) поднимается к вызывающему.
func (s *Store) Save(tracks []track.Track) error {
	data, err := json.MarshalIndent(tracks, "", "  ")
	if err != nil {
		return fmt.Errorf("ошибка сериализации каталога: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("ошибка записи файла данных: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("ошибка замены файла данных: %w", err)
	}
	return nil
}
