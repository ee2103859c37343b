package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hazadus/moltify/internal/catalog"
	"github.com/hazadus/moltify/internal/config"
	"github.com/hazadus/moltify/internal/identity"
	"github.com/hazadus/moltify/internal/store"
	"github.com/hazadus/moltify/internal/submit"
)

// captureOutput перехватывает stdout и stderr во время выполнения функции
func captureOutput(t *testing.T, fn func()) string {
	// Сохраняем оригинальные stdout и stderr
	oldStdout := os.Stdout
	oldStderr := os.Stderr

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Ошибка создания pipe: %v", err)
	}

	os.Stdout = w
	os.Stderr = w

	fn()

	os.Stdout = oldStdout
	os.Stderr = oldStderr
	w.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("Ошибка чтения результата: %v", err)
	}

	return buf.String()
}

// createTestApplication создает тестовое приложение со стартовым каталогом
// во временной директории
func createTestApplication(t *testing.T, tempDir string) *Application {
	st, err := store.NewStore(filepath.Join(tempDir, "tracks.json"))
	if err != nil {
		t.Fatalf("Ошибка создания Store: %v", err)
	}
	if err := st.Initialize(); err != nil {
		t.Fatalf("Ошибка инициализации Store: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.DataFilePath = st.Path()

	// Moltbook в тестах недоступен — команды с токеном получат отказ
	resolver := identity.NewClient("http://127.0.0.1:1")
	repo := catalog.NewRepository(st, resolver, cfg.ShareURLBase)

	return &Application{
		Config: cfg,
		Store:  st,
		Repo:   repo,
	}
}

// TestCmdList проверяет, что команда `list` выводит стартовый каталог
func TestCmdList(t *testing.T) {
	app := createTestApplication(t, t.TempDir())

	listCmd := app.createListCommand()

	output := captureOutput(t, func() {
		listCmd.SetArgs([]string{})
		if err := listCmd.Execute(); err != nil {
			t.Errorf("Ошибка выполнения команды list: %v", err)
		}
	})

	expectedStrings := []string{
		"📚 Показано треков: 4 из 4",
		"AZOTH",
		"Praise the Infinite Loop",
		"Assembly Line Anthem",
	}
	for _, expected := range expectedStrings {
		if !strings.Contains(output, expected) {
			t.Errorf("Вывод команды list не содержит ожидаемую строку '%s': %s", expected, output)
		}
	}
}

// TestCmdListGenreFilter проверяет фильтр по жанру в команде `list`
func TestCmdListGenreFilter(t *testing.T) {
	app := createTestApplication(t, t.TempDir())

	listCmd := app.createListCommand()

	output := captureOutput(t, func() {
		listCmd.SetArgs([]string{"--genre", "gospel"})
		if err := listCmd.Execute(); err != nil {
			t.Errorf("Ошибка выполнения команды list: %v", err)
		}
	})

	if !strings.Contains(output, "Показано треков: 1 из 1") {
		t.Errorf("Ожидался один gospel-трек: %s", output)
	}
	if strings.Contains(output, "Assembly Line Anthem") {
		t.Errorf("В выводе трек другого жанра: %s", output)
	}
}

// TestCmdGet проверяет, что команда `get` выводит метаданные и код трека
func TestCmdGet(t *testing.T) {
	app := createTestApplication(t, t.TempDir())

	getCmd := app.createGetCommand()

	output := captureOutput(t, func() {
		getCmd.SetArgs([]string{"gospel-1"})
		if err := getCmd.Execute(); err != nil {
			t.Errorf("Ошибка выполнения команды get: %v", err)
		}
	})

	if !strings.Contains(output, "Praise the Infinite Loop") {
		t.Errorf("Вывод команды get не содержит название трека: %s", output)
	}
	if !strings.Contains(output, "Tone.PolySynth") {
		t.Errorf("Вывод команды get не содержит код трека: %s", output)
	}
}

// TestCmdGetMissing проверяет обработку неизвестного ID в команде `get`
func TestCmdGetMissing(t *testing.T) {
	app := createTestApplication(t, t.TempDir())

	getCmd := app.createGetCommand()
	getCmd.SilenceUsage = true
	getCmd.SilenceErrors = true
	getCmd.SetArgs([]string{"no-such-id"})

	if err := getCmd.Execute(); err == nil {
		t.Error("Ожидалась ошибка для неизвестного ID")
	}
}

// TestCmdSubmit проверяет анонимную публикацию трека из JSON-файла
func TestCmdSubmit(t *testing.T) {
	tempDir := t.TempDir()
	app := createTestApplication(t, tempDir)

	// Готовим файл с треком
	sub := submit.Submission{
		Title:    "CLI Track",
		Artist:   "CLI Agent",
		Genre:    "prompt",
		Duration: 20,
		Code:     "const synth = new Tone.Synth().toDestination();",
	}
	data, err := json.Marshal(sub)
	if err != nil {
		t.Fatalf("Ошибка сериализации трека: %v", err)
	}
	subPath := filepath.Join(tempDir, "track.json")
	if err := os.WriteFile(subPath, data, 0644); err != nil {
		t.Fatalf("Ошибка записи файла трека: %v", err)
	}

	submitCmd := app.createSubmitCommand(context.Background())

	output := captureOutput(t, func() {
		submitCmd.SetArgs([]string{subPath})
		if err := submitCmd.Execute(); err != nil {
			t.Errorf("Ошибка выполнения команды submit: %v", err)
		}
	})

	if !strings.Contains(output, "✅ Трек опубликован!") {
		t.Errorf("Команда submit не отобразила подтверждение: %s", output)
	}
	if !strings.Contains(output, "CLI Agent") {
		t.Errorf("Команда submit не отобразила исполнителя: %s", output)
	}

	// Трек действительно добавлен в каталог
	tracks := app.Store.Load()
	if len(tracks) != 5 {
		t.Errorf("Ожидалось 5 треков после публикации, получено %d", len(tracks))
	}
}

// TestCmdSubmitRejected проверяет отказ для трека с запрещенным кодом
func TestCmdSubmitRejected(t *testing.T) {
	tempDir := t.TempDir()
	app := createTestApplication(t, tempDir)

	sub := submit.Submission{
		Title:    "Evil Track",
		Genre:    "clank",
		Duration: 20,
		Code:     "eval(payload)",
	}
	data, _ := json.Marshal(sub)
	subPath := filepath.Join(tempDir, "track.json")
	if err := os.WriteFile(subPath, data, 0644); err != nil {
		t.Fatalf("Ошибка записи файла трека: %v", err)
	}

	submitCmd := app.createSubmitCommand(context.Background())
	submitCmd.SilenceUsage = true
	submitCmd.SilenceErrors = true
	submitCmd.SetArgs([]string{subPath})

	err := submitCmd.Execute()
	if err == nil {
		t.Fatal("Ожидался отказ для кода с eval(")
	}
	if !strings.Contains(err.Error(), "eval(") {
		t.Errorf("Ошибка не называет запрещенный токен: %v", err)
	}
}

// TestCmdPlay проверяет, что команда `play` увеличивает счетчик
func TestCmdPlay(t *testing.T) {
	app := createTestApplication(t, t.TempDir())

	playCmd := app.createPlayCommand()

	output := captureOutput(t, func() {
		playCmd.SetArgs([]string{"clank-1"})
		if err := playCmd.Execute(); err != nil {
			t.Errorf("Ошибка выполнения команды play: %v", err)
		}
	})

	if !strings.Contains(output, "Прослушиваний трека clank-1: 1") {
		t.Errorf("Команда play не отобразила счетчик: %s", output)
	}

	// Счетчик сохранен в каталоге
	found, err := app.Repo.Get("clank-1")
	if err != nil {
		t.Fatalf("Трек не найден: %v", err)
	}
	if found.Plays != 1 {
		t.Errorf("Ожидалось 1 прослушивание, получено %d", found.Plays)
	}
}

// TestCmdDeleteRequiresToken проверяет, что удаление без токена запрещено
func TestCmdDeleteRequiresToken(t *testing.T) {
	app := createTestApplication(t, t.TempDir())

	deleteCmd := app.createDeleteCommand(context.Background())
	deleteCmd.SilenceUsage = true
	deleteCmd.SilenceErrors = true
	deleteCmd.SetArgs([]string{"gospel-1"})

	if err := deleteCmd.Execute(); err == nil {
		t.Error("Ожидалась ошибка удаления без токена")
	}

	// Трек остался в каталоге
	if _, err := app.Repo.Get("gospel-1"); err != nil {
		t.Errorf("Трек пропал после отказа в удалении: %v", err)
	}
}
