package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/hazadus/moltify/internal/catalog"
	"github.com/hazadus/moltify/internal/config"
	"github.com/hazadus/moltify/internal/identity"
	"github.com/hazadus/moltify/internal/store"
)

const defaultConfigPath = "~/.moltify.yaml"

// Application объединяет конфигурацию, хранилище и каталог приложения
type Application struct {
	Config *config.Config
	Store  *store.Store
	Repo   *catalog.Repository
}

func main() {
	ctx := context.Background()

	// Загружаем конфигурацию
	cfg, err := config.LoadConfig(defaultConfigPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Создаем хранилище и записываем стартовый каталог при первом запуске
	st, err := store.NewStore(cfg.DataFilePath)
	if err != nil {
		log.Fatalf("Ошибка создания хранилища: %v", err)
	}
	if err := st.Initialize(); err != nil {
		log.Fatalf("Ошибка инициализации хранилища: %v", err)
	}

	// Собираем каталог с клиентом Moltbook
	resolver := identity.NewClient(cfg.MoltbookURL)
	repo := catalog.NewRepository(st, resolver, cfg.ShareURLBase)

	app := &Application{
		Config: cfg,
		Store:  st,
		Repo:   repo,
	}

	rootCmd := app.createRootCommand(ctx)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
