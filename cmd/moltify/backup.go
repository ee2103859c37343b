package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazadus/moltify/internal/s3"
	"github.com/hazadus/moltify/internal/track"
)

// createBackupCommand создает команду backup с привязкой к экземпляру приложения
func (app *Application) createBackupCommand(ctx context.Context) *cobra.Command {
	var restoreKey string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Snapshot the catalog to S3 storage",
		Long:  `Upload the catalog document to S3-compatible storage, or restore it from a snapshot with --restore.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Даем операции с хранилищем ограниченное время
			opCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
			defer cancel()

			if restoreKey != "" {
				return app.restoreCatalog(opCtx, restoreKey)
			}
			return app.backupCatalog(opCtx)
		},
	}

	cmd.Flags().StringVar(&restoreKey, "restore", "", "ключ снимка для восстановления каталога")

	return cmd
}

// newSnapshotter создает Snapshotter из конфигурации приложения
func (app *Application) newSnapshotter() (*s3.Snapshotter, error) {
	if app.Config.AwsBucketName == "" {
		return nil, fmt.Errorf("в конфигурации не указан S3-бакет")
	}

	return s3.NewSnapshotter(&s3.Config{
		Region:     app.Config.AwsRegion,
		AccessKey:  app.Config.AwsAccessKey,
		SecretKey:  app.Config.AwsSecretKey,
		Endpoint:   app.Config.AwsEndpoint,
		BucketName: app.Config.AwsBucketName,
	})
}

func (app *Application) backupCatalog(ctx context.Context) error {
	snapshotter, err := app.newSnapshotter()
	if err != nil {
		return err
	}

	tracks := app.Store.Load()
	data, err := json.MarshalIndent(tracks, "", "  ")
	if err != nil {
		return fmt.Errorf("ошибка сериализации каталога: %w", err)
	}

	key := fmt.Sprintf("moltify/tracks-%s.json", time.Now().UTC().Format("20060102-150405"))

	fmt.Printf("📤 Загружаем снимок каталога в S3:\n")
	fmt.Printf("   Треков: %d\n", len(tracks))
	fmt.Printf("   Бакет: %s\n", app.Config.AwsBucketName)
	fmt.Printf("   Ключ: %s\n", key)

	url, err := snapshotter.UploadSnapshot(ctx, bytes.NewReader(data), key)
	if err != nil {
		return fmt.Errorf("ошибка загрузки снимка: %w", err)
	}

	fmt.Printf("✅ Снимок каталога загружен: %s\n", url)
	return nil
}

func (app *Application) restoreCatalog(ctx context.Context, key string) error {
	snapshotter, err := app.newSnapshotter()
	if err != nil {
		return err
	}

	fmt.Printf("📥 Восстанавливаем каталог из снимка: %s\n", key)

	data, err := snapshotter.DownloadSnapshot(ctx, key)
	if err != nil {
		return fmt.Errorf("ошибка скачивания снимка: %w", err)
	}

	var tracks []track.Track
	if err := json.Unmarshal(data, &tracks); err != nil {
		return fmt.Errorf("ошибка разбора снимка: %w", err)
	}

	if err := app.Store.Save(tracks); err != nil {
		return fmt.Errorf("ошибка записи каталога: %w", err)
	}

	fmt.Printf("✅ Каталог восстановлен, треков: %d\n", len(tracks))
	return nil
}
