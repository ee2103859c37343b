// Package s3 предоставляет резервное копирование документа каталога
// в S3-совместимое хранилище.
package s3

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// Config содержит настройки для S3
type Config struct {
	Region     string
	AccessKey  string
	SecretKey  string
	Endpoint   string
	BucketName string
}

// Snapshotter загружает и скачивает снимки каталога
type Snapshotter struct {
	uploader   *s3manager.Uploader
	downloader *s3manager.Downloader
	config     *Config
}

// NewSnapshotter создает новый Snapshotter
func NewSnapshotter(config *Config) (*Snapshotter, error) {
	awsConfig := &aws.Config{
		Region: aws.String(config.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AccessKey,
			config.SecretKey,
			"",
		),
	}

	// Если указан endpoint, добавляем его
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания AWS сессии: %w", err)
	}

	return &Snapshotter{
		uploader:   s3manager.NewUploader(sess),
		downloader: s3manager.NewDownloader(sess),
		config:     config,
	}, nil
}

// UploadSnapshot загружает снимок каталога под указанным ключом
// и возвращает URL загруженного объекта
func (s *Snapshotter) UploadSnapshot(ctx context.Context, reader io.Reader, key string) (string, error) {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.config.BucketName),
		Key:         aws.String(key),
		Body:        reader,
		ContentType: aws.String("application/json"),
	})

	if err != nil {
		return "", fmt.Errorf("ошибка загрузки снимка: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s", s.config.Endpoint, s.config.BucketName, key)
	return url, nil
}

// DownloadSnapshot скачивает снимок каталога по ключу
func (s *Snapshotter) DownloadSnapshot(ctx context.Context, key string) ([]byte, error) {
	buf := aws.NewWriteAtBuffer([]byte{})

	_, err := s.downloader.DownloadWithContext(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.config.BucketName),
		Key:    aws.String(key),
	})

	if err != nil {
		return nil, fmt.Errorf("ошибка скачивания снимка: %w", err)
	}

	return buf.Bytes(), nil
}
