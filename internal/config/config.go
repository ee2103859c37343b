// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Значения конфигурации по умолчанию
const (
	DefaultDataFilePath = "~/.moltify/tracks.json"
	DefaultListenAddr   = ":3000"
	DefaultMoltbookURL  = "https://www.moltbook.com/api/v1"
	DefaultShareURLBase = "https://forever8896.github.io/moltify/#track="
)

// Config структура для хранения конфигурации приложения
type Config struct {
	DataFilePath  string `yaml:"data_file_path"`
	ListenAddr    string `yaml:"listen_addr"`
	MoltbookURL   string `yaml:"moltbook_url"`
	ShareURLBase  string `yaml:"share_url_base"`
	AwsBucketName string `yaml:"aws_bucket_name"`
	AwsAccessKey  string `yaml:"aws_access_key"`
	AwsSecretKey  string `yaml:"aws_secret_key"`
	AwsRegion     string `yaml:"aws_region"`
	AwsEndpoint   string `yaml:"aws_endpoint"`
}

// DefaultConfig возвращает конфигурацию со значениями по умолчанию
func DefaultConfig() *Config {
	return &Config{
		DataFilePath: DefaultDataFilePath,
		ListenAddr:   DefaultListenAddr,
		MoltbookURL:  DefaultMoltbookURL,
		ShareURLBase: DefaultShareURLBase,
	}
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Если файл отсутствует, возвращается конфигурация по умолчанию.
func LoadConfig(filePath string) (*Config, error) {
	path, err := ExpandTilde(filePath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	// Подставляем значения по умолчанию для незаполненных полей
	if config.DataFilePath == "" {
		config.DataFilePath = DefaultDataFilePath
	}
	if config.ListenAddr == "" {
		config.ListenAddr = DefaultListenAddr
	}
	if config.MoltbookURL == "" {
		config.MoltbookURL = DefaultMoltbookURL
	}
	if config.ShareURLBase == "" {
		config.ShareURLBase = DefaultShareURLBase
	}

	return config, nil
}

// ExpandTilde раскрывает тильду в пути до домашней директории
func ExpandTilde(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return strings.Replace(path, "~", home, 1), nil
}
