package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultAPIURL         = "https://api.restful-api.dev/objects"
	defaultEnv            = "local"
	defaultConfigDir      = ".taskkeeper"
	defaultRequestTimeout = 30
	configFileName        = "config"
)

type Config struct {
	Env            string `mapstructure:"app_env"`
	APIURL         string `mapstructure:"api_url"`
	APIKey         string `mapstructure:"api_key"`
	ConfigDir      string `mapstructure:"config_dir"`
	DataPath       string `mapstructure:"data_path"`
	RequestTimeout int    `mapstructure:"request_timeout_seconds"`
}

// Load загружает конфигурацию клиента: .env, переменные окружения и
// необязательный YAML-файл (configFile или <config_dir>/config.yaml)
func Load(configFile string) (*Config, error) {
	// Загружаем .env файл если существует
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", defaultEnv)
	v.SetDefault("API_URL", defaultAPIURL)
	v.SetDefault("API_KEY", "")
	v.SetDefault("CONFIG_DIR", "")
	v.SetDefault("DATA_PATH", "")
	v.SetDefault("REQUEST_TIMEOUT_SECONDS", defaultRequestTimeout)

	configDir := v.GetString("CONFIG_DIR")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		configDir = filepath.Join(homeDir, defaultConfigDir)
	}

	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.AddConfigPath(configDir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// Явно указанный файл обязан существовать
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("ошибка чтения файла конфигурации: %w", err)
		}
	}

	dataPath := v.GetString("DATA_PATH")
	if dataPath == "" {
		dataPath = filepath.Join(configDir, "data.db")
	}

	cfg := &Config{
		Env:            v.GetString("APP_ENV"),
		APIURL:         v.GetString("API_URL"),
		APIKey:         v.GetString("API_KEY"),
		ConfigDir:      configDir,
		DataPath:       dataPath,
		RequestTimeout: v.GetInt("REQUEST_TIMEOUT_SECONDS"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("ошибка конфигурации: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api_url не может быть пустым")
	}
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api_url должен быть абсолютным URL: %q", c.APIURL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout_seconds должен быть больше нуля")
	}
	return nil
}

// Timeout возвращает таймаут одной команды
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
