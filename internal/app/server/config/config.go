package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress = ":8080"
	defaultMigrations = "migrations"
)

type Config struct {
	Env    string
	DB     db
	Server server
	Logger logger
}

type db struct {
	// DatabaseURI пустой - объекты хранятся в памяти процесса
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
	// APIKey пустой - /objects открыт без ключа
	APIKey string `env:"API_KEY"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func MustLoad() *Config {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			log.Fatalf("failed to load %s: %v", envPath, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("run_address", defaultRunAddress)
	v.SetDefault("migrations_path", defaultMigrations)
	v.SetDefault("log_level", "info")

	return &Config{
		Env: v.GetString("app_env"),
		DB: db{
			DatabaseURI: v.GetString("database_uri"),
			Migrations:  v.GetString("migrations_path"),
		},
		Server: server{
			RunAddress: v.GetString("run_address"),
			APIKey:     v.GetString("api_key"),
		},
		Logger: logger{LogLevel: v.GetString("log_level")},
	}
}

// InMemory сообщает, что база данных не настроена
func (c *Config) InMemory() bool {
	return c.DB.DatabaseURI == ""
}
