package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type LogConfig struct {
	Level     string
	Format    string
	Component string
	Source    bool
}

type DBConfig struct {
	DSN      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type HTTPConfig struct {
	Host string
	Port string
}

type SearchConfig struct {
	IndexPath string
}

type Config struct {
	Log       LogConfig
	DB        DBConfig
	Redis     RedisConfig
	S3        S3Config
	HTTP      HTTPConfig
	Search    SearchConfig
	JWTSecret string
}

// New builds the configuration from the environment. A .env file in the
// working directory is loaded first if present. Missing required settings
// make startup fail instead of degrading at request time.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	// Logger
	cfg.Log.Level = getEnvDefault("LOG_LEVEL", "info")
	cfg.Log.Format = getEnvDefault("LOG_FORMAT", "text")
	cfg.Log.Component = getEnvDefault("LOG_COMPONENT", "http_server")
	cfg.Log.Source = isTruthy(os.Getenv("LOG_SOURCE"))

	// Database
	cfg.DB.DSN = os.Getenv("MYSQL_DSN")
	if cfg.DB.DSN == "" {
		cfg.DB.Host = getEnvDefault("DB_HOST", "localhost")
		cfg.DB.Port = getEnvDefault("DB_PORT", "3306")
		cfg.DB.User = getEnvDefault("DB_USER", "root")
		cfg.DB.Password = getEnvDefault("DB_PASSWORD", "root")
		cfg.DB.Name = getEnvDefault("DB_NAME", "youtube")

		cfg.DB.DSN = fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
			cfg.DB.User, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.Name,
		)
	}

	// Redis
	cfg.Redis.Addr = getEnvDefault("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnvDefault("REDIS_PASSWORD", "")
	if dbStr := getEnvDefault("REDIS_DB", "0"); dbStr != "" {
		if dbInt, err := strconv.Atoi(dbStr); err == nil {
			cfg.Redis.DB = dbInt
		}
	}

	// Object storage
	var err error
	if cfg.S3.Endpoint, err = requireEnv("S3_ENDPOINT"); err != nil {
		return nil, err
	}
	if cfg.S3.AccessKey, err = requireEnv("S3_ACCESS_KEY"); err != nil {
		return nil, err
	}
	if cfg.S3.SecretKey, err = requireEnv("S3_SECRET_KEY"); err != nil {
		return nil, err
	}
	if cfg.S3.Bucket, err = requireEnv("S3_BUCKET"); err != nil {
		return nil, err
	}
	cfg.S3.UseSSL = isTruthy(os.Getenv("S3_USE_SSL"))

	// HTTP
	cfg.HTTP.Host = getEnvDefault("HOST", "127.0.0.1")
	cfg.HTTP.Port = getEnvDefault("PORT", "3000")

	// Search index
	cfg.Search.IndexPath = getEnvDefault("SEARCH_INDEX_PATH", "data/videos.bleve")

	// Auth
	if cfg.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func requireEnv(k string) (string, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return "", fmt.Errorf("%s is not set", k)
	}
	return v, nil
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}
