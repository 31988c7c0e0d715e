package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Storage drivers understood by storage.Open.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverR2       = "r2"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
		Mode string `yaml:"mode"`
	} `yaml:"server"`

	Storage struct {
		Driver     string `yaml:"driver"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"storage"`

	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	R2       R2Config       `yaml:"r2"`

	Logging struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"logging"`
}

// Load reads defaults, then the YAML file at path (if present), then .env, then the environment.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			file, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if err := yaml.Unmarshal(file, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.Server.Port = "8080"
	cfg.Server.Mode = "debug"

	cfg.Storage.Driver = DriverSQLite
	cfg.Storage.SQLitePath = "data/mango.db"

	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.User = "postgres"
	cfg.Database.Name = "mango"
	cfg.Database.SSLMode = "disable"

	cfg.Redis.Host = "localhost"
	cfg.Redis.Port = "6379"

	cfg.R2.Region = "auto"

	cfg.Logging.Level = "info"
	cfg.Logging.Pretty = true
}

func applyEnv(cfg *Config) {
	cfg.Server.Port = GetEnv("PORT", GetEnv("SERVER_PORT", cfg.Server.Port))
	cfg.Server.Mode = GetEnv("SERVER_MODE", cfg.Server.Mode)

	cfg.Storage.Driver = strings.ToLower(GetEnv("STORAGE_DRIVER", cfg.Storage.Driver))
	cfg.Storage.SQLitePath = GetEnv("SQLITE_PATH", cfg.Storage.SQLitePath)

	cfg.Database.Host = GetEnv("DB_HOST", cfg.Database.Host)
	cfg.Database.Port = GetEnv("DB_PORT", cfg.Database.Port)
	cfg.Database.User = GetEnv("DB_USER", cfg.Database.User)
	cfg.Database.Password = GetEnv("DB_PASSWORD", cfg.Database.Password)
	cfg.Database.Name = GetEnv("DB_NAME", cfg.Database.Name)
	cfg.Database.SSLMode = GetEnv("DB_SSLMODE", cfg.Database.SSLMode)

	cfg.Redis.Host = GetEnv("REDIS_HOST", cfg.Redis.Host)
	cfg.Redis.Port = GetEnv("REDIS_PORT", cfg.Redis.Port)
	cfg.Redis.Password = GetEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = GetEnvAsInt("REDIS_DB", cfg.Redis.DB)

	cfg.R2.AccountID = GetEnv("CLOUDFLARE_ACCOUNT_ID", cfg.R2.AccountID)
	cfg.R2.AccessKeyID = GetEnv("CLOUDFLARE_ACCESS_KEY_ID", cfg.R2.AccessKeyID)
	cfg.R2.SecretAccessKey = GetEnv("CLOUDFLARE_SECRET_ACCESS_KEY", cfg.R2.SecretAccessKey)
	cfg.R2.BucketName = GetEnv("CLOUDFLARE_BUCKET_NAME", cfg.R2.BucketName)
	cfg.R2.Prefix = GetEnv("CLOUDFLARE_KEY_PREFIX", cfg.R2.Prefix)

	cfg.Logging.Level = GetEnv("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Pretty = GetEnvAsBool("LOG_PRETTY", cfg.Logging.Pretty)
}

// Validate checks that the selected storage driver has what it needs.
func (c *Config) Validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown server mode %q", c.Server.Mode)
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("sqlite path is required")
		}
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.Name == "" {
			return fmt.Errorf("database host and name are required")
		}
	case DriverRedis:
		if c.Redis.Host == "" || c.Redis.Port == "" {
			return fmt.Errorf("redis host and port are required")
		}
	case DriverR2:
		if c.R2.AccountID == "" || c.R2.BucketName == "" {
			return fmt.Errorf("cloudflare account id and bucket name are required")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	return nil
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets an environment variable as an integer or returns a default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(GetEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

// GetEnvAsBool gets an environment variable as a boolean or returns a default value
func GetEnvAsBool(key string, defaultValue bool) bool {
	switch strings.ToLower(GetEnv(key, "")) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultValue
}
