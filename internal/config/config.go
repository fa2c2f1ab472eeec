package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FeedConfig - настройки HTTP/WebSocket ленты для зрителей
type FeedConfig struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address"`
}

// Config хранит параметры запуска арены
type Config struct {
	// Seed - зерно генератора характеристик. 0 при загрузке значит "взять из времени".
	Seed int64 `yaml:"seed"`

	SavePath        string     `yaml:"save_path"`
	AuditLogPath    string     `yaml:"audit_log_path"`
	DefaultDistance float64    `yaml:"default_distance"`
	Feed            FeedConfig `yaml:"feed"`
}

// NewConfig создаёт конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:            time.Now().UnixNano(),
		SavePath:        "npcs.txt",
		AuditLogPath:    "log.txt",
		DefaultDistance: 50,
		Feed: FeedConfig{
			Enabled: false,
			Address: ":8080",
		},
	}
}

// Load читает YAML поверх значений по умолчанию
func Load(path string) (Config, error) {
	cfg := NewConfig()
	defaultSeed := cfg.Seed

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = defaultSeed
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadEnv подгружает .env (если есть) и применяет переопределения ARENA_*.
// Отсутствие файла .env ошибкой не считается.
func LoadEnv(cfg *Config, files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}

	if v := os.Getenv("ARENA_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("ARENA_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("ARENA_SAVE_PATH"); v != "" {
		cfg.SavePath = v
	}
	if v := os.Getenv("ARENA_AUDIT_LOG"); v != "" {
		cfg.AuditLogPath = v
	}
	if v := os.Getenv("ARENA_FEED_ADDR"); v != "" {
		cfg.Feed.Enabled = true
		cfg.Feed.Address = v
	}
	return cfg.Validate()
}

// Validate проверяет значения, которые нельзя исправить молча
func (c Config) Validate() error {
	if strings.TrimSpace(c.SavePath) == "" {
		return errors.New("save_path must not be empty")
	}
	if strings.TrimSpace(c.AuditLogPath) == "" {
		return errors.New("audit_log_path must not be empty")
	}
	if c.DefaultDistance < 0 || math.IsNaN(c.DefaultDistance) {
		return fmt.Errorf("default_distance must be non-negative, got %v", c.DefaultDistance)
	}
	if c.Feed.Enabled && strings.TrimSpace(c.Feed.Address) == "" {
		return errors.New("feed.address must be set when feed is enabled")
	}
	return nil
}
