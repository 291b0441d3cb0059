package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// DefaultEnvFile файл с переменными окружения, загружаемый при старте (если есть)
const DefaultEnvFile = ".env"

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Parking  ParkingConfig  `toml:"parking"`
	Admin    AdminConfig    `toml:"admin"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host" env:"DB_HOST"`
	Port            int    `toml:"port" env:"DB_PORT"`
	User            string `toml:"user" env:"DB_USER"`
	Password        string `toml:"password" env:"DB_PASSWORD"`
	DBName          string `toml:"dbname" env:"DB_NAME"`
	SSLMode         string `toml:"sslmode" env:"DB_SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

type LogsConfig struct {
	File  string `toml:"file" env:"LOG_FILE"`
	Level string `toml:"level" env:"LOG_LEVEL"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"METRICS_ENABLED"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ParkingConfig ёмкость парковки и тариф
type ParkingConfig struct {
	SlotCount   int     `toml:"slot_count" env:"SLOT_COUNT"`
	RatePerHour float64 `toml:"rate_per_hour" env:"RATE_PER_HOUR"`
}

// AdminConfig учётные данные администратора.
// Если задан password_hash (bcrypt), password игнорируется.
type AdminConfig struct {
	Username        string `toml:"username" env:"ADMIN_USERNAME"`
	Password        string `toml:"password" env:"ADMIN_PASSWORD"`
	PasswordHash    string `toml:"password_hash" env:"ADMIN_PASSWORD_HASH"`
	JWTSecret       string `toml:"jwt_secret" env:"ADMIN_JWT_SECRET"`
	TokenTTLMinutes int    `toml:"token_ttl_minutes" env:"ADMIN_TOKEN_TTL_MINUTES"`
}

// Load читает конфигурацию из toml файла, затем применяет переменные окружения
// (в том числе из .env)
func Load(path string) (*Config, error) {
	return LoadWithEnvFile(path, DefaultEnvFile)
}

// LoadWithEnvFile как Load, но с явным путём к .env файлу
func LoadWithEnvFile(path, envFile string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	// Отсутствие .env - нормальная ситуация
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "parking-service",
		},
		Parking: ParkingConfig{
			SlotCount:   domain.DefaultSlotCount,
			RatePerHour: domain.DefaultRatePerHour,
		},
		Admin: AdminConfig{
			Username:        "admin",
			TokenTTLMinutes: 12 * 60,
		},
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Parking.SlotCount <= 0 {
		return fmt.Errorf("parking.slot_count must be positive, got %d", c.Parking.SlotCount)
	}
	if c.Parking.RatePerHour <= 0 {
		return fmt.Errorf("parking.rate_per_hour must be positive, got %v", c.Parking.RatePerHour)
	}
	if c.Admin.Username == "" {
		return errors.New("admin.username is required")
	}
	if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
		return errors.New("admin.password or admin.password_hash is required")
	}
	if c.Admin.JWTSecret == "" {
		return errors.New("admin.jwt_secret is required")
	}
	if c.Admin.TokenTTLMinutes <= 0 {
		return fmt.Errorf("admin.token_ttl_minutes must be positive, got %d", c.Admin.TokenTTLMinutes)
	}
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive, got %d", c.Server.HTTPPort)
	}
	return nil
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// TokenTTL время жизни токена администратора
func (a AdminConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLMinutes) * time.Minute
}
