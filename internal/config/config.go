package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-StringingService/internal/scheduling"
	"github.com/m04kA/SMC-StringingService/pkg/logger"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: read file")

	// ErrParseConfig возвращается при ошибке разбора TOML
	ErrParseConfig = errors.New("config: parse toml")

	// ErrInvalidConfig возвращается при недопустимых значениях
	ErrInvalidConfig = errors.New("config: invalid value")
)

const (
	defaultHTTPPort        = 8080
	defaultReadTimeout     = 10
	defaultWriteTimeout    = 10
	defaultIdleTimeout     = 60
	defaultShutdownTimeout = 15

	defaultDBPort          = 5432
	defaultSSLMode         = "disable"
	defaultMaxOpenConns    = 25
	defaultMaxIdleConns    = 5
	defaultConnMaxLifetime = 300

	defaultLogLevel = "info"

	defaultMetricsPath = "/metrics"
	defaultServiceName = "stringing_service"

	defaultTimezone = "Asia/Seoul"
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Scheduling SchedulingConfig `toml:"scheduling"`
	Admin      AdminConfig      `toml:"admin"`
}

// ServerConfig параметры HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// LogsConfig параметры логирования. Пустой file - вывод в stdout
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig параметры Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SchedulingConfig параметры расчета слотов
type SchedulingConfig struct {
	Timezone         string `toml:"timezone"`
	StrictSpanPolicy bool   `toml:"strict_span_policy"`
}

// AdminConfig сотрудники магазина
type AdminConfig struct {
	UserIDs []int64 `toml:"user_ids"`
}

// Load читает конфигурацию из TOML файла
// Перед разбором подгружается .env и подставляются ${VAR} из окружения
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	return Parse(os.ExpandEnv(string(data)))
}

// Parse разбирает TOML, проставляет значения по умолчанию и валидирует результат
func Parse(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseConfig, err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	setDefault(&c.Server.HTTPPort, defaultHTTPPort)
	setDefault(&c.Server.ReadTimeout, defaultReadTimeout)
	setDefault(&c.Server.WriteTimeout, defaultWriteTimeout)
	setDefault(&c.Server.IdleTimeout, defaultIdleTimeout)
	setDefault(&c.Server.ShutdownTimeout, defaultShutdownTimeout)

	setDefault(&c.Database.Port, defaultDBPort)
	setDefault(&c.Database.MaxOpenConns, defaultMaxOpenConns)
	setDefault(&c.Database.MaxIdleConns, defaultMaxIdleConns)
	setDefault(&c.Database.ConnMaxLifetime, defaultConnMaxLifetime)
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = defaultSSLMode
	}

	if c.Logs.Level == "" {
		c.Logs.Level = defaultLogLevel
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = defaultMetricsPath
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = defaultServiceName
	}
	if c.Scheduling.Timezone == "" {
		c.Scheduling.Timezone = defaultTimezone
	}
}

func setDefault(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

// Validate проверяет недопустимые значения
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be between 1 and 65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("%w: database.port must be between 1 and 65535, got %d", ErrInvalidConfig, c.Database.Port)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("%w: database.host is required", ErrInvalidConfig)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if c.Database.MaxOpenConns < 0 || c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("%w: database pool sizes must not be negative", ErrInvalidConfig)
	}
	if _, err := logger.ParseLevel(c.Logs.Level); err != nil {
		return fmt.Errorf("%w: logs.level: %v", ErrInvalidConfig, err)
	}
	if _, err := time.LoadLocation(c.Scheduling.Timezone); err != nil {
		return fmt.Errorf("%w: scheduling.timezone %q: %v", ErrInvalidConfig, c.Scheduling.Timezone, err)
	}
	for _, id := range c.Admin.UserIDs {
		if id <= 0 {
			return fmt.Errorf("%w: admin.user_ids must be positive, got %d", ErrInvalidConfig, id)
		}
	}
	return nil
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Location часовой пояс магазина. Проверен в Validate
func (s SchedulingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SpanPolicy политика подсчета бронирований с устаревшим диапазоном
func (s SchedulingConfig) SpanPolicy() scheduling.SpanPolicy {
	if s.StrictSpanPolicy {
		return scheduling.SpanPolicyStrict
	}
	return scheduling.SpanPolicyFallback
}

// IsAdmin является ли пользователь сотрудником магазина
func (a AdminConfig) IsAdmin(userID int64) bool {
	for _, id := range a.UserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
