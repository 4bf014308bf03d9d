package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config содержит всю конфигурацию приложения
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Security  SecurityConfig
	Dashboard DashboardConfig
	Logging   LoggingConfig
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Port     int
	Host     string
	UseHTTPS bool
	CertFile string
	KeyFile  string
}

// DatabaseConfig - настройки подключения к БД
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSLMode  string
}

// SecurityConfig - настройки безопасности
type SecurityConfig struct {
	// TokenHash - bcrypt хеш API токена дашборда.
	// Пустое значение отключает аутентификацию (локальное развертывание).
	TokenHash string

	// RateLimit - запросов в секунду на весь API (0 = без лимита)
	RateLimit float64
	RateBurst float64
}

// DashboardConfig - настройки движка дашборда
type DashboardConfig struct {
	// FetchTimeout - таймаут выборки снапшотов из провайдеров данных
	FetchTimeout time.Duration

	// RefreshFreq - период фонового пересчёта для WebSocket подписчиков
	RefreshFreq time.Duration

	// Пороги алертов. Нагрузка (floor-пороги: больше = хуже)
	ActiveQuotationsYellow int
	ActiveQuotationsRed    int

	// Простой в днях
	DaysWithoutEditYellow int
	DaysWithoutEditRed    int

	// Эффективность в процентах (ceiling-пороги: меньше = хуже)
	EfficiencyYellow float64
	EfficiencyRed    float64

	// Фиксированные параметры трендов/приоритетов/координации
	HighValueThreshold float64
}

// LoggingConfig - настройки логирования
type LoggingConfig struct {
	Level  string
	Format string
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:     getEnvAsInt("SERVER_PORT", 8080),
			Host:     getEnv("SERVER_HOST", "0.0.0.0"),
			UseHTTPS: getEnvAsBool("USE_HTTPS", false),
			CertFile: getEnv("CERT_FILE", ""),
			KeyFile:  getEnv("KEY_FILE", ""),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "postgres"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			Name:     getEnv("DB_NAME", "cotizador"),
			User:     getEnv("DB_USER", "user"),
			Password: getEnv("DB_PASSWORD", "password"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Security: SecurityConfig{
			TokenHash: getEnv("DASHBOARD_TOKEN_HASH", ""),
			RateLimit: getEnvAsFloat("API_RATE_LIMIT", 20),
			RateBurst: getEnvAsFloat("API_RATE_BURST", 40),
		},
		Dashboard: DashboardConfig{
			FetchTimeout: getEnvAsDuration("SNAPSHOT_FETCH_TIMEOUT", 5*time.Second),
			RefreshFreq:  getEnvAsDuration("DASHBOARD_REFRESH_FREQ", 30*time.Second),

			ActiveQuotationsYellow: getEnvAsInt("ALERT_ACTIVE_YELLOW", 3),
			ActiveQuotationsRed:    getEnvAsInt("ALERT_ACTIVE_RED", 5),
			DaysWithoutEditYellow:  getEnvAsInt("ALERT_DAYS_YELLOW", 7),
			DaysWithoutEditRed:     getEnvAsInt("ALERT_DAYS_RED", 15),
			EfficiencyYellow:       getEnvAsFloat("ALERT_EFFICIENCY_YELLOW", 50),
			EfficiencyRed:          getEnvAsFloat("ALERT_EFFICIENCY_RED", 30),
			HighValueThreshold:     getEnvAsFloat("ALERT_HIGH_VALUE", 100000),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate проверяет числовые диапазоны параметров
func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("DB_PORT must be between 1 and 65535, got %d", c.Database.Port)
	}

	if c.Dashboard.FetchTimeout <= 0 {
		return fmt.Errorf("SNAPSHOT_FETCH_TIMEOUT must be positive, got %v", c.Dashboard.FetchTimeout)
	}

	if c.Dashboard.RefreshFreq <= 0 {
		return fmt.Errorf("DASHBOARD_REFRESH_FREQ must be positive, got %v", c.Dashboard.RefreshFreq)
	}

	// Пороги: red строже yellow в обе стороны
	if c.Dashboard.ActiveQuotationsRed < c.Dashboard.ActiveQuotationsYellow {
		return fmt.Errorf("ALERT_ACTIVE_RED (%d) must be >= ALERT_ACTIVE_YELLOW (%d)",
			c.Dashboard.ActiveQuotationsRed, c.Dashboard.ActiveQuotationsYellow)
	}

	if c.Dashboard.DaysWithoutEditRed < c.Dashboard.DaysWithoutEditYellow {
		return fmt.Errorf("ALERT_DAYS_RED (%d) must be >= ALERT_DAYS_YELLOW (%d)",
			c.Dashboard.DaysWithoutEditRed, c.Dashboard.DaysWithoutEditYellow)
	}

	// Эффективность - ceiling-пороги: red НИЖЕ yellow
	if c.Dashboard.EfficiencyRed > c.Dashboard.EfficiencyYellow {
		return fmt.Errorf("ALERT_EFFICIENCY_RED (%.0f) must be <= ALERT_EFFICIENCY_YELLOW (%.0f)",
			c.Dashboard.EfficiencyRed, c.Dashboard.EfficiencyYellow)
	}

	if c.Security.RateLimit < 0 {
		return fmt.Errorf("API_RATE_LIMIT cannot be negative, got %f", c.Security.RateLimit)
	}

	return nil
}

// DSN возвращает строку подключения к базе данных
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// DSNWithoutPassword возвращает строку подключения без пароля (для логирования)
func (d DatabaseConfig) DSNWithoutPassword() string {
	return fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Name, d.SSLMode)
}

// Вспомогательные функции для чтения переменных окружения

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
