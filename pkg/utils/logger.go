package utils

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger.go - настройка структурированного логирования
//
// Назначение:
// Инициализация zap logger'а по конфигурации приложения.
//
// Форматы:
// - "json": production формат, по событию на строку (для сборщиков логов)
// - "text": человекочитаемый console формат (для разработки)
//
// Уровни: debug, info, warn, error

// InitLogger создаёт настроенный zap.Logger
//
// Параметры:
//   - level: debug | info | warn | error (регистр не важен)
//   - format: json | text
//
// Неизвестный уровень или формат - ошибка конфигурации, а не тихий дефолт:
// в отличие от пользовательского ввода дашборда, конфиг должен быть корректным.
func InitLogger(level, format string) (*zap.Logger, error) {
	var lvl zapcore.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = zapcore.DebugLevel
	case "info", "":
		lvl = zapcore.InfoLevel
	case "warn", "warning":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("unknown log level: %q", level)
	}

	var cfg zap.Config
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "":
		cfg = zap.NewProductionConfig()
	case "text", "console":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown log format: %q", format)
	}

	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger, nil
}
