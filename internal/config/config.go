package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config содержит пути к файлам данных и уровень логов.
type Config struct {
	UsersPath      string `validate:"required"`
	QuizzesPath    string `validate:"required"`
	ResultsPath    string `validate:"required"`
	TranscriptPath string `validate:"required"`
	LogLevel       string `validate:"oneof=debug info warn error"`
}

// Значения по умолчанию
const (
	DefaultUsersPath      = "users.txt"
	DefaultQuizzesPath    = "quizzes.txt"
	DefaultResultsPath    = "results.txt"
	DefaultTranscriptPath = "last_quiz_details.txt"
	DefaultLogLevel       = "warn"
)

// Переменные окружения
const (
	envUsers      = "QUIZ_USERS_FILE"
	envQuizzes    = "QUIZ_QUIZZES_FILE"
	envResults    = "QUIZ_RESULTS_FILE"
	envTranscript = "QUIZ_TRANSCRIPT_FILE"
	envLogLevel   = "QUIZ_LOG_LEVEL"
)

// ErrInvalidConfig возвращается при неверной конфигурации.
var ErrInvalidConfig = errors.New("invalid config")

// Load собирает конфигурацию: значения по умолчанию, затем .env и переменные
// окружения, затем флаги из args.
func Load(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		UsersPath:      getEnv(envUsers, DefaultUsersPath),
		QuizzesPath:    getEnv(envQuizzes, DefaultQuizzesPath),
		ResultsPath:    getEnv(envResults, DefaultResultsPath),
		TranscriptPath: getEnv(envTranscript, DefaultTranscriptPath),
		LogLevel:       getEnv(envLogLevel, DefaultLogLevel),
	}

	flags := pflag.NewFlagSet("quizapp", pflag.ContinueOnError)
	flags.StringVar(&cfg.UsersPath, "users", cfg.UsersPath, "path to the users file")
	flags.StringVar(&cfg.QuizzesPath, "quizzes", cfg.QuizzesPath, "path to the quizzes file")
	flags.StringVar(&cfg.ResultsPath, "results", cfg.ResultsPath, "path to the results file")
	flags.StringVar(&cfg.TranscriptPath, "transcript", cfg.TranscriptPath, "path to the last quiz details file")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("%w, %v", ErrInvalidConfig, err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет заполненность полей.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w, %v", ErrInvalidConfig, err)
	}

	return nil
}

// SlogLevel возвращает уровень логов для slog.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return fallback
}
