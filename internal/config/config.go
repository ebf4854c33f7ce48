// Package config загружает настройки драйвера экспериментов из окружения
// (и .env-файла, если он есть). Флаги командной строки имеют приоритет:
// значения отсюда служат умолчаниями.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config - настройки прогона по умолчанию.
type Config struct {
	DataDir      string        // каталог с process.csv, weights.csv, release.csv
	OutPath      string        // путь к итоговому CSV
	DBPath       string        // путь к sqlite-базе; "" - не сохранять
	MaxJobs      int           // прогон размеров 1..MaxJobs
	Solver       string        // lpsolve | cpsat
	SolveTimeout time.Duration // таймаут одной ячейки; 0 - без ограничения
}

// Load читает окружение с умолчаниями.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DataDir: getEnv("PRODPLAN_DATA_DIR", "data"),
		OutPath: getEnv("PRODPLAN_OUT", "artifacts/results.csv"),
		DBPath:  getEnv("PRODPLAN_DB", ""),
		Solver:  getEnv("PRODPLAN_SOLVER", "lpsolve"),
	}

	var err error
	cfg.MaxJobs, err = strconv.Atoi(getEnv("PRODPLAN_MAX_JOBS", "10"))
	if err != nil {
		return nil, fmt.Errorf("config: ошибка чтения PRODPLAN_MAX_JOBS: %w", err)
	}

	seconds, err := strconv.Atoi(getEnv("PRODPLAN_SOLVE_TIMEOUT_SECONDS", "0"))
	if err != nil {
		return nil, fmt.Errorf("config: ошибка чтения PRODPLAN_SOLVE_TIMEOUT_SECONDS: %w", err)
	}
	cfg.SolveTimeout = time.Duration(seconds) * time.Second

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
