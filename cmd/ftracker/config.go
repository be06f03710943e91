package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// config holds defaults that command line flags may override.
type config struct {
	LogLevel string // FTRACKER_LOG_LEVEL
	Input    string // FTRACKER_INPUT
	EnvFile  string // FTRACKER_ENV_FILE
}

// loadConfig reads an optional .env file and then the environment.
// Variables already set in the environment take precedence over the file.
func loadConfig() (config, error) {
	envFile := func() string {
		if val := os.Getenv("FTRACKER_ENV_FILE"); val != "" {
			return val
		}
		return ".env"
	}()

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config{}, fmt.Errorf("cannot load %s: %w", envFile, err)
	}

	return config{
		LogLevel: func() string {
			if val := os.Getenv("FTRACKER_LOG_LEVEL"); val != "" {
				return val
			}
			return "info"
		}(),

		Input: func() string {
			if val := os.Getenv("FTRACKER_INPUT"); val != "" {
				return val
			}
			return "-"
		}(),

		EnvFile: envFile,
	}, nil
}
