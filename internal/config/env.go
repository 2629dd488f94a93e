package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DefaultEnvFiles returns the env files loaded when none are given.
// .env.local comes first so its values win; godotenv never overwrites.
func DefaultEnvFiles(dir string) []string {
	return []string{
		filepath.Join(dir, ".env.local"),
		filepath.Join(dir, ".env"),
	}
}

// LoadEnvFiles loads each existing file into the process environment.
// Variables already set in the environment are left untouched. Missing
// files are skipped unless required is set.
func LoadEnvFiles(files []string, required bool) error {
	for _, envFile := range files {
		if _, err := os.Stat(envFile); err != nil {
			if required {
				return fmt.Errorf("env file %s: %w", envFile, err)
			}
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	return nil
}
