package config

import (
	"os"
	"path/filepath"
)

// FindEnvFile searches for the nearest file with the given name, walking up
// from the working directory. If filename is empty, it searches for .env.
// Processes started from package directories still find the repo root file.
func FindEnvFile(filename string) (string, error) {
	if filename == "" {
		filename = ".env"
	}
	startDir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	curr := startDir
	for {
		candidate := filepath.Join(curr, filename)
		if _, err = os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(curr)
		if parent == curr {
			break
		}
		curr = parent
	}
	return "", os.ErrNotExist
}
