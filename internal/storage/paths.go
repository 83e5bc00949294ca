// Package storage archives finished games in BadgerDB and indexes them by
// position key.
package storage

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/apex/log"
)

const appName = "chessbot"

// DataDirEnv overrides the platform data directory when set.
const DataDirEnv = "CHESSBOT_DATA_DIR"

// GetDataDir returns the data directory for the application, creating it if
// needed. CHESSBOT_DATA_DIR wins when set; otherwise:
// - macOS: ~/Library/Application Support/chessbot/
// - Linux: $XDG_DATA_HOME/chessbot/ or ~/.local/share/chessbot/
// - Windows: %APPDATA%/chessbot/
func GetDataDir() (string, error) {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
		return dir, nil
	}

	var baseDir string
	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dataDir := filepath.Join(baseDir, appName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// GetDatabaseDir returns the directory holding the game archive.
func GetDatabaseDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}

	dbDir := filepath.Join(dataDir, "games")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}

	log.WithField("dir", dbDir).Debug("archive directory")
	return dbDir, nil
}
