package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const sqlitePrefix = "sqlite:"

func DefaultDataPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "companydir", "companies.json")
}

func IsURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// ResolveLocation turns the --data value into something catalog.OpenSource
// understands. Empty means DefaultDataPath, URLs pass through untouched and
// file paths (including the part after "sqlite:") are expanded.
func ResolveLocation(location string) (string, error) {
	switch {
	case location == "":
		return DefaultDataPath(), nil
	case IsURL(location):
		return location, nil
	case strings.HasPrefix(location, sqlitePrefix):
		path, err := ExpandPath(strings.TrimPrefix(location, sqlitePrefix))
		if err != nil {
			return "", err
		}
		return sqlitePrefix + path, nil
	}
	return ExpandPath(location)
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand ~: %w", err)
		}
		path = filepath.Join(home, path[2:])
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand ~: %w", err)
		}
		path = home
	}

	return filepath.Abs(path)
}
