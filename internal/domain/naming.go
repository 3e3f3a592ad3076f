package domain

import (
	"path/filepath"
	"strings"
)

// Directory and file names.
const (
	AppDirName     = "desk"        // Directory name under XDG config/data homes
	ConfigFileName = "config.toml" // Config file name
	StoreFileName  = "desk.json"   // Store file name in the data directory
)

// ShortIDLen is the number of ID characters shown in listings.
const ShortIDLen = 8

// ShortID truncates an ID for display.
func ShortID(id string) string {
	if len(id) <= ShortIDLen {
		return id
	}
	return id[:ShortIDLen]
}

// StorePath returns the path to the store file.
func StorePath(dataDir string) string {
	return filepath.Join(dataDir, StoreFileName)
}

// DataConfigPath returns the path to the data-directory config file.
func DataConfigPath(dataDir string) string {
	return filepath.Join(dataDir, ConfigFileName)
}

// GlobalAppDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalAppDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalLogPath returns the path to the global log file.
func GlobalLogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", "desk.log")
}

// ClientLogPath returns the path to a client's log file.
func ClientLogPath(dataDir, clientID string) string {
	return filepath.Join(dataDir, "logs", "client-"+ShortID(clientID)+".log")
}

// FindByID looks up an item by exact ID or by a unique ID prefix.
// It returns notFound when nothing matches and ErrAmbiguousID when the
// prefix matches more than one item.
func FindByID[T any](items []T, idOrPrefix string, idOf func(T) string, notFound error) (T, error) {
	var zero T
	if idOrPrefix == "" {
		return zero, notFound
	}
	var match T
	matches := 0
	for _, item := range items {
		id := idOf(item)
		if id == idOrPrefix {
			return item, nil
		}
		if strings.HasPrefix(id, idOrPrefix) {
			match = item
			matches++
		}
	}
	switch matches {
	case 0:
		return zero, notFound
	case 1:
		return match, nil
	default:
		return zero, ErrAmbiguousID
	}
}

// FindTask resolves a task ID or prefix.
func FindTask(tasks []*Task, idOrPrefix string) (*Task, error) {
	return FindByID(tasks, idOrPrefix, func(t *Task) string { return t.ID }, ErrTaskNotFound)
}
