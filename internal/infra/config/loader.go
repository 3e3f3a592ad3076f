// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/client-desk/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	dataDir       string // Path to the data directory
	globalConfDir string // Path to global config directory (e.g., ~/.config/desk)
}

// NewLoader creates a new Loader.
func NewLoader(dataDir string) *Loader {
	return &Loader{
		dataDir:       dataDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(dataDir, globalConfDir string) *Loader {
	return &Loader{
		dataDir:       dataDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalAppDir(configHome)
}

// Load returns the merged configuration: default <- global <- data dir.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.loadOptional(l.globalPath())
	if err != nil {
		return nil, err
	}
	local, err := l.loadOptional(domain.DataConfigPath(l.dataDir))
	if err != nil {
		return nil, err
	}

	cfg := domain.NewDefaultConfig()
	for _, f := range []*fileConfig{global, local} {
		if f != nil {
			f.applyTo(cfg)
		}
	}
	validate(cfg)
	return cfg, nil
}

// LoadGlobal returns defaults overlaid with the global configuration only.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	path := l.globalPath()
	if path == "" {
		return nil, os.ErrNotExist
	}
	f, err := l.loadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := domain.NewDefaultConfig()
	f.applyTo(cfg)
	validate(cfg)
	return cfg, nil
}

func (l *Loader) globalPath() string {
	if l.globalConfDir == "" {
		return ""
	}
	return filepath.Join(l.globalConfDir, domain.ConfigFileName)
}

// loadOptional loads path, returning nil when the file does not exist.
func (l *Loader) loadOptional(path string) (*fileConfig, error) {
	if path == "" {
		return nil, nil
	}
	f, err := l.loadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return f, err
}

// fileConfig mirrors the TOML file. Pointer fields distinguish "unset"
// from zero values so that later files only override what they set.
type fileConfig struct {
	Tasks struct {
		Blocking        *string `toml:"blocking"`
		DefaultPriority *string `toml:"default_priority"`
		DueInDays       *int    `toml:"due_in_days"`
	} `toml:"tasks"`
	Notify struct {
		Enabled *bool `toml:"enabled"`
	} `toml:"notify"`
	Log struct {
		Level *string `toml:"level"`
	} `toml:"log"`

	warnings []string
}

// knownKeys lists the accepted keys per section for unknown-key warnings.
var knownKeys = map[string][]string{
	"tasks":  {"blocking", "default_priority", "due_in_days"},
	"notify": {"enabled"},
	"log":    {"level"},
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f fileConfig
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	f.warnings = unknownKeyWarnings(raw)

	return &f, nil
}

func unknownKeyWarnings(raw map[string]any) []string {
	var warnings []string
	sections := make([]string, 0, len(raw))
	for section := range raw {
		sections = append(sections, section)
	}
	sort.Strings(sections)

	for _, section := range sections {
		known, ok := knownKeys[section]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown section: [%s]", section))
			continue
		}
		table, ok := raw[section].(map[string]any)
		if !ok {
			continue
		}
		keys := make([]string, 0, len(table))
		for k := range table {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !contains(known, k) {
				warnings = append(warnings, fmt.Sprintf("unknown key in [%s]: %s", section, k))
			}
		}
	}
	return warnings
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// applyTo overlays the values set in f onto cfg.
func (f *fileConfig) applyTo(cfg *domain.Config) {
	if f.Tasks.Blocking != nil {
		cfg.Tasks.Blocking = domain.BlockingPolicy(*f.Tasks.Blocking)
	}
	if f.Tasks.DefaultPriority != nil {
		cfg.Tasks.DefaultPriority = domain.Priority(*f.Tasks.DefaultPriority)
	}
	if f.Tasks.DueInDays != nil {
		cfg.Tasks.DueInDays = *f.Tasks.DueInDays
	}
	if f.Notify.Enabled != nil {
		cfg.Notify.Enabled = *f.Notify.Enabled
	}
	if f.Log.Level != nil {
		cfg.Log.Level = *f.Log.Level
	}
	cfg.Warnings = append(cfg.Warnings, f.warnings...)
}

// validate replaces invalid values with defaults and records warnings.
func validate(cfg *domain.Config) {
	if !cfg.Tasks.Blocking.IsValid() {
		cfg.Warnings = append(cfg.Warnings,
			fmt.Sprintf("invalid [tasks] blocking %q, using %q", cfg.Tasks.Blocking, domain.DefaultBlockingPolicy))
		cfg.Tasks.Blocking = domain.DefaultBlockingPolicy
	}
	if p, err := domain.ParsePriority(string(cfg.Tasks.DefaultPriority)); err != nil {
		cfg.Warnings = append(cfg.Warnings,
			fmt.Sprintf("invalid [tasks] default_priority %q, using %q", cfg.Tasks.DefaultPriority, domain.DefaultPriority))
		cfg.Tasks.DefaultPriority = domain.DefaultPriority
	} else {
		cfg.Tasks.DefaultPriority = p
	}
	if cfg.Tasks.DueInDays < 0 {
		cfg.Warnings = append(cfg.Warnings,
			fmt.Sprintf("invalid [tasks] due_in_days %d, using %d", cfg.Tasks.DueInDays, domain.DefaultDueInDays))
		cfg.Tasks.DueInDays = domain.DefaultDueInDays
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		cfg.Warnings = append(cfg.Warnings,
			fmt.Sprintf("invalid [log] level %q, using %q", cfg.Log.Level, domain.DefaultLogLevel))
		cfg.Log.Level = domain.DefaultLogLevel
	}
}
