package domain

import (
	"bytes"
	"fmt"
	"text/template"
)

// BlockingPolicy decides whether blocked tasks may be started or completed.
type BlockingPolicy string

const (
	// BlockingAdvisory surfaces the blocked state but allows every transition.
	BlockingAdvisory BlockingPolicy = "advisory"
	// BlockingStrict refuses In Progress and Completed while a task is blocked.
	BlockingStrict BlockingPolicy = "strict"
)

// IsValid returns true if the policy is a known value.
func (p BlockingPolicy) IsValid() bool {
	return p == BlockingAdvisory || p == BlockingStrict
}

// Default configuration values.
const (
	DefaultLogLevel       = "info"
	DefaultBlockingPolicy = BlockingAdvisory
	DefaultPriority       = PriorityMedium
	DefaultDueInDays      = 7
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string     `toml:"-"`
	Tasks    TasksConfig  `toml:"tasks"`
	Log      LogConfig    `toml:"log"`
	Notify   NotifyConfig `toml:"notify"`
}

// TasksConfig holds task settings from the [tasks] section.
type TasksConfig struct {
	Blocking        BlockingPolicy `toml:"blocking"`
	DefaultPriority Priority       `toml:"default_priority"`
	DueInDays       int            `toml:"due_in_days"`
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// NotifyConfig holds notification settings from the [notify] section.
type NotifyConfig struct {
	Enabled bool `toml:"enabled"`
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Tasks: TasksConfig{
			Blocking:        DefaultBlockingPolicy,
			DefaultPriority: DefaultPriority,
			DueInDays:       DefaultDueInDays,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Notify: NotifyConfig{
			Enabled: true,
		},
	}
}

const configTemplateContent = `# desk configuration
#
# Settings in the data directory override the global file
# (~/.config/desk/config.toml).

[tasks]
# "advisory": blocked tasks are flagged but can still change status.
# "strict": blocked tasks cannot move to "In Progress" or "Completed".
blocking = "<< .Blocking >>"

# Priority given to new tasks when --priority is omitted (Low, Medium, High).
default_priority = "<< .Priority >>"

# New tasks are due this many days from today when --due is omitted.
due_in_days = << .DueInDays >>

[notify]
# Record a notification when a task's status or description changes.
enabled = << .NotifyEnabled >>

[log]
# debug, info, warn, error
level = "<< .LogLevel >>"
`

type templateData struct {
	Blocking      BlockingPolicy
	Priority      Priority
	LogLevel      string
	DueInDays     int
	NotifyEnabled bool
}

// RenderConfigTemplate renders the commented config file for cfg's values.
func RenderConfigTemplate(cfg *Config) string {
	data := templateData{
		Blocking:      cfg.Tasks.Blocking,
		Priority:      cfg.Tasks.DefaultPriority,
		DueInDays:     cfg.Tasks.DueInDays,
		NotifyEnabled: cfg.Notify.Enabled,
		LogLevel:      cfg.Log.Level,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}
