package domain

import "time"

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates the store if it doesn't exist.
	Initialize() error

	// IsInitialized reports whether the store exists.
	IsInitialized() bool
}

// TaskRepository persists the task collection as a whole.
// Every mutation loads the full set, changes it in memory and saves it back.
type TaskRepository interface {
	// LoadTasks returns every task of every client.
	LoadTasks() ([]*Task, error)

	// SaveTasks replaces the stored task collection.
	SaveTasks(tasks []*Task) error
}

// ClientRepository persists clients and the current-client selection.
type ClientRepository interface {
	LoadClients() ([]*Client, error)
	SaveClients(clients []*Client) error
	LoadSettings() (Settings, error)
	SaveSettings(settings Settings) error
}

// LedgerRepository persists payments, advances and feedback.
type LedgerRepository interface {
	LoadPayments() ([]*Payment, error)
	SavePayments(payments []*Payment) error
	LoadAdvances() ([]*Advance, error)
	SaveAdvances(advances []*Advance) error
	LoadFeedback() ([]*Feedback, error)
	SaveFeedback(feedback []*Feedback) error
}

// RegistryRepository persists the review and address registries.
type RegistryRepository interface {
	LoadReviews() ([]*Review, error)
	SaveReviews(reviews []*Review) error
	LoadAddresses() ([]*Address, error)
	SaveAddresses(addresses []*Address) error
}

// NotificationRepository persists notifications.
type NotificationRepository interface {
	LoadNotifications() ([]*Notification, error)
	SaveNotifications(notifications []*Notification) error
}

// Notifier records a notification. Callers treat it as fire-and-forget:
// a failure is logged and never fails the operation that triggered it.
type Notifier interface {
	Record(n Notification) error
}

// NopNotifier discards notifications. Used when [notify] is disabled.
type NopNotifier struct{}

// Record does nothing.
func (NopNotifier) Record(Notification) error { return nil }

// Snapshot is a copy of every stored collection.
// Fields are ordered to minimize memory padding.
type Snapshot struct {
	Settings      Settings        `json:"settings" yaml:"settings"`
	Clients       []*Client       `json:"clients" yaml:"clients"`
	Tasks         []*Task         `json:"tasks" yaml:"tasks"`
	Payments      []*Payment      `json:"payments" yaml:"payments"`
	Advances      []*Advance      `json:"advances" yaml:"advances"`
	Feedback      []*Feedback     `json:"feedback" yaml:"feedback"`
	Reviews       []*Review       `json:"reviews" yaml:"reviews"`
	Addresses     []*Address      `json:"addresses" yaml:"addresses"`
	Notifications []*Notification `json:"notifications" yaml:"notifications"`
}

// Exporter reads every collection at once.
type Exporter interface {
	Snapshot() (*Snapshot, error)
}

// IDGenerator produces IDs unique within the local store.
type IDGenerator interface {
	NewID() string
}

// Logger writes operational logs, optionally scoped to a client.
// An empty clientID logs to the global log only.
type Logger interface {
	Debug(clientID, category, msg string)
	Info(clientID, category, msg string)
	Warn(clientID, category, msg string)
	Error(clientID, category, msg string)
}

// NopLogger discards log entries.
type NopLogger struct{}

func (NopLogger) Debug(string, string, string) {}
func (NopLogger) Info(string, string, string)  {}
func (NopLogger) Warn(string, string, string)  {}
func (NopLogger) Error(string, string, string) {}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (data dir + global).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetDataConfigInfo returns information about the data-directory config file.
	GetDataConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitDataConfig writes the template to the data-directory config file.
	InitDataConfig(force bool) (string, error)

	// InitGlobalConfig writes the template to the global config file.
	InitGlobalConfig(force bool) (string, error)
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
