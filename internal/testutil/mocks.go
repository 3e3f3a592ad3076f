// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"sync"
	"time"

	"github.com/runoshun/client-desk/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockIDGenerator returns sequential IDs with a fixed prefix.
type MockIDGenerator struct {
	Prefix string
	n      int
}

// NewID returns the next ID, e.g. "id-1", "id-2".
func (m *MockIDGenerator) NewID() string {
	m.n++
	prefix := m.Prefix
	if prefix == "" {
		prefix = "id-"
	}
	return fmt.Sprintf("%s%d", prefix, m.n)
}

// MockStore is an in-memory test double for every store port.
// Loads return copies so that a failed save leaves the stored data untouched.
// Fields are ordered to minimize memory padding.
type MockStore struct {
	LoadErr       error // Returned by every Load method
	SaveErr       error // Returned by every Save method
	SaveTasksErr  error // Returned by SaveTasks only
	Settings      domain.Settings
	Clients       []*domain.Client
	Tasks         []*domain.Task
	Payments      []*domain.Payment
	Advances      []*domain.Advance
	Feedback      []*domain.Feedback
	Reviews       []*domain.Review
	Addresses     []*domain.Address
	Notifications []*domain.Notification
	SaveTasksN    int // Number of successful SaveTasks calls
	Initialized   bool
}

// NewMockStore creates an initialized empty MockStore.
func NewMockStore() *MockStore {
	return &MockStore{Initialized: true}
}

// Ensure MockStore implements the store ports.
var (
	_ domain.StoreInitializer       = (*MockStore)(nil)
	_ domain.TaskRepository         = (*MockStore)(nil)
	_ domain.ClientRepository       = (*MockStore)(nil)
	_ domain.LedgerRepository       = (*MockStore)(nil)
	_ domain.RegistryRepository     = (*MockStore)(nil)
	_ domain.NotificationRepository = (*MockStore)(nil)
	_ domain.Exporter               = (*MockStore)(nil)
	_ domain.Notifier               = (*MockStore)(nil)
)

func cloneAll[T any](items []*T) []*T {
	if items == nil {
		return nil
	}
	out := make([]*T, len(items))
	for i, item := range items {
		c := *item
		out[i] = &c
	}
	return out
}

func cloneTasks(tasks []*domain.Task) []*domain.Task {
	if tasks == nil {
		return nil
	}
	out := make([]*domain.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

// Initialize marks the store as initialized.
func (m *MockStore) Initialize() error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Initialized = true
	return nil
}

// IsInitialized returns the configured value.
func (m *MockStore) IsInitialized() bool {
	return m.Initialized
}

// LoadTasks returns a copy of the stored tasks.
func (m *MockStore) LoadTasks() ([]*domain.Task, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return cloneTasks(m.Tasks), nil
}

// SaveTasks replaces the stored tasks.
func (m *MockStore) SaveTasks(tasks []*domain.Task) error {
	if m.SaveTasksErr != nil {
		return m.SaveTasksErr
	}
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Tasks = cloneTasks(tasks)
	m.SaveTasksN++
	return nil
}

// LoadClients returns a copy of the stored clients.
func (m *MockStore) LoadClients() ([]*domain.Client, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return cloneAll(m.Clients), nil
}

// SaveClients replaces the stored clients.
func (m *MockStore) SaveClients(clients []*domain.Client) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Clients = cloneAll(clients)
	return nil
}

// LoadSettings returns the stored settings.
func (m *MockStore) LoadSettings() (domain.Settings, error) {
	if m.LoadErr != nil {
		return domain.Settings{}, m.LoadErr
	}
	return m.Settings, nil
}

// SaveSettings replaces the stored settings.
func (m *MockStore) SaveSettings(settings domain.Settings) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Settings = settings
	return nil
}

// LoadPayments returns a copy of the stored payments.
func (m *MockStore) LoadPayments() ([]*domain.Payment, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return cloneAll(m.Payments), nil
}

// SavePayments replaces the stored payments.
func (m *MockStore) SavePayments(payments []*domain.Payment) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Payments = cloneAll(payments)
	return nil
}

// LoadAdvances returns a copy of the stored advances.
func (m *MockStore) LoadAdvances() ([]*domain.Advance, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return cloneAll(m.Advances), nil
}

// SaveAdvances replaces the stored advances.
func (m *MockStore) SaveAdvances(advances []*domain.Advance) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Advances = cloneAll(advances)
	return nil
}

// LoadFeedback returns a copy of the stored feedback.
func (m *MockStore) LoadFeedback() ([]*domain.Feedback, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return cloneAll(m.Feedback), nil
}

// SaveFeedback replaces the stored feedback.
func (m *MockStore) SaveFeedback(feedback []*domain.Feedback) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Feedback = cloneAll(feedback)
	return nil
}

// LoadReviews returns a copy of the stored reviews.
func (m *MockStore) LoadReviews() ([]*domain.Review, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return cloneAll(m.Reviews), nil
}

// SaveReviews replaces the stored reviews.
func (m *MockStore) SaveReviews(reviews []*domain.Review) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Reviews = cloneAll(reviews)
	return nil
}

// LoadAddresses returns a copy of the stored addresses.
func (m *MockStore) LoadAddresses() ([]*domain.Address, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return cloneAll(m.Addresses), nil
}

// SaveAddresses replaces the stored addresses.
func (m *MockStore) SaveAddresses(addresses []*domain.Address) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Addresses = cloneAll(addresses)
	return nil
}

// LoadNotifications returns a copy of the stored notifications.
func (m *MockStore) LoadNotifications() ([]*domain.Notification, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return cloneAll(m.Notifications), nil
}

// SaveNotifications replaces the stored notifications.
func (m *MockStore) SaveNotifications(notifications []*domain.Notification) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Notifications = cloneAll(notifications)
	return nil
}

// Record appends a notification.
func (m *MockStore) Record(n domain.Notification) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Notifications = append(m.Notifications, &n)
	return nil
}

// Snapshot returns a copy of every collection.
func (m *MockStore) Snapshot() (*domain.Snapshot, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return &domain.Snapshot{
		Settings:      m.Settings,
		Clients:       cloneAll(m.Clients),
		Tasks:         cloneTasks(m.Tasks),
		Payments:      cloneAll(m.Payments),
		Advances:      cloneAll(m.Advances),
		Feedback:      cloneAll(m.Feedback),
		Reviews:       cloneAll(m.Reviews),
		Addresses:     cloneAll(m.Addresses),
		Notifications: cloneAll(m.Notifications),
	}, nil
}

// AddClient appends a client with the given ID and name.
func (m *MockStore) AddClient(id, name string) *domain.Client {
	c := &domain.Client{ID: id, Name: name}
	m.Clients = append(m.Clients, c)
	return c
}

// AddTask appends a pending task for clientID.
func (m *MockStore) AddTask(id, clientID string, deps ...string) *domain.Task {
	t := &domain.Task{
		ID:           id,
		ClientID:     clientID,
		Description:  "task " + id,
		Status:       domain.StatusPending,
		Priority:     domain.PriorityMedium,
		Dependencies: deps,
	}
	m.Tasks = append(m.Tasks, t)
	return t
}

// FindTask returns the stored task with id, or nil.
func (m *MockStore) FindTask(id string) *domain.Task {
	for _, t := range m.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// MockNotifier records notifications in memory.
type MockNotifier struct {
	Err           error
	Notifications []domain.Notification
}

// Record stores n unless Err is set.
func (m *MockNotifier) Record(n domain.Notification) error {
	if m.Err != nil {
		return m.Err
	}
	m.Notifications = append(m.Notifications, n)
	return nil
}

// LogEntry is a line captured by MockLogger.
type LogEntry struct {
	Level    string
	ClientID string
	Category string
	Msg      string
}

// MockLogger captures log entries.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) add(level, clientID, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, ClientID: clientID, Category: category, Msg: msg})
}

// Debug captures a debug entry.
func (m *MockLogger) Debug(clientID, category, msg string) { m.add("DEBUG", clientID, category, msg) }

// Info captures an info entry.
func (m *MockLogger) Info(clientID, category, msg string) { m.add("INFO", clientID, category, msg) }

// Warn captures a warn entry.
func (m *MockLogger) Warn(clientID, category, msg string) { m.add("WARN", clientID, category, msg) }

// Error captures an error entry.
func (m *MockLogger) Error(clientID, category, msg string) { m.add("ERROR", clientID, category, msg) }

// HasLevel reports whether any entry was logged at level.
func (m *MockLogger) HasLevel(level string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Entries {
		if e.Level == level {
			return true
		}
	}
	return false
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config    *domain.Config
	LoadErr   error
	GlobalErr error
}

// NewMockConfigLoader returns a loader serving the default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{Config: domain.NewDefaultConfig()}
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// LoadGlobal returns the configured config.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	if m.GlobalErr != nil {
		return nil, m.GlobalErr
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr    error
	DataInfo   domain.ConfigInfo
	GlobalInfo domain.ConfigInfo
	DataInit   bool
	GlobalInit bool
	Forced     bool
}

// GetDataConfigInfo returns the configured info.
func (m *MockConfigManager) GetDataConfigInfo() domain.ConfigInfo {
	return m.DataInfo
}

// GetGlobalConfigInfo returns the configured info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalInfo
}

// InitDataConfig records the call.
func (m *MockConfigManager) InitDataConfig(force bool) (string, error) {
	if m.InitErr != nil {
		return "", m.InitErr
	}
	m.DataInit = true
	m.Forced = force
	return m.DataInfo.Path, nil
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(force bool) (string, error) {
	if m.InitErr != nil {
		return "", m.InitErr
	}
	m.GlobalInit = true
	m.Forced = force
	return m.GlobalInfo.Path, nil
}
