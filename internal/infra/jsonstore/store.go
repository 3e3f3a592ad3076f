// Package jsonstore provides a JSON file-based implementation of the
// domain repositories. The file holds one named collection per entity and
// every save replaces a whole collection.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"syscall"

	"github.com/runoshun/client-desk/internal/domain"
)

// Collection keys in the store file.
const (
	keyClients       = "clients"
	keyTasks         = "tasks"
	keyPayments      = "payments"
	keyAdvances      = "advances"
	keyFeedback      = "feedback"
	keyReviews       = "reviews"
	keyAddresses     = "addresses"
	keyNotifications = "notifications"
	keySettings      = "settings"
)

// schemaVersion is written to new store files.
const schemaVersion = 1

// storeData represents the JSON file structure.
type storeData struct {
	Collections map[string]json.RawMessage `json:"collections"`
	Meta        meta                       `json:"meta"`
}

// meta contains store metadata.
type meta struct {
	Version int `json:"version"`
}

// Store implements the domain repositories using a JSON file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; Initialize creates it.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Ensure Store implements the repository ports.
var (
	_ domain.TaskRepository         = (*Store)(nil)
	_ domain.ClientRepository       = (*Store)(nil)
	_ domain.LedgerRepository       = (*Store)(nil)
	_ domain.RegistryRepository     = (*Store)(nil)
	_ domain.NotificationRepository = (*Store)(nil)
	_ domain.Notifier               = (*Store)(nil)
	_ domain.Exporter               = (*Store)(nil)
	_ domain.StoreInitializer       = (*Store)(nil)
)

// LoadTasks returns every stored task.
func (s *Store) LoadTasks() ([]*domain.Task, error) {
	return loadCollection[domain.Task](s, keyTasks)
}

// SaveTasks replaces the task collection.
func (s *Store) SaveTasks(tasks []*domain.Task) error {
	return saveCollection(s, keyTasks, tasks)
}

// LoadClients returns every stored client.
func (s *Store) LoadClients() ([]*domain.Client, error) {
	return loadCollection[domain.Client](s, keyClients)
}

// SaveClients replaces the client collection.
func (s *Store) SaveClients(clients []*domain.Client) error {
	return saveCollection(s, keyClients, clients)
}

// LoadPayments returns every stored payment.
func (s *Store) LoadPayments() ([]*domain.Payment, error) {
	return loadCollection[domain.Payment](s, keyPayments)
}

// SavePayments replaces the payment collection.
func (s *Store) SavePayments(payments []*domain.Payment) error {
	return saveCollection(s, keyPayments, payments)
}

// LoadAdvances returns every stored advance.
func (s *Store) LoadAdvances() ([]*domain.Advance, error) {
	return loadCollection[domain.Advance](s, keyAdvances)
}

// SaveAdvances replaces the advance collection.
func (s *Store) SaveAdvances(advances []*domain.Advance) error {
	return saveCollection(s, keyAdvances, advances)
}

// LoadFeedback returns every stored feedback entry.
func (s *Store) LoadFeedback() ([]*domain.Feedback, error) {
	return loadCollection[domain.Feedback](s, keyFeedback)
}

// SaveFeedback replaces the feedback collection.
func (s *Store) SaveFeedback(feedback []*domain.Feedback) error {
	return saveCollection(s, keyFeedback, feedback)
}

// LoadReviews returns every stored review.
func (s *Store) LoadReviews() ([]*domain.Review, error) {
	return loadCollection[domain.Review](s, keyReviews)
}

// SaveReviews replaces the review collection.
func (s *Store) SaveReviews(reviews []*domain.Review) error {
	return saveCollection(s, keyReviews, reviews)
}

// LoadAddresses returns every stored address.
func (s *Store) LoadAddresses() ([]*domain.Address, error) {
	return loadCollection[domain.Address](s, keyAddresses)
}

// SaveAddresses replaces the address collection.
func (s *Store) SaveAddresses(addresses []*domain.Address) error {
	return saveCollection(s, keyAddresses, addresses)
}

// LoadNotifications returns every stored notification.
func (s *Store) LoadNotifications() ([]*domain.Notification, error) {
	return loadCollection[domain.Notification](s, keyNotifications)
}

// SaveNotifications replaces the notification collection.
func (s *Store) SaveNotifications(notifications []*domain.Notification) error {
	return saveCollection(s, keyNotifications, notifications)
}

// Record appends a notification under a single write lock.
func (s *Store) Record(n domain.Notification) error {
	return s.withLockWrite(func(data *storeData) error {
		var list []*domain.Notification
		if err := decode(data, keyNotifications, &list); err != nil {
			return err
		}
		list = append(list, &n)
		return encode(data, keyNotifications, list)
	})
}

// LoadSettings returns the persisted settings (zero value if none).
func (s *Store) LoadSettings() (domain.Settings, error) {
	var settings domain.Settings
	err := s.withLock(func(data *storeData) error {
		return decode(data, keySettings, &settings)
	})
	return settings, err
}

// SaveSettings replaces the persisted settings.
func (s *Store) SaveSettings(settings domain.Settings) error {
	return s.withLockWrite(func(data *storeData) error {
		return encode(data, keySettings, settings)
	})
}

// Snapshot reads every collection under one shared lock.
func (s *Store) Snapshot() (*domain.Snapshot, error) {
	snap := &domain.Snapshot{}
	err := s.withLock(func(data *storeData) error {
		targets := map[string]any{
			keySettings:      &snap.Settings,
			keyClients:       &snap.Clients,
			keyTasks:         &snap.Tasks,
			keyPayments:      &snap.Payments,
			keyAdvances:      &snap.Advances,
			keyFeedback:      &snap.Feedback,
			keyReviews:       &snap.Reviews,
			keyAddresses:     &snap.Addresses,
			keyNotifications: &snap.Notifications,
		}
		for key, target := range targets {
			if err := decode(data, key, target); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// IsInitialized checks if the store file exists.
func (s *Store) IsInitialized() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Initialize creates an empty store file if it doesn't exist.
func (s *Store) Initialize() error {
	// Ensure parent directory exists
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return nil // Already exists
	}

	data := &storeData{
		Meta:        meta{Version: schemaVersion},
		Collections: make(map[string]json.RawMessage),
	}
	return s.write(data)
}

func loadCollection[T any](s *Store, key string) ([]*T, error) {
	var items []*T
	err := s.withLock(func(data *storeData) error {
		return decode(data, key, &items)
	})
	if err != nil {
		return nil, err
	}
	// A null array entry decodes to a nil pointer.
	return slices.DeleteFunc(items, func(item *T) bool { return item == nil }), nil
}

func saveCollection[T any](s *Store, key string, items []*T) error {
	if items == nil {
		items = []*T{} // Store [] rather than null
	}
	return s.withLockWrite(func(data *storeData) error {
		return encode(data, key, items)
	})
}

// decode unmarshals a collection; a missing key leaves target untouched.
func decode(data *storeData, key string, target any) error {
	raw, ok := data.Collections[key]
	if !ok || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("parse %s collection: %w", key, err)
	}
	return nil
}

func encode(data *storeData, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s collection: %w", key, err)
	}
	data.Collections[key] = raw
	return nil
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() (*storeData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotInitialized
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var data storeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}

	if data.Collections == nil {
		data.Collections = make(map[string]json.RawMessage)
	}

	return &data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
