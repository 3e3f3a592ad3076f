package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/runoshun/client-desk/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := New(filepath.Join(t.TempDir(), "desk.json"))
	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	return store
}

func TestStore_Initialize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "desk.json")

	store := New(path)
	if store.IsInitialized() {
		t.Fatal("IsInitialized() = true before Initialize")
	}

	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("store file not created: %v", err)
	}
	if !store.IsInitialized() {
		t.Error("IsInitialized() = false after Initialize")
	}

	// Initialize again should be idempotent
	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() second call error = %v", err)
	}
}

func TestStore_NotInitialized(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "desk.json"))

	_, err := store.LoadTasks()
	if !errors.Is(err, domain.ErrNotInitialized) {
		t.Errorf("LoadTasks() error = %v, want ErrNotInitialized", err)
	}
}

func TestStore_EmptyCollections(t *testing.T) {
	store := newTestStore(t)

	tasks, err := store.LoadTasks()
	if err != nil {
		t.Fatalf("LoadTasks() error = %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("LoadTasks() = %d tasks, want 0", len(tasks))
	}

	settings, err := store.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if settings.ActiveClientID != "" {
		t.Errorf("ActiveClientID = %q, want empty", settings.ActiveClientID)
	}
}

func TestStore_SaveAndLoadTasks(t *testing.T) {
	store := newTestStore(t)

	due, _ := domain.ParseDate("2025-04-01")
	now := time.Now().Truncate(time.Second)
	tasks := []*domain.Task{
		{ID: "t1", ClientID: "c1", Description: "Design", Status: domain.StatusPending, Priority: domain.PriorityHigh, DueDate: due, Created: now},
		{ID: "t2", ClientID: "c1", Description: "Build", Status: domain.StatusInProgress, Priority: domain.PriorityLow, Dependencies: []string{"t1"}, Created: now},
	}

	if err := store.SaveTasks(tasks); err != nil {
		t.Fatalf("SaveTasks() error = %v", err)
	}

	got, err := store.LoadTasks()
	if err != nil {
		t.Fatalf("LoadTasks() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("LoadTasks() = %d tasks, want 2", len(got))
	}
	if got[0].ID != "t1" || got[1].ID != "t2" {
		t.Errorf("order not preserved: %s, %s", got[0].ID, got[1].ID)
	}
	if got[0].DueDate.String() != "2025-04-01" {
		t.Errorf("DueDate = %s, want 2025-04-01", got[0].DueDate)
	}
	if len(got[1].Dependencies) != 1 || got[1].Dependencies[0] != "t1" {
		t.Errorf("Dependencies = %v, want [t1]", got[1].Dependencies)
	}
	if !got[0].Created.Equal(now) {
		t.Errorf("Created = %v, want %v", got[0].Created, now)
	}
}

func TestStore_SaveReplacesWholeCollection(t *testing.T) {
	store := newTestStore(t)

	if err := store.SaveTasks([]*domain.Task{{ID: "a"}, {ID: "b"}}); err != nil {
		t.Fatalf("SaveTasks() error = %v", err)
	}
	if err := store.SaveTasks([]*domain.Task{{ID: "c"}}); err != nil {
		t.Fatalf("SaveTasks() error = %v", err)
	}

	got, err := store.LoadTasks()
	if err != nil {
		t.Fatalf("LoadTasks() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "c" {
		t.Errorf("LoadTasks() = %v, want only c", got)
	}
}

func TestStore_CollectionsAreIndependent(t *testing.T) {
	store := newTestStore(t)

	if err := store.SaveClients([]*domain.Client{{ID: "c1", Name: "Emma"}}); err != nil {
		t.Fatalf("SaveClients() error = %v", err)
	}
	if err := store.SavePayments([]*domain.Payment{{ID: "p1", ClientID: "c1", Amount: 10, Status: domain.PaymentPaid}}); err != nil {
		t.Fatalf("SavePayments() error = %v", err)
	}
	if err := store.SaveAdvances([]*domain.Advance{{ID: "a1", ClientID: "c1", Amount: 5, Type: domain.AdvanceReceived}}); err != nil {
		t.Fatalf("SaveAdvances() error = %v", err)
	}
	if err := store.SaveFeedback([]*domain.Feedback{{ID: "f1", ClientID: "c1", Rating: 5}}); err != nil {
		t.Fatalf("SaveFeedback() error = %v", err)
	}
	if err := store.SaveReviews([]*domain.Review{{ID: "r1", ClientID: "c1", Kind: domain.ReviewTrustpilot, Status: domain.ReviewInvoiceApproved}}); err != nil {
		t.Fatalf("SaveReviews() error = %v", err)
	}
	if err := store.SaveAddresses([]*domain.Address{{ID: "ad1", ClientID: "c1", FullAddress: "1 Main St"}}); err != nil {
		t.Fatalf("SaveAddresses() error = %v", err)
	}
	if err := store.SaveSettings(domain.Settings{ActiveClientID: "c1"}); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	clients, _ := store.LoadClients()
	payments, _ := store.LoadPayments()
	advances, _ := store.LoadAdvances()
	feedback, _ := store.LoadFeedback()
	reviews, _ := store.LoadReviews()
	addresses, _ := store.LoadAddresses()
	settings, _ := store.LoadSettings()

	if len(clients) != 1 || clients[0].Name != "Emma" {
		t.Errorf("clients = %v", clients)
	}
	if len(payments) != 1 || payments[0].Amount != 10 {
		t.Errorf("payments = %v", payments)
	}
	if len(advances) != 1 || advances[0].Type != domain.AdvanceReceived {
		t.Errorf("advances = %v", advances)
	}
	if len(feedback) != 1 || feedback[0].Rating != 5 {
		t.Errorf("feedback = %v", feedback)
	}
	if len(reviews) != 1 || reviews[0].Status != domain.ReviewInvoiceApproved {
		t.Errorf("reviews = %v", reviews)
	}
	if len(addresses) != 1 || addresses[0].FullAddress != "1 Main St" {
		t.Errorf("addresses = %v", addresses)
	}
	if settings.ActiveClientID != "c1" {
		t.Errorf("settings = %+v", settings)
	}
}

func TestStore_RecordAppendsNotification(t *testing.T) {
	store := newTestStore(t)

	for _, msg := range []string{"first", "second"} {
		if err := store.Record(domain.Notification{ID: msg, ClientID: "c1", Message: msg}); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	got, err := store.LoadNotifications()
	if err != nil {
		t.Fatalf("LoadNotifications() error = %v", err)
	}
	if len(got) != 2 || got[0].Message != "first" || got[1].Message != "second" {
		t.Errorf("notifications = %v", got)
	}
}

func TestStore_Snapshot(t *testing.T) {
	store := newTestStore(t)
	_ = store.SaveClients([]*domain.Client{{ID: "c1", Name: "Emma"}})
	_ = store.SaveTasks([]*domain.Task{{ID: "t1", ClientID: "c1"}})
	_ = store.SaveSettings(domain.Settings{ActiveClientID: "c1"})
	_ = store.SaveReviews([]*domain.Review{{ID: "r1", ClientID: "c1", Kind: domain.ReviewGoogle}})

	snap, err := store.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if len(snap.Clients) != 1 || len(snap.Tasks) != 1 || len(snap.Reviews) != 1 {
		t.Errorf("snapshot = %+v", snap)
	}
	if snap.Settings.ActiveClientID != "c1" {
		t.Errorf("Settings.ActiveClientID = %q", snap.Settings.ActiveClientID)
	}
	if snap.Payments != nil {
		t.Errorf("Payments = %v, want nil for missing collection", snap.Payments)
	}
}

func TestStore_CorruptFile(t *testing.T) {
	store := newTestStore(t)
	if err := os.WriteFile(store.path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := store.LoadTasks(); err == nil {
		t.Error("LoadTasks() expected error for corrupt file")
	}
}

func TestStore_LoadSkipsNullEntries(t *testing.T) {
	store := newTestStore(t)
	content := `{"collections":{"tasks":[null,{"id":"t1","clientId":"c1","description":"ship"},null]},"meta":{"version":1}}`
	if err := os.WriteFile(store.path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	tasks, err := store.LoadTasks()
	if err != nil {
		t.Fatalf("LoadTasks() error = %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != "t1" {
		t.Fatalf("LoadTasks() = %v, want only t1", tasks)
	}

	// The graph must be buildable from the loaded collection.
	graph := domain.NewTaskGraph(tasks)
	if graph.IsBlocked(tasks[0]) {
		t.Error("IsBlocked() = true for a task without dependencies")
	}
}
