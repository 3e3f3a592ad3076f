package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/runoshun/client-desk/internal/app"
	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/testutil"
)

var testNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

// newTestContainer creates an app.Container with mock dependencies.
func newTestContainer(t *testing.T, store *testutil.MockStore, cfg *domain.Config) *app.Container {
	t.Helper()
	return app.NewWithDeps(
		app.NewConfig(t.TempDir()),
		store,
		&testutil.MockClock{NowTime: testNow},
		&testutil.MockIDGenerator{},
		&testutil.MockLogger{},
		cfg,
	)
}

// execute runs the root command with args and returns stdout and stderr.
func execute(c *app.Container, args ...string) (string, string, error) {
	root := NewRootCommand(c, "test")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// seededStore returns a store with one client and two tasks, the second
// depending on the first.
func seededStore() *testutil.MockStore {
	store := testutil.NewMockStore()
	store.AddClient("client-1", "Acme")
	store.AddTask("task-aaa1", "client-1")
	store.AddTask("task-bbb2", "client-1", "task-aaa1")
	return store
}
