package shared

import (
	"errors"
	"testing"
	"time"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTask_Success(t *testing.T) {
	store := testutil.NewMockStore()
	store.AddTask("abc123", "c1")
	store.AddTask("def456", "c1")

	tasks, task, err := LoadTask(store, "def")

	require.NoError(t, err)
	assert.Len(t, tasks, 2)
	assert.Equal(t, "def456", task.ID)
	assert.Same(t, tasks[1], task)
}

func TestLoadTask_NotFound(t *testing.T) {
	store := testutil.NewMockStore()

	_, task, err := LoadTask(store, "nope")

	assert.Nil(t, task)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestLoadTask_RepositoryError(t *testing.T) {
	store := testutil.NewMockStore()
	store.LoadErr = errors.New("disk on fire")

	_, _, err := LoadTask(store, "abc")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load tasks")
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestResolveClient(t *testing.T) {
	store := testutil.NewMockStore()
	store.AddClient("c1", "Acme")
	store.AddClient("c2", "Globex")

	c, err := ResolveClient(store, "")
	require.NoError(t, err)
	assert.Equal(t, "c1", c.ID)

	store.Settings.ActiveClientID = "c2"
	c, err = ResolveClient(store, "")
	require.NoError(t, err)
	assert.Equal(t, "c2", c.ID)

	c, err = ResolveClient(store, "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", c.ID)

	_, err = ResolveClient(testutil.NewMockStore(), "")
	assert.ErrorIs(t, err, domain.ErrNoClientSelected)
}

func TestNotify_LogsFailure(t *testing.T) {
	clock := &testutil.MockClock{NowTime: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	ids := &testutil.MockIDGenerator{}
	logger := &testutil.MockLogger{}

	ok := &testutil.MockNotifier{}
	Notify(ok, ids, clock, logger, "c1", "hello")
	require.Len(t, ok.Notifications, 1)
	assert.Equal(t, domain.Notification{ID: "id-1", ClientID: "c1", Message: "hello", Time: clock.NowTime}, ok.Notifications[0])
	assert.Empty(t, logger.Entries)

	failing := &testutil.MockNotifier{Err: errors.New("full")}
	Notify(failing, ids, clock, logger, "c1", "hello")
	assert.True(t, logger.HasLevel("WARN"))
}
