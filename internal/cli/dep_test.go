package cli

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/runoshun/client-desk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepAdd(t *testing.T) {
	store := seededStore()
	store.AddTask("task-ccc3", "client-1")
	c := newTestContainer(t, store, nil)

	out, _, err := execute(c, "dep", "add", "task-ccc", "task-bbb")
	require.NoError(t, err)
	assert.Contains(t, out, "Task task-ccc now depends on task-bbb")
	assert.Equal(t, []string{"task-bbb2"}, store.FindTask("task-ccc3").Dependencies)

	out, _, err = execute(c, "dep", "add", "task-ccc", "task-bbb")
	require.NoError(t, err)
	assert.Contains(t, out, "already depends on")
	assert.Equal(t, []string{"task-bbb2"}, store.FindTask("task-ccc3").Dependencies)
}

func TestDepAdd_RejectsCycle(t *testing.T) {
	store := seededStore()
	c := newTestContainer(t, store, nil)

	_, _, err := execute(c, "dep", "add", "task-aaa", "task-bbb")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDependencyCycle)

	var cycleErr *domain.CycleError
	require.True(t, errors.As(err, &cycleErr))
	assert.Equal(t, "task-aaa1", cycleErr.TaskID)
	assert.Empty(t, store.FindTask("task-aaa1").Dependencies)
}

func TestDepAdd_RejectsSelfAndUnknown(t *testing.T) {
	c := newTestContainer(t, seededStore(), nil)

	_, _, err := execute(c, "dep", "add", "task-aaa", "task-aaa")
	assert.ErrorIs(t, err, domain.ErrDependencyCycle)

	_, _, err = execute(c, "dep", "add", "task-aaa", "nope")
	assert.ErrorIs(t, err, domain.ErrDependencyNotFound)
}

func TestDepAdd_RejectsCrossClient(t *testing.T) {
	store := seededStore()
	store.AddClient("client-2", "Globex")
	store.AddTask("other-1", "client-2")
	c := newTestContainer(t, store, nil)

	_, _, err := execute(c, "dep", "add", "task-aaa", "other-1")
	assert.ErrorIs(t, err, domain.ErrCrossClientDependency)
}

func TestDepRm(t *testing.T) {
	store := seededStore()
	c := newTestContainer(t, store, nil)

	out, _, err := execute(c, "dep", "rm", "task-bbb", "task-aaa")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed dependency task-bbb -> task-aaa")
	assert.Empty(t, store.FindTask("task-bbb2").Dependencies)

	out, _, err = execute(c, "dep", "rm", "task-bbb", "task-aaa")
	require.NoError(t, err)
	assert.Contains(t, out, "does not depend on task-aaa")
}

func TestDepCheck(t *testing.T) {
	store := seededStore()
	c := newTestContainer(t, store, nil)

	out, _, err := execute(c, "dep", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "Dependencies of Acme are consistent.")

	// Corrupt the stored graph the way a hand-edited file could.
	store.FindTask("task-aaa1").Dependencies = []string{"task-bbb2", "gone-1"}

	out, _, err = execute(c, "dep", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "Cycle: ")
	assert.Contains(t, out, "Dangling: task-aaa -> gone-1 (missing)")

	out, _, err = execute(c, "dep", "check", "-o", "json")
	require.NoError(t, err)
	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, false, result["ok"])
}
