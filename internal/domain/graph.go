package domain

import (
	"fmt"
	"slices"
	"strings"
)

// TaskGraph is a read/write view over a task collection treated as a directed
// graph whose edges point from a task to the tasks it depends on.
// Edges are resolved by ID at traversal time; IDs that do not resolve are
// orphan references and are skipped everywhere.
type TaskGraph struct {
	byID  map[string]*Task
	tasks []*Task
}

// NewTaskGraph indexes tasks by ID. The graph shares the task pointers, so
// AddDependency and RemoveDependency mutate the caller's collection.
func NewTaskGraph(tasks []*Task) *TaskGraph {
	byID := make(map[string]*Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}
	return &TaskGraph{byID: byID, tasks: tasks}
}

// Get returns the task with the given ID, or nil.
func (g *TaskGraph) Get(id string) *Task {
	return g.byID[id]
}

// IsBlocked returns true if any direct dependency resolves to a task that is
// not completed. Orphan references do not block.
func (g *TaskGraph) IsBlocked(t *Task) bool {
	for _, id := range t.Dependencies {
		if dep := g.byID[id]; dep != nil && dep.Status != StatusCompleted {
			return true
		}
	}
	return false
}

// Blockers returns the direct dependencies of t that are not completed.
func (g *TaskGraph) Blockers(t *Task) []*Task {
	var out []*Task
	for _, id := range t.Dependencies {
		if dep := g.byID[id]; dep != nil && dep.Status != StatusCompleted {
			out = append(out, dep)
		}
	}
	return out
}

// Dependencies returns the resolvable direct dependencies of t.
func (g *TaskGraph) Dependencies(t *Task) []*Task {
	var out []*Task
	for _, id := range t.Dependencies {
		if dep := g.byID[id]; dep != nil {
			out = append(out, dep)
		}
	}
	return out
}

// MissingDependencies returns the dependency IDs of t that resolve to nothing.
func (g *TaskGraph) MissingDependencies(t *Task) []string {
	var out []string
	for _, id := range t.Dependencies {
		if g.byID[id] == nil {
			out = append(out, id)
		}
	}
	return out
}

// Dependents returns the tasks that list id as a direct dependency.
func (g *TaskGraph) Dependents(id string) []*Task {
	var out []*Task
	for _, t := range g.tasks {
		if t.HasDependency(id) {
			out = append(out, t)
		}
	}
	return out
}

// PathBetween runs a breadth-first search from `from` along dependency edges
// and returns the first path found to `to` (both ends included), or nil.
func (g *TaskGraph) PathBetween(from, to string) []string {
	if g.byID[from] == nil {
		return nil
	}
	if from == to {
		return []string{from}
	}

	prev := map[string]string{from: ""}
	queue := []string{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range g.byID[cur].Dependencies {
			if _, seen := prev[next]; seen || g.byID[next] == nil {
				continue
			}
			prev[next] = cur
			if next == to {
				return buildPath(prev, from, to)
			}
			queue = append(queue, next)
		}
	}
	return nil
}

func buildPath(prev map[string]string, from, to string) []string {
	path := []string{to}
	for cur := to; cur != from; {
		cur = prev[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}

// CheckDependency validates the edge taskID -> depID without changing anything.
// It returns ErrTaskNotFound, ErrDependencyNotFound, ErrCrossClientDependency
// or a *CycleError.
func (g *TaskGraph) CheckDependency(taskID, depID string) error {
	task := g.byID[taskID]
	if task == nil {
		return ErrTaskNotFound
	}
	if taskID == depID {
		return &CycleError{TaskID: taskID, DependencyID: depID, Path: []string{taskID, taskID}}
	}
	dep := g.byID[depID]
	if dep == nil {
		return ErrDependencyNotFound
	}
	if dep.ClientID != task.ClientID {
		return ErrCrossClientDependency
	}
	// Adding taskID -> depID closes a loop iff depID already reaches taskID.
	if back := g.PathBetween(depID, taskID); back != nil {
		return &CycleError{
			TaskID:       taskID,
			DependencyID: depID,
			Path:         append([]string{taskID}, back...),
		}
	}
	return nil
}

// AddDependency adds depID to the dependencies of taskID after CheckDependency
// passes. It returns false when the edge already existed.
// On error the collection is left unchanged.
func (g *TaskGraph) AddDependency(taskID, depID string) (bool, error) {
	if err := g.CheckDependency(taskID, depID); err != nil {
		return false, err
	}
	task := g.byID[taskID]
	if task.HasDependency(depID) {
		return false, nil
	}
	task.Dependencies = append(task.Dependencies, depID)
	return true, nil
}

// RemoveDependency drops every occurrence of depID from taskID's dependencies.
// It returns false if nothing was removed.
func (g *TaskGraph) RemoveDependency(taskID, depID string) (bool, error) {
	task := g.byID[taskID]
	if task == nil {
		return false, ErrTaskNotFound
	}
	n := len(task.Dependencies)
	task.Dependencies = slices.DeleteFunc(task.Dependencies, func(id string) bool {
		return id == depID
	})
	return len(task.Dependencies) != n, nil
}

// FindCycle returns one dependency cycle (first node repeated at the end),
// or nil if the graph is acyclic. Stored data is only ever mutated through
// AddDependency, so a cycle here means the file was edited by hand.
func (g *TaskGraph) FindCycle() []string {
	const (
		white = iota
		grey
		black
	)
	color := make(map[string]int, len(g.tasks))
	var stack []string

	var visit func(id string) []string
	visit = func(id string) []string {
		color[id] = grey
		stack = append(stack, id)
		for _, next := range g.byID[id].Dependencies {
			if g.byID[next] == nil {
				continue
			}
			switch color[next] {
			case grey:
				start := slices.Index(stack, next)
				return append(slices.Clone(stack[start:]), next)
			case white:
				if cycle := visit(next); cycle != nil {
					return cycle
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[id] = black
		return nil
	}

	for _, t := range g.tasks {
		if color[t.ID] == white {
			if cycle := visit(t.ID); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}

// CycleError reports that adding TaskID -> DependencyID would close a cycle.
// Path starts and ends with TaskID.
type CycleError struct {
	TaskID       string
	DependencyID string
	Path         []string
}

func (e *CycleError) Error() string {
	short := make([]string, len(e.Path))
	for i, id := range e.Path {
		short[i] = ShortID(id)
	}
	return fmt.Sprintf("%s: %s", ErrDependencyCycle, strings.Join(short, " -> "))
}

// Is lets errors.Is(err, ErrDependencyCycle) match.
func (e *CycleError) Is(target error) bool {
	return target == ErrDependencyCycle
}
