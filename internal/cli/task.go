package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/runoshun/client-desk/internal/app"
	"github.com/runoshun/client-desk/internal/domain"
	"github.com/runoshun/client-desk/internal/tui"
	"github.com/runoshun/client-desk/internal/usecase"
	"github.com/spf13/cobra"
)

// newTaskCommand creates the task command group.
func newTaskCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks"},
		Short:   "Manage tasks",
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(
		newTaskNewCommand(c),
		newTaskListCommand(c),
		newTaskShowCommand(c),
		newTaskEditCommand(c),
		newTaskStatusCommand(c),
		newTaskRmCommand(c),
	)
	return cmd
}

func newTaskNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		ClientID    string
		Description string
		Due         string
		Priority    string
	}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a task",
		Long: `Create a task for a client.

The task starts as Pending with no dependencies. Without --due it is due
[tasks] due_in_days from today; without --priority it gets
[tasks] default_priority.

Examples:
  desk task new --desc "Draft homepage copy"
  desk task new --desc "Final invoice" --due 2026-06-30 --priority high`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			due, err := dateFlag(cmd, "due", opts.Due)
			if err != nil {
				return err
			}
			priority, err := priorityFlag(cmd, "priority", opts.Priority)
			if err != nil {
				return err
			}

			out, err := c.NewTaskUseCase().Execute(cmd.Context(), usecase.NewTaskInput{
				ClientID:    opts.ClientID,
				Description: opts.Description,
				DueDate:     due,
				Priority:    priority,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task %s (due %s)\n", domain.ShortID(out.Task.ID), out.Task.DueDate)
			return nil
		},
	}

	addClientFlag(cmd, &opts.ClientID)
	cmd.Flags().StringVarP(&opts.Description, "desc", "d", "", "Task description (required)")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "Priority: low, medium or high")
	_ = cmd.MarkFlagRequired("desc")
	return cmd
}

// taskRow is the structured output of a listed task.
type taskRow struct {
	domain.Task `yaml:",inline"`
	Blocked     bool `json:"blocked" yaml:"blocked"`
}

func newTaskListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		ClientID string
		Status   string
		Format   string
		Blocked  bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the client's tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := usecase.ListTasksInput{ClientID: opts.ClientID, BlockedOnly: opts.Blocked}
			if opts.Status != "" {
				s, err := domain.ParseStatus(opts.Status)
				if err != nil {
					return err
				}
				in.Status = &s
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			rows := make([]taskRow, len(out.Tasks))
			for i, v := range out.Tasks {
				rows[i] = taskRow{Task: *v.Task, Blocked: v.Blocked}
			}
			today := domain.NewDate(c.Clock.Now())
			return render(cmd.OutOrStdout(), opts.Format, rows, func(w io.Writer) {
				printTaskList(w, out.Tasks, today)
			})
		},
	}

	addClientFlag(cmd, &opts.ClientID)
	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "Only tasks with this status")
	cmd.Flags().BoolVarP(&opts.Blocked, "blocked", "b", false, "Only blocked tasks")
	addFormatFlag(cmd, &opts.Format)
	return cmd
}

// printTaskList prints tasks in TSV format.
func printTaskList(w io.Writer, tasks []usecase.TaskView, today domain.Date) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tSTATUS\tPRIORITY\tDUE\tDEPS\tDESCRIPTION")
	for _, v := range tasks {
		t := v.Task
		status := string(t.Status)
		if v.Blocked {
			status += " (blocked)"
		}
		due := dash(t.DueDate.String())
		if t.IsOverdue(today) {
			due += "!"
		}
		deps := "-"
		if len(t.Dependencies) > 0 {
			deps = fmt.Sprintf("%d", len(t.Dependencies))
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			domain.ShortID(t.ID),
			status,
			t.Priority,
			due,
			deps,
			t.Description,
		)
	}
}

// taskDetail is the structured output of task show.
// Fields are ordered to minimize memory padding.
type taskDetail struct {
	Task         *domain.Task `json:"task" yaml:"task"`
	Dependencies []depRef     `json:"dependencies" yaml:"dependencies"`
	Missing      []string     `json:"missing,omitempty" yaml:"missing,omitempty"`
	Dependents   []depRef     `json:"dependents" yaml:"dependents"`
	Blocked      bool         `json:"blocked" yaml:"blocked"`
}

// depRef is a compact reference to a related task.
type depRef struct {
	ID          string        `json:"id" yaml:"id"`
	Description string        `json:"description" yaml:"description"`
	Status      domain.Status `json:"status" yaml:"status"`
}

func toDepRefs(tasks []*domain.Task) []depRef {
	refs := make([]depRef, len(tasks))
	for i, t := range tasks {
		refs[i] = depRef{ID: t.ID, Description: t.Description, Status: t.Status}
	}
	return refs
}

func newTaskShowCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details and dependencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ShowTaskUseCase().Execute(cmd.Context(), usecase.ShowTaskInput{TaskID: args[0]})
			if err != nil {
				return err
			}
			detail := taskDetail{
				Task:         out.Task,
				Dependencies: toDepRefs(out.Dependencies),
				Missing:      out.Missing,
				Dependents:   toDepRefs(out.Dependents),
				Blocked:      out.Blocked,
			}
			return render(cmd.OutOrStdout(), format, detail, func(w io.Writer) {
				printTaskDetail(w, out)
			})
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}

func printTaskDetail(w io.Writer, out *usecase.ShowTaskOutput) {
	t := out.Task
	_, _ = fmt.Fprintf(w, "%s  %s\n", domain.ShortID(t.ID), t.Description)
	_, _ = fmt.Fprintf(w, "Status:   %s\n", tui.StatusStyle(t.Status).Render(string(t.Status)))
	_, _ = fmt.Fprintf(w, "Priority: %s\n", t.Priority)
	_, _ = fmt.Fprintf(w, "Due:      %s\n", dash(t.DueDate.String()))
	_, _ = fmt.Fprintf(w, "Created:  %s\n", t.Created.Format("2006-01-02 15:04"))
	if out.Blocked {
		_, _ = fmt.Fprintln(w, "Blocked:  yes")
	}

	if len(out.Dependencies) > 0 || len(out.Missing) > 0 {
		_, _ = fmt.Fprintln(w, "\nDepends on:")
		for _, d := range out.Dependencies {
			_, _ = fmt.Fprintf(w, "  %s  [%s]  %s\n", domain.ShortID(d.ID), d.Status, d.Description)
		}
		for _, id := range out.Missing {
			_, _ = fmt.Fprintf(w, "  %s  [missing]\n", domain.ShortID(id))
		}
	}
	if len(out.Dependents) > 0 {
		_, _ = fmt.Fprintln(w, "\nRequired by:")
		for _, d := range out.Dependents {
			_, _ = fmt.Fprintf(w, "  %s  [%s]  %s\n", domain.ShortID(d.ID), d.Status, d.Description)
		}
	}
}

func newTaskEditCommand(c *app.Container) *cobra.Command {
	var desc, due, priority string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task's description, due date or priority",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := usecase.EditTaskInput{TaskID: args[0]}
			if cmd.Flags().Changed("desc") {
				in.Patch.Description = &desc
			}
			var err error
			if in.Patch.DueDate, err = dateFlag(cmd, "due", due); err != nil {
				return err
			}
			if in.Patch.Priority, err = priorityFlag(cmd, "priority", priority); err != nil {
				return err
			}

			out, err := c.EditTaskUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", domain.ShortID(out.Task.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&desc, "desc", "d", "", "New description")
	cmd.Flags().StringVar(&due, "due", "", "New due date (YYYY-MM-DD, empty clears)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "New priority")
	return cmd
}

func newTaskStatusCommand(c *app.Container) *cobra.Command {
	statuses := make([]string, 0, 4)
	for _, s := range domain.AllStatuses() {
		statuses = append(statuses, string(s))
	}

	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Change a task's status",
		Long: fmt.Sprintf(`Change a task's status.

Statuses: %s (case-insensitive; "todo", "started", "done" and "hold"
are accepted too).

Any transition is allowed. A task with incomplete dependencies is
reported as blocked; with [tasks] blocking = "strict" it cannot move to
In Progress or Completed until they are done.`, strings.Join(statuses, ", ")),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := domain.ParseStatus(args[1])
			if err != nil {
				return err
			}
			out, err := c.UpdateStatusUseCase().Execute(cmd.Context(), usecase.UpdateStatusInput{
				TaskID: args[0],
				Status: status,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Task %s: %s -> %s\n", domain.ShortID(out.Task.ID), out.Previous, out.Task.Status)
			if len(out.Blockers) > 0 && status.IsActive() {
				ids := make([]string, len(out.Blockers))
				for i, b := range out.Blockers {
					ids[i] = domain.ShortID(b.ID)
				}
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: task is blocked by %s\n", strings.Join(ids, ", "))
			}
			return nil
		},
	}
}

func newTaskRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Long: `Delete a task.

Tasks that depend on it keep the reference; it no longer blocks them and
'desk task show' lists it as missing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: args[0]})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Deleted task %s\n", domain.ShortID(out.Task.ID))
			if n := len(out.Dependents); n > 0 {
				_, _ = fmt.Fprintf(w, "%d task(s) still reference it\n", n)
			}
			return nil
		},
	}
}
