package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gcunha/taskdeck/internal/domain"
	"github.com/gcunha/taskdeck/internal/service/dashboard"
)

func tasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage your tasks",
	}
	cmd.AddCommand(tasksListCmd())
	cmd.AddCommand(tasksCreateCmd())
	cmd.AddCommand(tasksUpdateCmd())
	cmd.AddCommand(tasksDeleteCmd())
	return cmd
}

// filterFlags binds the common filter flags and builds the criteria.
type filterFlags struct {
	status   string
	priority string
	title    string
	due      string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.status, "status", "", "filter by status (pending|in_progress|completed)")
	cmd.Flags().StringVar(&f.priority, "priority", "", "filter by priority (low|medium|high)")
	cmd.Flags().StringVar(&f.title, "title", "", "filter by title substring")
	cmd.Flags().StringVar(&f.due, "due", "", "filter by exact due date (YYYY-MM-DD)")
}

func (f *filterFlags) criteria() (domain.Filters, error) {
	filters := domain.Filters{
		Status:   domain.TaskStatus(f.status),
		Priority: domain.TaskPriority(f.priority),
		Title:    f.title,
		DueDate:  f.due,
	}
	if filters.Status != "" && !filters.Status.IsValid() {
		return domain.Filters{}, domain.ErrInvalidStatus
	}
	if filters.Priority != "" && !filters.Priority.IsValid() {
		return domain.Filters{}, domain.ErrInvalidPriority
	}
	return filters, nil
}

// payloadFlags binds the task field flags shared by create and update.
type payloadFlags struct {
	title       string
	description string
	status      string
	priority    string
	due         string
}

func (p *payloadFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.title, "title", "", "task title")
	cmd.Flags().StringVar(&p.description, "description", "", "task description")
	cmd.Flags().StringVar(&p.status, "status", "", "task status (pending|in_progress|completed)")
	cmd.Flags().StringVar(&p.priority, "priority", "", "task priority (low|medium|high)")
	cmd.Flags().StringVar(&p.due, "due", "", "due date (YYYY-MM-DD)")
}

func (p *payloadFlags) payload() domain.TaskPayload {
	return domain.TaskPayload{
		Title:       p.title,
		Description: p.description,
		Status:      domain.TaskStatus(p.status),
		Priority:    domain.TaskPriority(p.priority),
		DueDate:     p.due,
	}
}

func tasksListCmd() *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, optionally filtered",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()
			if err := a.requireSession(); err != nil {
				return err
			}

			criteria, err := filters.criteria()
			if err != nil {
				return err
			}

			ctrl := dashboard.New(a.client, a.store, a.notifier, nil, a.log)
			if err := ctrl.SetFilters(cmd.Context(), criteria); err != nil {
				return err
			}

			renderTasks(os.Stdout, ctrl.Tasks())
			return nil
		},
	}

	filters.register(cmd)
	return cmd
}

func tasksCreateCmd() *cobra.Command {
	var fields payloadFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()
			if err := a.requireSession(); err != nil {
				return err
			}

			ctrl := dashboard.New(a.client, a.store, a.notifier, nil, a.log)
			if err := ctrl.Submit(cmd.Context(), fields.payload()); err != nil {
				return err
			}
			renderTasks(os.Stdout, ctrl.Tasks())
			return nil
		},
	}

	fields.register(cmd)
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func tasksUpdateCmd() *cobra.Command {
	var fields payloadFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a task's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()
			if err := a.requireSession(); err != nil {
				return err
			}

			ctrl := dashboard.New(a.client, a.store, a.notifier, nil, a.log)
			target, err := findTask(cmd, ctrl, args[0])
			if err != nil {
				return err
			}

			ctrl.BeginEdit(target)
			if err := ctrl.Submit(cmd.Context(), fields.payload()); err != nil {
				return err
			}
			renderTasks(os.Stdout, ctrl.Tasks())
			return nil
		},
	}

	fields.register(cmd)
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func tasksDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()
			if err := a.requireSession(); err != nil {
				return err
			}

			confirm := confirmDelete
			if yes {
				confirm = nil
			}
			ctrl := dashboard.New(a.client, a.store, a.notifier, confirm, a.log)

			target, err := findTask(cmd, ctrl, args[0])
			if err != nil {
				return err
			}

			if err := ctrl.Delete(cmd.Context(), target); err != nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}

// findTask resolves an ID against the server's current list so
// confirmation prompts and updates operate on real tasks.
func findTask(cmd *cobra.Command, ctrl *dashboard.Controller, id string) (domain.Task, error) {
	if err := ctrl.Refresh(cmd.Context()); err != nil {
		return domain.Task{}, err
	}
	for _, task := range ctrl.Tasks() {
		if task.ID == id {
			return task, nil
		}
	}
	return domain.Task{}, fmt.Errorf("task %s not found", id)
}

// confirmDelete asks for explicit confirmation before a deletion.
func confirmDelete(task domain.Task) bool {
	answer := promptLine(fmt.Sprintf("Are you sure you want to delete %q? [y/N] ", task.Title))
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}
