package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/timeutil"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks directly",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskRmCmd(app),
	)
	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var category, priority, date, start, end, description string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !domain.ValidCategories[category] {
				return fmt.Errorf("invalid category %q", category)
			}
			if !domain.ValidPriorities[priority] {
				return fmt.Errorf("invalid priority %q", priority)
			}

			now := app.Now()
			day := timeutil.Midnight(now)
			if date != "" {
				day = timeutil.ParseDate(date, now)
			}
			task := &domain.Task{
				ID:          uuid.NewString(),
				Title:       args[0],
				Description: description,
				Category:    domain.Category(category),
				Priority:    domain.Priority(priority),
				Date:        day,
				StartTime:   start,
				EndTime:     end,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := app.Tasks.Create(context.Background(), task); err != nil {
				return fmt.Errorf("creating task: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created task %s\n", task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "work", "Task category")
	cmd.Flags().StringVar(&priority, "priority", "medium", "Task priority")
	cmd.Flags().StringVar(&date, "date", "", "Task date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&description, "desc", "", "Task description")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in the analysis window",
		RunE: func(cmd *cobra.Command, args []string) error {
			var tasks []domain.Task
			var err error
			if all {
				tasks, err = app.Tasks.List(context.Background())
			} else {
				tasks, err = listWindow(app, app.Now())
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskList(tasks))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "List every task, not just the window")
	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.SetCompleted(context.Background(), args[0], true); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Done.")
			return nil
		},
	}
}

func newTaskRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return nil
		},
	}
}
