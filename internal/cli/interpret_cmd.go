package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/intelligence"
)

func newInterpretCmd(app *App) *cobra.Command {
	var create bool
	var template string

	cmd := &cobra.Command{
		Use:   "interpret [text]",
		Short: "Turn free-form text into a task draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			var draft *domain.TaskDraft

			if template != "" {
				tpl, ok := intelligence.DraftFromTemplate(template, app.Now())
				if !ok {
					return fmt.Errorf("unknown template %q (available: %s)",
						template, strings.Join(intelligence.TemplateNames(), ", "))
				}
				draft = tpl
			} else {
				draft = app.Interpret.Interpret(context.Background(), strings.Join(args, " "))
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDraft(draft))

			if !create {
				return nil
			}
			if draft.Error != "" && app.IsInteractive() {
				fmt.Fprint(cmd.OutOrStdout(), "Draft was degraded. Create anyway? [y/N] ")
				reader := bufio.NewReader(cmd.InOrStdin())
				answer, _ := reader.ReadString('\n')
				if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y") {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}
			task := taskFromDraft(draft, app.Now())
			if err := app.Tasks.Create(context.Background(), task); err != nil {
				return fmt.Errorf("creating task: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created task %s\n", task.ID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&create, "create", false, "Persist the draft as a task")
	cmd.Flags().StringVar(&template, "template", "", "Use a canned template instead of interpreting text")

	return cmd
}

// taskFromDraft promotes an accepted draft into a persistable task.
func taskFromDraft(draft *domain.TaskDraft, now time.Time) *domain.Task {
	return &domain.Task{
		ID:          uuid.NewString(),
		Title:       draft.Title,
		Description: draft.Description,
		Category:    draft.Category,
		Priority:    draft.Priority,
		Date:        draft.Date,
		StartTime:   draft.StartTime,
		EndTime:     draft.EndTime,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
