package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulse/internal/cache"
	"github.com/alexanderramin/pulse/internal/intelligence"
	"github.com/alexanderramin/pulse/internal/repository"
	"github.com/alexanderramin/pulse/internal/settings"
)

// App holds references to everything CLI commands need.
type App struct {
	Context   intelligence.ContextGenerator
	Interpret intelligence.TaskInterpreter
	Tasks     repository.TaskRepo
	Settings  *settings.Store
	Cache     *cache.ContextCache

	// Now is the command clock; tests pin it.
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal, for commands that
	// prompt before acting.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "pulse" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	if app.Now == nil {
		app.Now = time.Now
	}
	if app.IsInteractive == nil {
		app.IsInteractive = func() bool { return false }
	}

	root := &cobra.Command{
		Use:   "pulse",
		Short: "Personal insight engine over your task history",
	}

	root.AddCommand(
		newContextCmd(app),
		newInterpretCmd(app),
		newActivityCmd(app),
		newWellnessCmd(app),
		newTaskCmd(app),
		newSettingsCmd(app),
	)

	return root
}
