package cli

import (
	"github.com/alexanderramin/xerplan/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Import   service.ImportService
	Schedule service.ScheduleService
	Projects service.ProjectService

	// Defaults from config; flags override them per command.
	HoursPerDay float64
	Strict      bool

	// IsInteractive reports whether prompts can be shown. Nil means never.
	IsInteractive func() bool
	// Confirm asks a yes/no question. Nil falls back to the huh form.
	Confirm func(title, description string) (bool, error)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) confirm(title, description string) (bool, error) {
	if a.Confirm != nil {
		return a.Confirm(title, description)
	}
	return runConfirmForm(title, description)
}

// NewRootCmd creates the top-level "xerplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "xerplan",
		Short:         "Import and browse Primavera P6 XER schedules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newImportCmd(app),
		newInspectCmd(app),
		newProjectCmd(app),
		newActivityCmd(app),
		newSummaryCmd(app),
	)

	return root
}
