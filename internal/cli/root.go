package cli

import (
	"github.com/GuilhermeVerrone/process-mapper/internal/canvas"
	"github.com/GuilhermeVerrone/process-mapper/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Areas     service.AreaService
	Processes service.ProcessService
	Auth      service.AuthService

	// Store is the synchronizer's port to the process store.
	Store canvas.Store

	// SessionPath is where the bearer credential persists between runs.
	SessionPath string

	// CanvasObserver receives synchronizer events, such as position
	// persists that failed but were kept locally.
	CanvasObserver canvas.Observer

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "procmap" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "procmap",
		Short: "Business process mapper with an interactive node canvas",
	}

	root.AddCommand(
		newAreaCmd(app),
		newProcessCmd(app),
		newCanvasCmd(app),
		newRegisterCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newSeedCmd(app),
	)

	return root
}
