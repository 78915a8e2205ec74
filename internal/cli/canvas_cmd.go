package cli

import (
	"context"
	"fmt"

	"github.com/GuilhermeVerrone/process-mapper/internal/canvas"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newCanvasCmd(app *App) *cobra.Command {
	var areaID string

	cmd := &cobra.Command{
		Use:   "canvas",
		Short: "Open the interactive process canvas for an area",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := requireAuth(ctx, app); err != nil {
				return err
			}
			if !app.IsInteractive() {
				return fmt.Errorf("canvas requires an interactive terminal")
			}
			if _, err := app.Areas.GetByID(ctx, areaID); err != nil {
				return err
			}

			syn := canvas.NewSynchronizer(app.Store, app.CanvasObserver)
			model := newCanvasModel(syn, areaID)
			program := tea.NewProgram(model, tea.WithAltScreen())
			_, err := program.Run()
			// Let fire-and-forget position persists land before exit.
			syn.Flush()
			return err
		},
	}

	cmd.Flags().StringVar(&areaID, "area", "", "Area ID")
	_ = cmd.MarkFlagRequired("area")

	return cmd
}
