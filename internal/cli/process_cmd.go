package cli

import (
	"context"
	"fmt"

	"github.com/GuilhermeVerrone/process-mapper/internal/cli/formatter"
	"github.com/GuilhermeVerrone/process-mapper/internal/contract"
	"github.com/GuilhermeVerrone/process-mapper/internal/domain"
	"github.com/spf13/cobra"
)

func newProcessCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process",
		Short: "Manage processes within an area",
	}

	cmd.AddCommand(
		newProcessListCmd(app),
		newProcessAddCmd(app),
		newProcessInspectCmd(app),
		newProcessUpdateCmd(app),
		newProcessMoveCmd(app),
		newProcessLinkCmd(app),
		newProcessRemoveCmd(app),
	)

	return cmd
}

func newProcessListCmd(app *App) *cobra.Command {
	var areaID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show an area's processes as a tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := requireAuth(ctx, app); err != nil {
				return err
			}
			processes, err := app.Processes.ListByArea(ctx, areaID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.ProcessTree(processes))
			return nil
		},
	}

	cmd.Flags().StringVar(&areaID, "area", "", "Area ID")
	_ = cmd.MarkFlagRequired("area")

	return cmd
}

func newProcessAddCmd(app *App) *cobra.Command {
	var areaID, name, description, owner, tools, color, parentID, procType string
	var posX, posY float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new process",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := requireAuth(ctx, app); err != nil {
				return err
			}
			req := contract.CreateProcessRequest{
				Name:            name,
				AreaID:          areaID,
				Description:     description,
				Owner:           owner,
				SystemsAndTools: tools,
				Color:           color,
				Type:            domain.ProcessType(procType),
			}
			if cmd.Flags().Changed("parent") {
				req.ParentID = &parentID
			}
			if cmd.Flags().Changed("x") {
				req.PositionX = &posX
			}
			if cmd.Flags().Changed("y") {
				req.PositionY = &posY
			}
			p, err := app.Processes.Create(ctx, req)
			if err != nil {
				return err
			}
			fmt.Printf("Created process %s (%s)\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&areaID, "area", "", "Area ID")
	cmd.Flags().StringVar(&name, "name", "", "Process name")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&owner, "owner", "", "Process owner")
	cmd.Flags().StringVar(&tools, "tools", "", "Systems and tools")
	cmd.Flags().StringVar(&color, "color", "", "Swatch color token")
	cmd.Flags().StringVar(&parentID, "parent", "", "Parent process ID")
	cmd.Flags().StringVar(&procType, "type", "manual", "Process type (manual|system)")
	cmd.Flags().Float64Var(&posX, "x", 0, "Canvas X position")
	cmd.Flags().Float64Var(&posY, "y", 0, "Canvas Y position")
	_ = cmd.MarkFlagRequired("area")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProcessInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show process details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := requireAuth(ctx, app); err != nil {
				return err
			}
			p, err := app.Processes.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			out := fmt.Sprintf("%s %s\n\n", formatter.TypeBadge(p.Type), formatter.Bold(p.Name))
			out += fmt.Sprintf("  %s  %s\n", formatter.Dim("ID      "), formatter.TruncID(p.ID))
			out += fmt.Sprintf("  %s  %s\n", formatter.Dim("AREA    "), formatter.TruncID(p.AreaID))
			if p.ParentID != nil {
				out += fmt.Sprintf("  %s  %s\n", formatter.Dim("PARENT  "), formatter.TruncID(*p.ParentID))
			}
			if p.Owner != "" {
				out += fmt.Sprintf("  %s  %s\n", formatter.Dim("OWNER   "), p.Owner)
			}
			if p.Description != "" {
				out += fmt.Sprintf("  %s  %s\n", formatter.Dim("ABOUT   "), p.Description)
			}
			if p.SystemsAndTools != "" {
				out += fmt.Sprintf("  %s  %s\n", formatter.Dim("TOOLS   "), p.SystemsAndTools)
			}
			out += fmt.Sprintf("  %s  %s\n", formatter.Dim("COLOR   "), formatter.SwatchStyle(p.Color).Render(" "+p.Color+" "))
			out += fmt.Sprintf("  %s  (%.0f, %.0f)\n", formatter.Dim("POSITION"), p.Position.X, p.Position.Y)
			fmt.Print(out)
			return nil
		},
	}
}

func newProcessUpdateCmd(app *App) *cobra.Command {
	var name, description, owner, tools, color, procType string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update process metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := requireAuth(ctx, app); err != nil {
				return err
			}
			var req contract.UpdateProcessRequest
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("description") {
				req.Description = &description
			}
			if cmd.Flags().Changed("owner") {
				req.Owner = &owner
			}
			if cmd.Flags().Changed("tools") {
				req.SystemsAndTools = &tools
			}
			if cmd.Flags().Changed("color") {
				req.Color = &color
			}
			if cmd.Flags().Changed("type") {
				t := domain.ProcessType(procType)
				req.Type = &t
			}
			p, err := app.Processes.Update(ctx, args[0], req)
			if err != nil {
				return err
			}
			fmt.Printf("Updated process %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Process name")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&owner, "owner", "", "Process owner")
	cmd.Flags().StringVar(&tools, "tools", "", "Systems and tools")
	cmd.Flags().StringVar(&color, "color", "", "Swatch color token")
	cmd.Flags().StringVar(&procType, "type", "", "Process type (manual|system)")

	return cmd
}

func newProcessMoveCmd(app *App) *cobra.Command {
	var posX, posY float64

	cmd := &cobra.Command{
		Use:   "move ID",
		Short: "Reposition a process on the canvas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := requireAuth(ctx, app); err != nil {
				return err
			}
			p, err := app.Processes.UpdatePosition(ctx, args[0], contract.UpdatePositionRequest{
				PositionX: posX, PositionY: posY,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Moved %s to (%.0f, %.0f)\n", p.Name, p.Position.X, p.Position.Y)
			return nil
		},
	}

	cmd.Flags().Float64Var(&posX, "x", 0, "Canvas X position")
	cmd.Flags().Float64Var(&posY, "y", 0, "Canvas Y position")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")

	return cmd
}

func newProcessLinkCmd(app *App) *cobra.Command {
	var parentID string

	cmd := &cobra.Command{
		Use:   "link ID",
		Short: "Make a process a subprocess of another",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := requireAuth(ctx, app); err != nil {
				return err
			}
			p, err := app.Processes.SetParent(ctx, args[0], parentID)
			if err != nil {
				return err
			}
			fmt.Printf("Linked %s under %s\n", p.Name, formatter.TruncID(parentID))
			return nil
		},
	}

	cmd.Flags().StringVar(&parentID, "parent", "", "Parent process ID")
	_ = cmd.MarkFlagRequired("parent")

	return cmd
}

func newProcessRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a process (leaves only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := requireAuth(ctx, app); err != nil {
				return err
			}
			if err := app.Processes.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("Process deleted")
			return nil
		},
	}
}
