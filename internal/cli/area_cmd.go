package cli

import (
	"context"
	"fmt"

	"github.com/GuilhermeVerrone/process-mapper/internal/cli/formatter"
	"github.com/GuilhermeVerrone/process-mapper/internal/contract"
	"github.com/spf13/cobra"
)

func newAreaCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "area",
		Short: "Manage process areas",
	}

	cmd.AddCommand(
		newAreaListCmd(app),
		newAreaAddCmd(app),
		newAreaUpdateCmd(app),
		newAreaRemoveCmd(app),
	)

	return cmd
}

func newAreaListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all areas",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := requireAuth(ctx, app); err != nil {
				return err
			}
			areas, err := app.Areas.List(ctx)
			if err != nil {
				return err
			}
			if len(areas) == 0 {
				fmt.Println(formatter.Dim("no areas yet (procmap area add --name ...)"))
				return nil
			}
			for _, a := range areas {
				line := fmt.Sprintf("%s  %s", formatter.TruncID(a.ID), formatter.Bold(a.Name))
				if a.Owner != "" {
					line += "  " + formatter.Dim(a.Owner)
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func newAreaAddCmd(app *App) *cobra.Command {
	var name, owner string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new area",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := requireAuth(ctx, app); err != nil {
				return err
			}
			a, err := app.Areas.Create(ctx, contract.CreateAreaRequest{Name: name, Owner: owner})
			if err != nil {
				return err
			}
			fmt.Printf("Created area %s (%s)\n", a.Name, a.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Area name")
	cmd.Flags().StringVar(&owner, "owner", "", "Area owner")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newAreaUpdateCmd(app *App) *cobra.Command {
	var name, owner string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Rename an area or change its owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := requireAuth(ctx, app); err != nil {
				return err
			}
			var req contract.UpdateAreaRequest
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("owner") {
				req.Owner = &owner
			}
			a, err := app.Areas.Update(ctx, args[0], req)
			if err != nil {
				return err
			}
			fmt.Printf("Updated area %s\n", a.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Area name")
	cmd.Flags().StringVar(&owner, "owner", "", "Area owner")

	return cmd
}

func newAreaRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete an area and all of its processes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := requireAuth(ctx, app); err != nil {
				return err
			}
			if err := app.Areas.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("Area deleted")
			return nil
		},
	}
}
