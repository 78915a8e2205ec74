package cli

import (
	"fmt"

	"github.com/GuilhermeVerrone/process-mapper/internal/contract"
	"github.com/GuilhermeVerrone/process-mapper/internal/domain"
	"github.com/spf13/cobra"
)

// newSeedCmd creates demo data: an admin account and a small hiring flow
// inside a "Recursos Humanos" area, enough to try the canvas immediately.
func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create a demo user, area, and process tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			user, err := app.Auth.Register(ctx, contract.RegisterRequest{
				Name:     "Admin User",
				Email:    "admin@example.com",
				Password: "123456",
			})
			if err != nil {
				return fmt.Errorf("seed user: %w", err)
			}

			area, err := app.Areas.Create(ctx, contract.CreateAreaRequest{
				Name:  "Recursos Humanos",
				Owner: "Ana Silva",
			})
			if err != nil {
				return fmt.Errorf("seed area: %w", err)
			}

			x1, y1 := 50.0, 50.0
			parent, err := app.Processes.Create(ctx, contract.CreateProcessRequest{
				Name:        "Contratação de Funcionário",
				AreaID:      area.ID,
				Description: "Processo completo para novas contratações.",
				Owner:       "Carlos Mendes",
				Type:        domain.ProcessManual,
				PositionX:   &x1,
				PositionY:   &y1,
			})
			if err != nil {
				return fmt.Errorf("seed parent process: %w", err)
			}

			x2, y2 := 300.0, 150.0
			child, err := app.Processes.Create(ctx, contract.CreateProcessRequest{
				Name:        "Entrevista com Gestor",
				AreaID:      area.ID,
				ParentID:    &parent.ID,
				Description: "Etapa final da entrevista.",
				Owner:       "Fernanda Lima",
				Type:        domain.ProcessManual,
				PositionX:   &x2,
				PositionY:   &y2,
			})
			if err != nil {
				return fmt.Errorf("seed child process: %w", err)
			}

			fmt.Printf("Seeded user %s, area %s with %s and %s\n",
				user.Email, area.Name, parent.Name, child.Name)
			fmt.Println("Login with admin@example.com / 123456")
			return nil
		},
	}
}
