package cli

import (
	"strings"

	"github.com/GuilhermeVerrone/process-mapper/internal/contract"
	"github.com/GuilhermeVerrone/process-mapper/internal/domain"
	"github.com/charmbracelet/huh"
)

// processFormData backs the create/edit drawer. An empty ID means create.
type processFormData struct {
	ID              string
	ParentID        *string
	Name            string
	Owner           string
	Description     string
	SystemsAndTools string
	Color           string
	Type            string
}

// validateRequiredName rejects empty or whitespace-only names before any
// store call is made.
func validateRequiredName(s string) error {
	if strings.TrimSpace(s) == "" {
		return domain.ErrNameRequired
	}
	return nil
}

// newProcessForm builds the huh form for creating or editing a process.
// The same field set serves both modes, mirroring the unified drawer of the
// canvas UI.
func newProcessForm(data *processFormData) *huh.Form {
	colorOptions := make([]huh.Option[string], 0, len(domain.SwatchColors))
	for _, c := range domain.SwatchColors {
		colorOptions = append(colorOptions, huh.NewOption(c, c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&data.Name).
				Validate(validateRequiredName),
			huh.NewInput().
				Title("Owner").
				Value(&data.Owner),
			huh.NewInput().
				Title("Description").
				Value(&data.Description),
			huh.NewInput().
				Title("Systems & Tools").
				Value(&data.SystemsAndTools),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color").
				Options(colorOptions...).
				Value(&data.Color),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("manual", "manual"),
					huh.NewOption("system", "system"),
				).
				Value(&data.Type),
		),
	).WithTheme(procmapHuhTheme()).WithShowHelp(false)
}

// createRequest shapes the form data into the boundary create request.
func (d *processFormData) createRequest(areaID string) contract.CreateProcessRequest {
	return contract.CreateProcessRequest{
		Name:            d.Name,
		AreaID:          areaID,
		ParentID:        d.ParentID,
		Description:     d.Description,
		Owner:           d.Owner,
		SystemsAndTools: d.SystemsAndTools,
		Color:           d.Color,
		Type:            domain.ProcessType(d.Type),
	}
}

// updateRequest shapes the form data into the boundary update request.
func (d *processFormData) updateRequest() contract.UpdateProcessRequest {
	t := domain.ProcessType(d.Type)
	return contract.UpdateProcessRequest{
		Name:            &d.Name,
		Description:     &d.Description,
		Owner:           &d.Owner,
		SystemsAndTools: &d.SystemsAndTools,
		Color:           &d.Color,
		Type:            &t,
	}
}
