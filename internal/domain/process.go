package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrNameRequired rejects empty or whitespace-only names. Checked at the
// form boundary and again by the hierarchy policy.
var ErrNameRequired = errors.New("name is required")

// Position is a 2D canvas coordinate. It is purely a visual-layout
// attribute: the tree structure never constrains it.
type Position struct {
	X float64
	Y float64
}

// Process is a named activity inside an area. A process may reference one
// parent process within the same area; the parent/child relation across an
// area forms a forest of rooted trees.
type Process struct {
	ID              string
	AreaID          string // fixed at creation, never moves between areas
	ParentID        *string
	Name            string
	Description     string
	Owner           string
	SystemsAndTools string
	Color           string
	Type            ProcessType
	Position        Position
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ValidateName checks that the process has a non-empty name after trimming.
func (p *Process) ValidateName() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

// IsRoot reports whether the process has no parent.
func (p *Process) IsRoot() bool {
	return p.ParentID == nil
}

// DisplayID returns a short identifier for display, truncating the UUID.
func (p *Process) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
