package domain

import (
	"fmt"
	"strings"
	"time"
)

// Area is a top-level grouping for a forest of processes.
type Area struct {
	ID        string
	Name      string
	Owner     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateName checks that the area has a non-empty name after trimming.
func (a *Area) ValidateName() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("area name is required")
	}
	return nil
}

// DisplayID returns a short identifier for display, truncating the UUID.
func (a *Area) DisplayID() string {
	if len(a.ID) >= 8 {
		return a.ID[:8]
	}
	return a.ID
}
