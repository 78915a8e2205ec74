// Package hierarchy holds the pure tree-integrity rules for process forests.
// Every function operates on an in-memory process collection and performs no
// I/O, so the same rules run identically against the authoritative store
// snapshot on the service side and the possibly-stale local collection on the
// canvas side.
package hierarchy

import (
	"fmt"
	"strings"

	"github.com/GuilhermeVerrone/process-mapper/internal/domain"
	"github.com/GuilhermeVerrone/process-mapper/internal/repository"
)

// CreateInput carries the fields checked before a process is created.
type CreateInput struct {
	Name     string
	AreaID   string
	ParentID *string
}

// ValidateCreate checks a create request against the existing processes of
// the target area. The name must be non-empty after trimming, the area must
// be present, and a parent, if given, must exist and belong to the same area.
func ValidateCreate(input CreateInput, existing []*domain.Process) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("name is required: %w", repository.ErrValidation)
	}
	if input.AreaID == "" {
		return fmt.Errorf("area id is required: %w", repository.ErrValidation)
	}
	if input.ParentID != nil {
		parent := byID(existing, *input.ParentID)
		if parent == nil {
			return fmt.Errorf("parent process %s does not exist: %w", *input.ParentID, repository.ErrValidation)
		}
		if parent.AreaID != input.AreaID {
			return fmt.Errorf("parent process belongs to a different area: %w", repository.ErrValidation)
		}
	}
	return nil
}

// ValidateDelete enforces leaf-only deletion: a process that still has
// subprocesses cannot be removed.
func ValidateDelete(id string, all []*domain.Process) error {
	children := 0
	for _, p := range all {
		if p.ParentID != nil && *p.ParentID == id {
			children++
		}
	}
	return ValidateChildCount(children)
}

// ValidateChildCount is the counted form of the leaf-only rule, for callers
// that hold a child count instead of the full collection.
func ValidateChildCount(children int) error {
	if children > 0 {
		return fmt.Errorf("process has %d subprocesses: %w", children, repository.ErrConflict)
	}
	return nil
}

// ValidateLink governs the interactive connect gesture, which reparents
// target under source. It rejects self-links, links to unknown processes,
// cross-area links, targets that already have a different parent, and links
// that would introduce a cycle.
func ValidateLink(sourceID, targetID string, all []*domain.Process) error {
	if sourceID == targetID {
		return fmt.Errorf("process cannot be its own parent: %w", repository.ErrValidation)
	}
	source := byID(all, sourceID)
	target := byID(all, targetID)
	if source == nil {
		return fmt.Errorf("source process %s does not exist: %w", sourceID, repository.ErrValidation)
	}
	if target == nil {
		return fmt.Errorf("target process %s does not exist: %w", targetID, repository.ErrValidation)
	}
	if source.AreaID != target.AreaID {
		return fmt.Errorf("processes belong to different areas: %w", repository.ErrValidation)
	}
	if target.ParentID != nil && *target.ParentID != sourceID {
		return fmt.Errorf("process already has a parent: %w", repository.ErrConflict)
	}
	if isAncestor(targetID, sourceID, all) {
		return fmt.Errorf("link would create a cycle: %w", repository.ErrConflict)
	}
	return nil
}

// isAncestor reports whether candidate appears on the parent chain of id.
// The walk is bounded by the collection size so a corrupted store with an
// existing cycle still terminates.
func isAncestor(candidate, id string, all []*domain.Process) bool {
	current := byID(all, id)
	for steps := 0; current != nil && steps <= len(all); steps++ {
		if current.ID == candidate {
			return true
		}
		if current.ParentID == nil {
			return false
		}
		current = byID(all, *current.ParentID)
	}
	return false
}

func byID(all []*domain.Process, id string) *domain.Process {
	for _, p := range all {
		if p.ID == id {
			return p
		}
	}
	return nil
}
