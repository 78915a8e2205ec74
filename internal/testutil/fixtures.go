package testutil

import (
	"time"

	"github.com/GuilhermeVerrone/process-mapper/internal/domain"
	"github.com/google/uuid"
)

// Area options
type AreaOption func(*domain.Area)

func WithAreaOwner(owner string) AreaOption {
	return func(a *domain.Area) {
		a.Owner = owner
	}
}

func NewTestArea(name string, opts ...AreaOption) *domain.Area {
	now := time.Now().UTC()
	a := &domain.Area{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Process options
type ProcessOption func(*domain.Process)

func WithParentID(id string) ProcessOption {
	return func(p *domain.Process) {
		p.ParentID = &id
	}
}

func WithPosition(x, y float64) ProcessOption {
	return func(p *domain.Process) {
		p.Position = domain.Position{X: x, Y: y}
	}
}

func WithColor(color string) ProcessOption {
	return func(p *domain.Process) {
		p.Color = color
	}
}

func WithProcessType(t domain.ProcessType) ProcessOption {
	return func(p *domain.Process) {
		p.Type = t
	}
}

func WithOwner(owner string) ProcessOption {
	return func(p *domain.Process) {
		p.Owner = owner
	}
}

func NewTestProcess(areaID, name string, opts ...ProcessOption) *domain.Process {
	now := time.Now().UTC()
	p := &domain.Process{
		ID:        uuid.New().String(),
		AreaID:    areaID,
		Name:      name,
		Color:     domain.DefaultColor,
		Type:      domain.ProcessManual,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
