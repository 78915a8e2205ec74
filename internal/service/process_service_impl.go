package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/GuilhermeVerrone/process-mapper/internal/contract"
	"github.com/GuilhermeVerrone/process-mapper/internal/domain"
	"github.com/GuilhermeVerrone/process-mapper/internal/hierarchy"
	"github.com/GuilhermeVerrone/process-mapper/internal/repository"
	"github.com/google/uuid"
)

type processService struct {
	processes repository.ProcessRepo
	observer  UseCaseObserver
}

func NewProcessService(processes repository.ProcessRepo, observers ...UseCaseObserver) ProcessService {
	return &processService{
		processes: processes,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *processService) Create(ctx context.Context, req contract.CreateProcessRequest) (p *domain.Process, err error) {
	defer s.observe(ctx, "create-process", time.Now().UTC(), map[string]any{"area": req.AreaID}, &err)

	// Validation runs against the area's stored processes so parent
	// existence and same-area scoping are checked in one pass.
	var existing []*domain.Process
	if req.AreaID != "" {
		existing, err = s.processes.ListByArea(ctx, req.AreaID)
		if err != nil {
			return nil, err
		}
	}
	input := hierarchy.CreateInput{Name: req.Name, AreaID: req.AreaID, ParentID: req.ParentID}
	if err = hierarchy.ValidateCreate(input, existing); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p = &domain.Process{
		ID:              uuid.New().String(),
		AreaID:          req.AreaID,
		ParentID:        req.ParentID,
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		Owner:           req.Owner,
		SystemsAndTools: req.SystemsAndTools,
		Color:           domain.CoalesceStr(req.Color, domain.DefaultColor),
		Type:            req.Type,
		Position: domain.Position{
			X: domain.Float64FromPtrWithDefault(0, req.PositionX),
			Y: domain.Float64FromPtrWithDefault(0, req.PositionY),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if p.Type == "" {
		p.Type = domain.ProcessManual
	}
	if err = s.processes.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *processService) GetByID(ctx context.Context, id string) (*domain.Process, error) {
	return s.processes.GetByID(ctx, id)
}

func (s *processService) ListByArea(ctx context.Context, areaID string) ([]*domain.Process, error) {
	if areaID == "" {
		return nil, fmt.Errorf("area id is required: %w", repository.ErrValidation)
	}
	return s.processes.ListByArea(ctx, areaID)
}

func (s *processService) Update(ctx context.Context, id string, req contract.UpdateProcessRequest) (p *domain.Process, err error) {
	defer s.observe(ctx, "update-process", time.Now().UTC(), map[string]any{"process": id}, &err)

	p, err = s.processes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("name is required: %w", repository.ErrValidation)
		}
		p.Name = strings.TrimSpace(*req.Name)
	}
	p.Description = domain.StrFromPtrWithDefault(p.Description, req.Description)
	p.Owner = domain.StrFromPtrWithDefault(p.Owner, req.Owner)
	p.SystemsAndTools = domain.StrFromPtrWithDefault(p.SystemsAndTools, req.SystemsAndTools)
	p.Color = domain.StrFromPtrWithDefault(p.Color, req.Color)
	if req.Type != nil {
		if !domain.ValidProcessTypes[string(*req.Type)] {
			return nil, fmt.Errorf("unknown process type %q: %w", *req.Type, repository.ErrValidation)
		}
		p.Type = *req.Type
	}
	p.UpdatedAt = time.Now().UTC()

	if err = s.processes.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *processService) UpdatePosition(ctx context.Context, id string, req contract.UpdatePositionRequest) (*domain.Process, error) {
	if err := s.processes.UpdatePosition(ctx, id, req.PositionX, req.PositionY); err != nil {
		return nil, err
	}
	return s.processes.GetByID(ctx, id)
}

// SetParent reparents a process under parentID after re-running the link
// policy against the stored collection. The canvas runs the same check
// locally, but its collection may be stale, so the stored snapshot decides.
func (s *processService) SetParent(ctx context.Context, id string, parentID string) (p *domain.Process, err error) {
	defer s.observe(ctx, "link-process", time.Now().UTC(), map[string]any{"process": id, "parent": parentID}, &err)

	p, err = s.processes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	all, err := s.processes.ListByArea(ctx, p.AreaID)
	if err != nil {
		return nil, err
	}
	if err = hierarchy.ValidateLink(parentID, id, all); err != nil {
		return nil, err
	}
	p.ParentID = &parentID
	p.UpdatedAt = time.Now().UTC()
	if err = s.processes.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *processService) Delete(ctx context.Context, id string) (err error) {
	defer s.observe(ctx, "delete-process", time.Now().UTC(), map[string]any{"process": id}, &err)

	// Read-then-act: the child count and the delete are separate statements.
	// With one typical user per store this race window is accepted.
	count, err := s.processes.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if err = hierarchy.ValidateChildCount(count); err != nil {
		return err
	}
	return s.processes.Delete(ctx, id)
}

func (s *processService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err *error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   *err == nil,
		Err:       *err,
		Fields:    fields,
	})
}
