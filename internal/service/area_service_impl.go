package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/GuilhermeVerrone/process-mapper/internal/contract"
	"github.com/GuilhermeVerrone/process-mapper/internal/db"
	"github.com/GuilhermeVerrone/process-mapper/internal/domain"
	"github.com/GuilhermeVerrone/process-mapper/internal/repository"
	"github.com/google/uuid"
)

type areaService struct {
	areas    repository.AreaRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewAreaService(areas repository.AreaRepo, uow db.UnitOfWork, observers ...UseCaseObserver) AreaService {
	return &areaService{
		areas:    areas,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *areaService) Create(ctx context.Context, req contract.CreateAreaRequest) (*domain.Area, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("area name is required: %w", repository.ErrValidation)
	}
	now := time.Now().UTC()
	a := &domain.Area{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(req.Name),
		Owner:     req.Owner,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.areas.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *areaService) GetByID(ctx context.Context, id string) (*domain.Area, error) {
	return s.areas.GetByID(ctx, id)
}

func (s *areaService) List(ctx context.Context) ([]*domain.Area, error) {
	return s.areas.List(ctx)
}

func (s *areaService) Update(ctx context.Context, id string, req contract.UpdateAreaRequest) (*domain.Area, error) {
	a, err := s.areas.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("area name is required: %w", repository.ErrValidation)
		}
		a.Name = strings.TrimSpace(*req.Name)
	}
	a.Owner = domain.StrFromPtrWithDefault(a.Owner, req.Owner)
	a.UpdatedAt = time.Now().UTC()
	if err := s.areas.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes an area and all of its processes. The cascade is a policy
// decision executed here, not a store behavior: processes go first (leaves
// inward), then the area, all inside one transaction so a failure leaves
// the store untouched.
func (s *areaService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "delete-area",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"area": id},
		})
	}()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProcesses := repository.NewSQLiteProcessRepo(tx)
		txAreas := repository.NewSQLiteAreaRepo(tx)

		if err := txProcesses.DeleteByArea(ctx, id); err != nil {
			return err
		}
		return txAreas.Delete(ctx, id)
	})
}
