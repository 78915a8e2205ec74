package repository

import (
	"context"

	"github.com/GuilhermeVerrone/process-mapper/internal/domain"
)

type AreaRepo interface {
	Create(ctx context.Context, a *domain.Area) error
	GetByID(ctx context.Context, id string) (*domain.Area, error)
	List(ctx context.Context) ([]*domain.Area, error)
	Update(ctx context.Context, a *domain.Area) error
	Delete(ctx context.Context, id string) error
}

type ProcessRepo interface {
	Create(ctx context.Context, p *domain.Process) error
	GetByID(ctx context.Context, id string) (*domain.Process, error)
	ListByArea(ctx context.Context, areaID string) ([]*domain.Process, error)
	Update(ctx context.Context, p *domain.Process) error
	UpdatePosition(ctx context.Context, id string, x, y float64) error
	CountChildren(ctx context.Context, id string) (int, error)
	Delete(ctx context.Context, id string) error
	DeleteByArea(ctx context.Context, areaID string) error
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type AuthSessionRepo interface {
	Create(ctx context.Context, s *domain.AuthSession) error
	GetByToken(ctx context.Context, token string) (*domain.AuthSession, error)
	Delete(ctx context.Context, token string) error
}
