package service

import (
	"context"

	"github.com/GuilhermeVerrone/process-mapper/internal/contract"
	"github.com/GuilhermeVerrone/process-mapper/internal/domain"
)

type AreaService interface {
	Create(ctx context.Context, req contract.CreateAreaRequest) (*domain.Area, error)
	GetByID(ctx context.Context, id string) (*domain.Area, error)
	List(ctx context.Context) ([]*domain.Area, error)
	Update(ctx context.Context, id string, req contract.UpdateAreaRequest) (*domain.Area, error)
	Delete(ctx context.Context, id string) error
}

type ProcessService interface {
	Create(ctx context.Context, req contract.CreateProcessRequest) (*domain.Process, error)
	GetByID(ctx context.Context, id string) (*domain.Process, error)
	ListByArea(ctx context.Context, areaID string) ([]*domain.Process, error)
	Update(ctx context.Context, id string, req contract.UpdateProcessRequest) (*domain.Process, error)
	UpdatePosition(ctx context.Context, id string, req contract.UpdatePositionRequest) (*domain.Process, error)
	SetParent(ctx context.Context, id string, parentID string) (*domain.Process, error)
	Delete(ctx context.Context, id string) error
}

type AuthService interface {
	Register(ctx context.Context, req contract.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, req contract.LoginRequest) (*contract.LoginResponse, error)
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	Logout(ctx context.Context, token string) error
}
