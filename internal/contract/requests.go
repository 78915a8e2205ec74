// Package contract defines the request/response shapes exchanged across the
// store boundary, mirroring the transport API the excluded routing layer
// would expose. The canvas synchronizer speaks these shapes exclusively, so
// swapping the in-process store for a remote one changes no call sites.
package contract

import "github.com/GuilhermeVerrone/process-mapper/internal/domain"

// CreateProcessRequest creates a process inside an area. Name and AreaID are
// required; everything else is optional.
type CreateProcessRequest struct {
	Name            string
	AreaID          string
	ParentID        *string
	Description     string
	Owner           string
	SystemsAndTools string
	Color           string
	Type            domain.ProcessType
	PositionX       *float64
	PositionY       *float64
}

// UpdateProcessRequest updates process metadata. Nil fields are left
// untouched. AreaID and ParentID are deliberately absent: the area is
// immutable and reparenting goes through the link operation.
type UpdateProcessRequest struct {
	Name            *string
	Description     *string
	Owner           *string
	SystemsAndTools *string
	Color           *string
	Type            *domain.ProcessType
}

// UpdatePositionRequest moves a process on the canvas.
type UpdatePositionRequest struct {
	PositionX float64
	PositionY float64
}

// CreateAreaRequest creates a grouping area.
type CreateAreaRequest struct {
	Name  string
	Owner string
}

// UpdateAreaRequest renames an area or changes its owner. Nil fields keep
// the stored value.
type UpdateAreaRequest struct {
	Name  *string
	Owner *string
}

// RegisterRequest creates a user account at the auth boundary.
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

// LoginRequest exchanges credentials for a bearer token.
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResponse carries the issued credential and the public user fields.
type LoginResponse struct {
	Token string
	User  *domain.User
}
