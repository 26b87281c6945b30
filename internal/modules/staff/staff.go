package staff

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role determines what a back-office account may do.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleSales Role = "SALES"
)

// Staff is a back-office account. Orders record the staff member who
// composed them.
type Staff struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Repository defines data access for staff accounts.
type Repository interface {
	CreateStaff(ctx context.Context, s *Staff) error
	GetStaffByID(ctx context.Context, id uuid.UUID) (*Staff, error)
	GetStaffByEmail(ctx context.Context, email string) (*Staff, error)
	ListStaff(ctx context.Context) ([]*Staff, error)
}

// Service defines staff account business logic.
type Service interface {
	Register(ctx context.Context, email, password, fullName, role string) (*Staff, error)
	GetStaff(ctx context.Context, id string) (*Staff, error)
	ListStaff(ctx context.Context) ([]*Staff, error)
}
