package staff

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type service struct {
	repo       Repository
	bcryptCost int
}

// NewService creates a new staff service.
func NewService(repo Repository, bcryptCost int) Service {
	return &service{repo: repo, bcryptCost: bcryptCost}
}

func (s *service) Register(ctx context.Context, email, password, fullName, role string) (*Staff, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	r := Role(strings.ToUpper(role))
	if r == "" {
		r = RoleSales
	}
	if r != RoleAdmin && r != RoleSales {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}
	member := &Staff{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     fullName,
		Role:         r,
	}
	if err := s.repo.CreateStaff(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *service) GetStaff(ctx context.Context, id string) (*Staff, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid staff id: %w", err)
	}
	return s.repo.GetStaffByID(ctx, uid)
}

func (s *service) ListStaff(ctx context.Context) ([]*Staff, error) {
	return s.repo.ListStaff(ctx)
}
