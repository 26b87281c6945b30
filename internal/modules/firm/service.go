package firm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kasonde/distrohub-backend/internal/modules/scoring"
)

// Sentinel errors for firm business rules.
var (
	ErrInvalidClass    = errors.New("class must be CUSTOMER or DEALER")
	ErrInvalidDiscount = errors.New("special discount must be between 0 and 100")
)

// Service defines firm directory business logic.
type Service interface {
	// OnboardProspect registers a prospective buyer and assigns its priority score.
	OnboardProspect(ctx context.Context, req OnboardRequest) (*Firm, error)

	GetFirm(ctx context.Context, id string) (*Firm, error)
	ListFirms(ctx context.Context, status string) ([]*Firm, error)
	UpdateFirm(ctx context.Context, id string, req UpdateFirmRequest) (*Firm, error)

	// Activate moves a PROSPECT or INACTIVE firm to ACTIVE.
	Activate(ctx context.Context, id string) error

	// Deactivate moves an ACTIVE firm to INACTIVE.
	Deactivate(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	scorer *scoring.Engine
}

// NewService creates a new firm service.
func NewService(repo Repository, scorer *scoring.Engine) Service {
	return &service{repo: repo, scorer: scorer}
}

// validTransitions defines the firm lifecycle state machine.
var validTransitions = map[Status][]Status{
	StatusProspect: {StatusActive},
	StatusActive:   {StatusInactive},
	StatusInactive: {StatusActive},
}

func (s *service) OnboardProspect(ctx context.Context, req OnboardRequest) (*Firm, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	class := Class(strings.ToUpper(req.Class))
	if class != ClassCustomer && class != ClassDealer {
		return nil, fmt.Errorf("%w: %q", ErrInvalidClass, req.Class)
	}

	score, err := s.scorer.ComputeScore(req.Category, req.Tags)
	if err != nil {
		return nil, fmt.Errorf("cannot score prospect: %w", err)
	}

	terms := req.PaymentTermsDays
	if terms <= 0 {
		terms = 30
	}
	f := &Firm{
		ID:               uuid.New(),
		Name:             req.Name,
		Class:            class,
		Status:           StatusProspect,
		Category:         req.Category,
		Tags:             req.Tags,
		PriorityScore:    score,
		PaymentTermsDays: terms,
		Email:            req.Email,
		Phone:            req.Phone,
		City:             req.City,
		Country:          req.Country,
	}
	if err := s.repo.CreateFirm(ctx, f); err != nil {
		return nil, fmt.Errorf("failed to persist firm: %w", err)
	}
	return f, nil
}

func (s *service) GetFirm(ctx context.Context, id string) (*Firm, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid firm id: %w", err)
	}
	return s.repo.GetFirm(ctx, uid)
}

func (s *service) ListFirms(ctx context.Context, status string) ([]*Firm, error) {
	return s.repo.ListFirms(ctx, Status(strings.ToUpper(status)))
}

func (s *service) UpdateFirm(ctx context.Context, id string, req UpdateFirmRequest) (*Firm, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid firm id: %w", err)
	}
	f, err := s.repo.GetFirm(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("firm not found: %w", err)
	}
	if req.SpecialDiscountPct != nil {
		d := *req.SpecialDiscountPct
		if d < 0 || d > 100 {
			return nil, fmt.Errorf("%w: got %.2f", ErrInvalidDiscount, d)
		}
	}

	f.Name = req.Name
	f.SpecialDiscountPct = req.SpecialDiscountPct
	f.PaymentTermsDays = req.PaymentTermsDays
	f.Email = req.Email
	f.Phone = req.Phone
	f.City = req.City
	f.Country = req.Country
	if err := s.repo.UpdateFirm(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) Activate(ctx context.Context, id string) error {
	return s.transition(ctx, id, StatusActive)
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	return s.transition(ctx, id, StatusInactive)
}

func (s *service) transition(ctx context.Context, id string, target Status) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid firm id: %w", err)
	}
	f, err := s.repo.GetFirm(ctx, uid)
	if err != nil {
		return fmt.Errorf("firm not found: %w", err)
	}
	for _, allowed := range validTransitions[f.Status] {
		if allowed == target {
			return s.repo.UpdateStatus(ctx, uid, target)
		}
	}
	return fmt.Errorf("cannot transition firm from %s to %s", f.Status, target)
}
