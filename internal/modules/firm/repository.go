package firm

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for firms.
type Repository interface {
	// GetFirm retrieves a firm by id.
	GetFirm(ctx context.Context, id uuid.UUID) (*Firm, error)

	// ListFirms returns firms, optionally filtered by status.
	ListFirms(ctx context.Context, status Status) ([]*Firm, error)

	// CreateFirm persists a new firm.
	CreateFirm(ctx context.Context, f *Firm) error

	// UpdateFirm updates editable firm fields.
	UpdateFirm(ctx context.Context, f *Firm) error

	// UpdateStatus moves a firm to a new lifecycle status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
}
