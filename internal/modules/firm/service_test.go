package firm

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/kasonde/distrohub-backend/internal/modules/scoring"
)

// fakeRepo is an in-memory Repository for service tests.
type fakeRepo struct {
	firms map[uuid.UUID]*Firm
}

func newFakeRepo() *fakeRepo { return &fakeRepo{firms: map[uuid.UUID]*Firm{}} }

func (r *fakeRepo) GetFirm(_ context.Context, id uuid.UUID) (*Firm, error) {
	f, ok := r.firms[id]
	if !ok {
		return nil, errors.New("firm not found")
	}
	return f, nil
}

func (r *fakeRepo) ListFirms(_ context.Context, status Status) ([]*Firm, error) {
	var out []*Firm
	for _, f := range r.firms {
		if status == "" || f.Status == status {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeRepo) CreateFirm(_ context.Context, f *Firm) error {
	r.firms[f.ID] = f
	return nil
}

func (r *fakeRepo) UpdateFirm(_ context.Context, f *Firm) error {
	r.firms[f.ID] = f
	return nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id uuid.UUID, status Status) error {
	f, ok := r.firms[id]
	if !ok {
		return errors.New("firm not found")
	}
	f.Status = status
	return nil
}

func newTestService(repo Repository) Service {
	return NewService(repo, scoring.NewEngine(scoring.DefaultConfig()))
}

func TestOnboardProspectAssignsScore(t *testing.T) {
	svc := newTestService(newFakeRepo())

	f, err := svc.OnboardProspect(context.Background(), OnboardRequest{
		Name:     "Bolt Wholesale Kft",
		Class:    "dealer",
		Category: "A",
		Tags:     []string{"key-account", "chain-store"},
	})
	if err != nil {
		t.Fatalf("OnboardProspect() error = %v", err)
	}
	if f.Status != StatusProspect {
		t.Errorf("Status = %s, want PROSPECT", f.Status)
	}
	if f.Class != ClassDealer {
		t.Errorf("Class = %s, want DEALER", f.Class)
	}
	// 85 + 15 + 8 = 108, clamped to the A band ceiling.
	if f.PriorityScore != 100 {
		t.Errorf("PriorityScore = %d, want 100", f.PriorityScore)
	}
	if f.PaymentTermsDays != 30 {
		t.Errorf("PaymentTermsDays = %d, want default 30", f.PaymentTermsDays)
	}
}

func TestOnboardProspectRejectsBadInput(t *testing.T) {
	svc := newTestService(newFakeRepo())

	tests := []struct {
		name string
		req  OnboardRequest
	}{
		{"missing name", OnboardRequest{Class: "CUSTOMER", Category: "B"}},
		{"bad class", OnboardRequest{Name: "X", Class: "RESELLER", Category: "B"}},
		{"unknown category", OnboardRequest{Name: "X", Class: "CUSTOMER", Category: "Q"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.OnboardProspect(context.Background(), tt.req); err == nil {
				t.Error("OnboardProspect() expected error, got nil")
			}
		})
	}
}

func TestUpdateFirmRejectsOutOfRangeDiscount(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	f, err := svc.OnboardProspect(context.Background(), OnboardRequest{
		Name: "Acme", Class: "CUSTOMER", Category: "C",
	})
	if err != nil {
		t.Fatalf("OnboardProspect() error = %v", err)
	}

	over := 150.0
	_, err = svc.UpdateFirm(context.Background(), f.ID.String(), UpdateFirmRequest{
		Name:               "Acme",
		SpecialDiscountPct: &over,
	})
	if !errors.Is(err, ErrInvalidDiscount) {
		t.Errorf("UpdateFirm() error = %v, want ErrInvalidDiscount", err)
	}
}

func TestLifecycleTransitions(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	f, err := svc.OnboardProspect(context.Background(), OnboardRequest{
		Name: "Acme", Class: "CUSTOMER", Category: "C",
	})
	if err != nil {
		t.Fatalf("OnboardProspect() error = %v", err)
	}
	id := f.ID.String()

	// PROSPECT cannot go straight to INACTIVE.
	if err := svc.Deactivate(context.Background(), id); err == nil {
		t.Error("Deactivate() of a prospect should fail")
	}
	if err := svc.Activate(context.Background(), id); err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	if repo.firms[f.ID].Status != StatusActive {
		t.Errorf("Status = %s, want ACTIVE", repo.firms[f.ID].Status)
	}
	if err := svc.Deactivate(context.Background(), id); err != nil {
		t.Fatalf("Deactivate() error = %v", err)
	}
	if err := svc.Activate(context.Background(), id); err != nil {
		t.Fatalf("re-Activate() error = %v", err)
	}
}
