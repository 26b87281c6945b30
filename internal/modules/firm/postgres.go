package firm

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const firmColumns = `id,name,class,special_discount_pct,status,category,tags,
	priority_score,payment_terms_days,email,phone,city,country,created_at,updated_at`

func (r *postgresRepo) GetFirm(ctx context.Context, id uuid.UUID) (*Firm, error) {
	return scanFirm(r.db.QueryRowContext(ctx,
		`SELECT `+firmColumns+` FROM firms WHERE id=$1`, id))
}

func (r *postgresRepo) ListFirms(ctx context.Context, status Status) ([]*Firm, error) {
	query := `SELECT ` + firmColumns + ` FROM firms`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status=$1`
		args = append(args, status)
	}
	query += ` ORDER BY priority_score DESC, name ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var firms []*Firm
	for rows.Next() {
		f := &Firm{}
		var discount sql.NullFloat64
		if err := rows.Scan(&f.ID, &f.Name, &f.Class, &discount, &f.Status,
			&f.Category, pq.Array(&f.Tags), &f.PriorityScore, &f.PaymentTermsDays,
			&f.Email, &f.Phone, &f.City, &f.Country, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		if discount.Valid {
			f.SpecialDiscountPct = &discount.Float64
		}
		firms = append(firms, f)
	}
	return firms, rows.Err()
}

func (r *postgresRepo) CreateFirm(ctx context.Context, f *Firm) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO firms
		  (id,name,class,special_discount_pct,status,category,tags,
		   priority_score,payment_terms_days,email,phone,city,country)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		f.ID, f.Name, f.Class, nullableFloat(f.SpecialDiscountPct), f.Status,
		f.Category, pq.Array(f.Tags), f.PriorityScore, f.PaymentTermsDays,
		f.Email, f.Phone, f.City, f.Country)
	return err
}

func (r *postgresRepo) UpdateFirm(ctx context.Context, f *Firm) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE firms SET name=$1, special_discount_pct=$2, payment_terms_days=$3,
		       email=$4, phone=$5, city=$6, country=$7, updated_at=$8
		WHERE id=$9`,
		f.Name, nullableFloat(f.SpecialDiscountPct), f.PaymentTermsDays,
		f.Email, f.Phone, f.City, f.Country, time.Now(), f.ID)
	return err
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE firms SET status=$1, updated_at=$2 WHERE id=$3`,
		status, time.Now(), id)
	return err
}

// ── helpers ──────────────────────────────────────────────────────────────────

func scanFirm(row *sql.Row) (*Firm, error) {
	f := &Firm{}
	var discount sql.NullFloat64
	err := row.Scan(&f.ID, &f.Name, &f.Class, &discount, &f.Status,
		&f.Category, pq.Array(&f.Tags), &f.PriorityScore, &f.PaymentTermsDays,
		&f.Email, &f.Phone, &f.City, &f.Country, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if discount.Valid {
		f.SpecialDiscountPct = &discount.Float64
	}
	return f, nil
}

func nullableFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
