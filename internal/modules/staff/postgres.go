package staff

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateStaff(ctx context.Context, s *Staff) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO staff (id,email,password_hash,full_name,role)
		VALUES ($1,$2,$3,$4,$5)`,
		s.ID, s.Email, s.PasswordHash, s.FullName, s.Role)
	return err
}

func (r *postgresRepo) GetStaffByID(ctx context.Context, id uuid.UUID) (*Staff, error) {
	s := &Staff{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id,email,password_hash,full_name,role,created_at,updated_at
		FROM staff WHERE id=$1`, id).
		Scan(&s.ID, &s.Email, &s.PasswordHash, &s.FullName, &s.Role, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *postgresRepo) GetStaffByEmail(ctx context.Context, email string) (*Staff, error) {
	s := &Staff{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id,email,password_hash,full_name,role,created_at,updated_at
		FROM staff WHERE email=$1`, email).
		Scan(&s.ID, &s.Email, &s.PasswordHash, &s.FullName, &s.Role, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *postgresRepo) ListStaff(ctx context.Context) ([]*Staff, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id,email,password_hash,full_name,role,created_at,updated_at
		FROM staff ORDER BY full_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var members []*Staff
	for rows.Next() {
		s := &Staff{}
		if err := rows.Scan(&s.ID, &s.Email, &s.PasswordHash, &s.FullName,
			&s.Role, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		members = append(members, s)
	}
	return members, rows.Err()
}
