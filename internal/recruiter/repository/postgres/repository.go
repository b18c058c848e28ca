package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jobportal/api/internal/recruiter/domain"
)

type PgxIface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type RecruiterRepository struct {
	db PgxIface
}

func NewRecruiterRepository(db PgxIface) *RecruiterRepository {
	return &RecruiterRepository{db: db}
}

const recruiterColumns = `id, user_id, company_name, company_website, company_logo,
		company_description, designation, location, verified, created_at, updated_at`

func scanRecruiter(row pgx.Row) (*domain.Recruiter, error) {
	var rec domain.Recruiter
	err := row.Scan(&rec.ID, &rec.UserID, &rec.CompanyName, &rec.CompanyWebsite,
		&rec.CompanyLogo, &rec.CompanyDescription, &rec.Designation, &rec.Location,
		&rec.Verified, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan recruiter: %w", err)
	}

	return &rec, nil
}

// Upsert keys on user_id: one recruiter profile per user. Verified status is
// preserved on update.
func (r *RecruiterRepository) Upsert(ctx context.Context, rec *domain.Recruiter) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO recruiters (
			id, user_id, company_name, company_website, company_logo,
			company_description, designation, location, verified, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id)
		DO UPDATE SET
			company_name = EXCLUDED.company_name,
			company_website = EXCLUDED.company_website,
			company_logo = EXCLUDED.company_logo,
			company_description = EXCLUDED.company_description,
			designation = EXCLUDED.designation,
			location = EXCLUDED.location,
			updated_at = now()
	`, rec.ID, rec.UserID, rec.CompanyName, rec.CompanyWebsite, rec.CompanyLogo,
		rec.CompanyDescription, rec.Designation, rec.Location, rec.Verified,
		rec.CreatedAt, rec.UpdatedAt)

	return err
}

func (r *RecruiterRepository) GetByID(ctx context.Context, id string) (*domain.Recruiter, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+recruiterColumns+`
		FROM recruiters
		WHERE id = $1
		LIMIT 1
	`, id)

	return scanRecruiter(row)
}

func (r *RecruiterRepository) GetByUserID(ctx context.Context, userID string) (*domain.Recruiter, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+recruiterColumns+`
		FROM recruiters
		WHERE user_id = $1
		LIMIT 1
	`, userID)

	return scanRecruiter(row)
}

func (r *RecruiterRepository) SetVerified(ctx context.Context, id string, verified bool) error {
	_, err := r.db.Exec(ctx, `
		UPDATE recruiters SET verified = $2, updated_at = now() WHERE id = $1
	`, id, verified)

	return err
}
