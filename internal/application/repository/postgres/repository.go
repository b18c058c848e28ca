package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jobportal/api/internal/application/domain"
)

type PgxIface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ApplicationRepository struct {
	db PgxIface
}

func NewApplicationRepository(db PgxIface) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationColumns = `a.id, a.job_id, a.user_id, a.cover_letter, a.resume_url, a.status,
		a.applied_at, a.updated_at,
		j.title, r.company_name, u.first_name || ' ' || u.last_name, r.user_id`

const applicationFrom = ` FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN recruiters r ON r.id = j.recruiter_id
		JOIN users u ON u.id = a.user_id`

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var app domain.Application
	err := row.Scan(&app.ID, &app.JobID, &app.UserID, &app.CoverLetter, &app.ResumeURL,
		&app.Status, &app.AppliedAt, &app.UpdatedAt,
		&app.JobTitle, &app.CompanyName, &app.ApplicantName, &app.JobOwnerUserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan application: %w", err)
	}

	return &app, nil
}

func (r *ApplicationRepository) scanApplications(rows pgx.Rows) ([]domain.Application, error) {
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}

	return apps, rows.Err()
}

func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO applications (id, job_id, user_id, cover_letter, resume_url, status, applied_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, app.ID, app.JobID, app.UserID, app.CoverLetter, app.ResumeURL, app.Status,
		app.AppliedAt, app.UpdatedAt)

	return err
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	row := r.db.QueryRow(ctx, `SELECT `+applicationColumns+applicationFrom+` WHERE a.id = $1 LIMIT 1`, id)
	return scanApplication(row)
}

func (r *ApplicationRepository) ExistsByUserAndJob(ctx context.Context, userID, jobID string) (bool, error) {
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE user_id = $1 AND job_id = $2)`, userID, jobID)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check application: %w", err)
	}

	return exists, nil
}

func (r *ApplicationRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Application, int, error) {
	var total int
	row := r.db.QueryRow(ctx, `SELECT count(*) FROM applications WHERE user_id = $1`, userID)
	if err := row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+applicationColumns+applicationFrom+`
		WHERE a.user_id = $1
		ORDER BY a.applied_at DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list applications: %w", err)
	}

	apps, err := r.scanApplications(rows)

	return apps, total, err
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID string, limit, offset int) ([]domain.Application, int, error) {
	var total int
	row := r.db.QueryRow(ctx, `SELECT count(*) FROM applications WHERE job_id = $1`, jobID)
	if err := row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+applicationColumns+applicationFrom+`
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC
		LIMIT $2 OFFSET $3
	`, jobID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list applications: %w", err)
	}

	apps, err := r.scanApplications(rows)

	return apps, total, err
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE applications SET status = $2, updated_at = now() WHERE id = $1
	`, id, status)

	return err
}

func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	return err
}
