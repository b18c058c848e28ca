package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jobportal/api/internal/job/domain"
)

type PgxIface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type JobRepository struct {
	db PgxIface
}

func NewJobRepository(db PgxIface) *JobRepository {
	return &JobRepository{db: db}
}

const jobColumns = `j.id, j.recruiter_id, j.title, j.description, j.requirements, j.skills,
		j.location, j.job_type, j.experience_level, j.min_salary, j.max_salary,
		j.salary_currency, j.vacancies, j.application_deadline, j.is_active, j.is_remote,
		j.views_count, j.applications_count, j.created_at, j.updated_at,
		r.user_id, r.company_name, r.company_logo`

const jobFrom = ` FROM jobs j JOIN recruiters r ON r.id = j.recruiter_id`

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	err := row.Scan(&job.ID, &job.RecruiterID, &job.Title, &job.Description,
		&job.Requirements, &job.Skills, &job.Location, &job.JobType,
		&job.ExperienceLevel, &job.MinSalary, &job.MaxSalary, &job.SalaryCurrency,
		&job.Vacancies, &job.ApplicationDeadline, &job.IsActive, &job.IsRemote,
		&job.ViewsCount, &job.ApplicationsCount, &job.CreatedAt, &job.UpdatedAt,
		&job.RecruiterUserID, &job.CompanyName, &job.CompanyLogo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan job: %w", err)
	}

	return &job, nil
}

func (r *JobRepository) scanJobs(rows pgx.Rows) ([]domain.Job, error) {
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}

	return jobs, rows.Err()
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO jobs (id, recruiter_id, title, description, requirements, skills,
			location, job_type, experience_level, min_salary, max_salary, salary_currency,
			vacancies, application_deadline, is_active, is_remote, views_count,
			applications_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`, job.ID, job.RecruiterID, job.Title, job.Description, job.Requirements, job.Skills,
		job.Location, job.JobType, job.ExperienceLevel, job.MinSalary, job.MaxSalary,
		job.SalaryCurrency, job.Vacancies, job.ApplicationDeadline, job.IsActive,
		job.IsRemote, job.ViewsCount, job.ApplicationsCount, job.CreatedAt, job.UpdatedAt)

	return err
}

func (r *JobRepository) Update(ctx context.Context, job *domain.Job) error {
	_, err := r.db.Exec(ctx, `
		UPDATE jobs SET title = $2, description = $3, requirements = $4, skills = $5,
			location = $6, job_type = $7, experience_level = $8, min_salary = $9,
			max_salary = $10, salary_currency = $11, vacancies = $12,
			application_deadline = $13, is_active = $14, is_remote = $15, updated_at = now()
		WHERE id = $1
	`, job.ID, job.Title, job.Description, job.Requirements, job.Skills, job.Location,
		job.JobType, job.ExperienceLevel, job.MinSalary, job.MaxSalary, job.SalaryCurrency,
		job.Vacancies, job.ApplicationDeadline, job.IsActive, job.IsRemote)

	return err
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+jobFrom+` WHERE j.id = $1 LIMIT 1`, id)
	return scanJob(row)
}

func (r *JobRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `UPDATE jobs SET views_count = views_count + 1 WHERE id = $1`, id)
	return err
}

func (r *JobRepository) IncrementApplications(ctx context.Context, id string, delta int) error {
	_, err := r.db.Exec(ctx, `
		UPDATE jobs SET applications_count = applications_count + $2 WHERE id = $1
	`, id, delta)

	return err
}

func (r *JobRepository) ListActive(ctx context.Context, limit, offset int) ([]domain.Job, int, error) {
	var total int
	row := r.db.QueryRow(ctx, `SELECT count(*) FROM jobs WHERE is_active`)
	if err := row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+jobColumns+jobFrom+`
		WHERE j.is_active
		ORDER BY j.created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}

	jobs, err := r.scanJobs(rows)

	return jobs, total, err
}

// Search only ever returns active jobs; empty filter fields are skipped.
func (r *JobRepository) Search(ctx context.Context, filter domain.SearchFilter) ([]domain.Job, int, error) {
	where := ` WHERE j.is_active`
	args := []any{}

	addArg := func(clause string, value any) {
		args = append(args, value)
		where += fmt.Sprintf(clause, len(args))
	}

	if filter.Keyword != "" {
		addArg(` AND (j.title ILIKE $%[1]d OR j.description ILIKE $%[1]d OR j.skills ILIKE $%[1]d)`,
			"%"+filter.Keyword+"%")
	}
	if filter.Location != "" {
		addArg(` AND j.location ILIKE $%d`, "%"+filter.Location+"%")
	}
	if filter.JobType != "" {
		addArg(` AND j.job_type = $%d`, filter.JobType)
	}
	if filter.ExperienceLevel != "" {
		addArg(` AND j.experience_level = $%d`, filter.ExperienceLevel)
	}

	var total int
	row := r.db.QueryRow(ctx, `SELECT count(*)`+jobFrom+where, args...)
	if err := row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count search results: %w", err)
	}

	limitPos := len(args) + 1
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, fmt.Sprintf(
		`SELECT `+jobColumns+jobFrom+where+` ORDER BY j.created_at DESC LIMIT $%d OFFSET $%d`,
		limitPos, limitPos+1), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search jobs: %w", err)
	}

	jobs, err := r.scanJobs(rows)

	return jobs, total, err
}

func (r *JobRepository) ListByRecruiter(ctx context.Context, recruiterID string, limit, offset int) ([]domain.Job, int, error) {
	var total int
	row := r.db.QueryRow(ctx, `SELECT count(*) FROM jobs WHERE recruiter_id = $1`, recruiterID)
	if err := row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count recruiter jobs: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+jobColumns+jobFrom+`
		WHERE j.recruiter_id = $1
		ORDER BY j.created_at DESC
		LIMIT $2 OFFSET $3
	`, recruiterID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list recruiter jobs: %w", err)
	}

	jobs, err := r.scanJobs(rows)

	return jobs, total, err
}
