package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jobportal/api/internal/dashboard/domain"
)

type PgxIface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type StatsRepository struct {
	db PgxIface
}

func NewStatsRepository(db PgxIface) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) AdminStats(ctx context.Context) (*domain.AdminStats, error) {
	stats := &domain.AdminStats{
		UsersByRole:          map[string]int64{},
		ApplicationsByStatus: map[string]int64{},
	}

	rows, err := r.db.Query(ctx, `SELECT role, count(*) FROM users GROUP BY role`)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if err := scanCounts(rows, stats.UsersByRole); err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `SELECT count(*), count(*) FILTER (WHERE is_active) FROM jobs`)
	if err := row.Scan(&stats.TotalJobs, &stats.ActiveJobs); err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	rows, err = r.db.Query(ctx, `SELECT status, count(*) FROM applications GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}
	if err := scanCounts(rows, stats.ApplicationsByStatus); err != nil {
		return nil, err
	}

	row = r.db.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM users WHERE created_at > now() - interval '7 days'),
			(SELECT count(*) FROM jobs WHERE created_at > now() - interval '7 days')
	`)
	if err := row.Scan(&stats.NewUsersLast7Days, &stats.NewJobsLast7Days); err != nil {
		return nil, fmt.Errorf("failed to count recent activity: %w", err)
	}

	return stats, nil
}

func (r *StatsRepository) RecruiterStats(ctx context.Context, recruiterID string) (*domain.RecruiterStats, error) {
	stats := &domain.RecruiterStats{
		ApplicationsByStatus: map[string]int64{},
	}

	row := r.db.QueryRow(ctx, `
		SELECT count(*), count(*) FILTER (WHERE is_active), COALESCE(sum(views_count), 0)
		FROM jobs
		WHERE recruiter_id = $1
	`, recruiterID)
	if err := row.Scan(&stats.TotalJobs, &stats.ActiveJobs, &stats.TotalViews); err != nil {
		return nil, fmt.Errorf("failed to count recruiter jobs: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT a.status, count(*)
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.recruiter_id = $1
		GROUP BY a.status
	`, recruiterID)
	if err != nil {
		return nil, fmt.Errorf("failed to count recruiter applications: %w", err)
	}
	if err := scanCounts(rows, stats.ApplicationsByStatus); err != nil {
		return nil, err
	}

	return stats, nil
}

func scanCounts(rows pgx.Rows, into map[string]int64) error {
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int64
		if err := rows.Scan(&key, &count); err != nil {
			return fmt.Errorf("failed to scan count row: %w", err)
		}
		into[key] = count
	}

	return rows.Err()
}
