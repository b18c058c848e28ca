package domain

//go:generate mockgen -destination=../../mocks/mock_stats_repository.go -package=mocks github.com/jobportal/api/internal/dashboard/domain StatsRepository

import (
	"context"
)

type AdminStats struct {
	UsersByRole          map[string]int64
	TotalJobs            int64
	ActiveJobs           int64
	ApplicationsByStatus map[string]int64
	NewUsersLast7Days    int64
	NewJobsLast7Days     int64
}

type RecruiterStats struct {
	TotalJobs            int64
	ActiveJobs           int64
	TotalViews           int64
	ApplicationsByStatus map[string]int64
}

type StatsRepository interface {
	AdminStats(ctx context.Context) (*AdminStats, error)
	RecruiterStats(ctx context.Context, recruiterID string) (*RecruiterStats, error)
}
