package domain

//go:generate mockgen -destination=../../mocks/mock_job_repository.go -package=mocks github.com/jobportal/api/internal/job/domain JobRepository

import (
	"context"
	"time"
)

type Job struct {
	ID                  string
	RecruiterID         string
	Title               string
	Description         string
	Requirements        string
	Skills              string
	Location            string
	JobType             string
	ExperienceLevel     string
	MinSalary           *int64
	MaxSalary           *int64
	SalaryCurrency      string
	Vacancies           int
	ApplicationDeadline *time.Time
	IsActive            bool
	IsRemote            bool
	ViewsCount          int64
	ApplicationsCount   int64
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// joined from recruiters
	RecruiterUserID string
	CompanyName     string
	CompanyLogo     string
}

// SearchFilter narrows the active-job listing. Keyword matches title,
// description and skills case-insensitively.
type SearchFilter struct {
	Keyword         string
	Location        string
	JobType         string
	ExperienceLevel string
	Limit           int
	Offset          int
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	Update(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	IncrementViews(ctx context.Context, id string) error
	IncrementApplications(ctx context.Context, id string, delta int) error
	ListActive(ctx context.Context, limit, offset int) ([]Job, int, error)
	Search(ctx context.Context, filter SearchFilter) ([]Job, int, error)
	ListByRecruiter(ctx context.Context, recruiterID string, limit, offset int) ([]Job, int, error)
}
