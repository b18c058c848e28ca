package domain

//go:generate mockgen -destination=../../mocks/mock_application_repository.go -package=mocks github.com/jobportal/api/internal/application/domain ApplicationRepository

import (
	"context"
	"time"
)

const (
	StatusApplied     = "APPLIED"
	StatusReviewing   = "REVIEWING"
	StatusShortlisted = "SHORTLISTED"
	StatusRejected    = "REJECTED"
	StatusHired       = "HIRED"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusApplied, StatusReviewing, StatusShortlisted, StatusRejected, StatusHired:
		return true
	}
	return false
}

type Application struct {
	ID          string
	JobID       string
	UserID      string
	CoverLetter string
	ResumeURL   string
	Status      string
	AppliedAt   time.Time
	UpdatedAt   time.Time

	// joined
	JobTitle       string
	CompanyName    string
	ApplicantName  string
	JobOwnerUserID string
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)
	ExistsByUserAndJob(ctx context.Context, userID, jobID string) (bool, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Application, int, error)
	ListByJob(ctx context.Context, jobID string, limit, offset int) ([]Application, int, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
