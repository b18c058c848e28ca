package domain

//go:generate mockgen -destination=../../mocks/mock_recruiter_repository.go -package=mocks github.com/jobportal/api/internal/recruiter/domain RecruiterRepository

import (
	"context"
	"time"
)

type Recruiter struct {
	ID                 string
	UserID             string
	CompanyName        string
	CompanyWebsite     string
	CompanyLogo        string
	CompanyDescription string
	Designation        string
	Location           string
	Verified           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type RecruiterRepository interface {
	Upsert(ctx context.Context, recruiter *Recruiter) error
	GetByID(ctx context.Context, id string) (*Recruiter, error)
	GetByUserID(ctx context.Context, userID string) (*Recruiter, error)
	SetVerified(ctx context.Context, id string, verified bool) error
}
