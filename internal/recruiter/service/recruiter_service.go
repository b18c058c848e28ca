package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperr "github.com/jobportal/api/internal/errors"
	"github.com/jobportal/api/internal/recruiter/domain"
	"github.com/jobportal/api/internal/recruiter/dto"
)

type RecruiterService struct {
	recruiters domain.RecruiterRepository
}

func NewRecruiterService(recruiters domain.RecruiterRepository) *RecruiterService {
	return &RecruiterService{recruiters: recruiters}
}

// SaveProfile creates or updates the caller's recruiter profile.
func (s *RecruiterService) SaveProfile(ctx context.Context, userID string, input dto.RecruiterInput) (*dto.RecruiterOutput, error) {
	existing, err := s.recruiters.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	rec := &domain.Recruiter{
		ID:                 uuid.NewString(),
		UserID:             userID,
		CompanyName:        input.CompanyName,
		CompanyWebsite:     input.CompanyWebsite,
		CompanyLogo:        input.CompanyLogo,
		CompanyDescription: input.CompanyDescription,
		Designation:        input.Designation,
		Location:           input.Location,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if existing != nil {
		rec.ID = existing.ID
		rec.Verified = existing.Verified
		rec.CreatedAt = existing.CreatedAt
	}

	if err := s.recruiters.Upsert(ctx, rec); err != nil {
		return nil, err
	}

	out := dto.NewRecruiterOutput(rec)

	return &out, nil
}

func (s *RecruiterService) GetOwnProfile(ctx context.Context, userID string) (*dto.RecruiterOutput, error) {
	rec, err := s.recruiters.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperr.ErrRecruiterNotFound
	}

	out := dto.NewRecruiterOutput(rec)

	return &out, nil
}

func (s *RecruiterService) GetByID(ctx context.Context, id string) (*dto.RecruiterOutput, error) {
	rec, err := s.recruiters.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperr.ErrRecruiterNotFound
	}

	out := dto.NewRecruiterOutput(rec)

	return &out, nil
}

// Verify marks a recruiter profile as verified. Admin only, enforced at the
// route layer.
func (s *RecruiterService) Verify(ctx context.Context, id string) error {
	rec, err := s.recruiters.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperr.ErrRecruiterNotFound
	}

	return s.recruiters.SetVerified(ctx, id, true)
}
