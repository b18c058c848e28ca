package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jobportal/api/internal/application/domain"
	"github.com/jobportal/api/internal/application/dto"
	authdomain "github.com/jobportal/api/internal/auth/domain"
	apperr "github.com/jobportal/api/internal/errors"
	jobdomain "github.com/jobportal/api/internal/job/domain"
	"github.com/jobportal/api/pkg/constant"
)

type ApplicationService struct {
	applications domain.ApplicationRepository
	jobs         jobdomain.JobRepository
	users        authdomain.UserRepository
}

func NewApplicationService(applications domain.ApplicationRepository,
	jobs jobdomain.JobRepository, users authdomain.UserRepository) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		jobs:         jobs,
		users:        users,
	}
}

func (s *ApplicationService) Apply(ctx context.Context, userID string, req dto.ApplicationRequest) (*dto.ApplicationOutput, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrUserNotFound
	}
	if user.Role != constant.RoleJobSeeker {
		return nil, apperr.ErrOnlyJobSeekers
	}

	job, err := s.jobs.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperr.ErrJobNotFound
	}
	if !job.IsActive {
		return nil, apperr.ErrJobInactive
	}

	exists, err := s.applications.ExistsByUserAndJob(ctx, userID, req.JobID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.ErrAlreadyApplied
	}

	now := time.Now()

	app := &domain.Application{
		ID:          uuid.NewString(),
		JobID:       req.JobID,
		UserID:      userID,
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
		Status:      domain.StatusApplied,
		AppliedAt:   now,
		UpdatedAt:   now,

		JobTitle:      job.Title,
		CompanyName:   job.CompanyName,
		ApplicantName: user.FirstName + " " + user.LastName,
	}

	if err := s.applications.Create(ctx, app); err != nil {
		return nil, err
	}

	if err := s.jobs.IncrementApplications(ctx, job.ID, 1); err != nil {
		log.Printf("warn: failed to bump application count for job %s: %v", job.ID, err)
	}

	out := dto.NewApplicationOutput(app)

	return &out, nil
}

// GetByID is visible to the applicant and the recruiter who owns the job.
func (s *ApplicationService) GetByID(ctx context.Context, userID, appID string) (*dto.ApplicationOutput, error) {
	app, err := s.applications.GetByID(ctx, appID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, apperr.ErrApplicationNotFound
	}

	if app.UserID != userID && app.JobOwnerUserID != userID {
		return nil, apperr.ErrForbidden
	}

	out := dto.NewApplicationOutput(app)

	return &out, nil
}

func (s *ApplicationService) ListByUser(ctx context.Context, userID string, page, size int) (*dto.ApplicationPage, error) {
	limit, offset := pageBounds(page, size)

	apps, total, err := s.applications.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	out := dto.NewApplicationPage(apps, total, page, limit)

	return &out, nil
}

func (s *ApplicationService) ListByJob(ctx context.Context, userID, jobID string, page, size int) (*dto.ApplicationPage, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperr.ErrJobNotFound
	}
	if job.RecruiterUserID != userID {
		return nil, apperr.ErrForbidden
	}

	limit, offset := pageBounds(page, size)

	apps, total, err := s.applications.ListByJob(ctx, jobID, limit, offset)
	if err != nil {
		return nil, err
	}

	out := dto.NewApplicationPage(apps, total, page, limit)

	return &out, nil
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, userID, appID, status string) (*dto.ApplicationOutput, error) {
	status = strings.ToUpper(status)
	if !domain.ValidStatus(status) {
		return nil, apperr.ErrInvalidStatus
	}

	app, err := s.applications.GetByID(ctx, appID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, apperr.ErrApplicationNotFound
	}
	if app.JobOwnerUserID != userID {
		return nil, apperr.ErrForbidden
	}

	if err := s.applications.UpdateStatus(ctx, appID, status); err != nil {
		return nil, err
	}

	app.Status = status
	out := dto.NewApplicationOutput(app)

	return &out, nil
}

// Withdraw removes the applicant's own application and releases the slot in
// the job's counter.
func (s *ApplicationService) Withdraw(ctx context.Context, userID, appID string) error {
	app, err := s.applications.GetByID(ctx, appID)
	if err != nil {
		return err
	}
	if app == nil {
		return apperr.ErrApplicationNotFound
	}
	if app.UserID != userID {
		return apperr.ErrForbidden
	}

	if err := s.applications.Delete(ctx, appID); err != nil {
		return err
	}

	if err := s.jobs.IncrementApplications(ctx, app.JobID, -1); err != nil {
		log.Printf("warn: failed to drop application count for job %s: %v", app.JobID, err)
	}

	return nil
}

func pageBounds(page, size int) (limit, offset int) {
	if size <= 0 {
		size = constant.DefaultPageSize
	}
	if size > constant.MaxPageSize {
		size = constant.MaxPageSize
	}
	if page < 0 {
		page = 0
	}

	return size, page * size
}
