package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	apperr "github.com/jobportal/api/internal/errors"
	"github.com/jobportal/api/internal/job/domain"
	"github.com/jobportal/api/internal/job/dto"
	recruiterdomain "github.com/jobportal/api/internal/recruiter/domain"
	"github.com/jobportal/api/pkg/constant"
)

type JobService struct {
	jobs       domain.JobRepository
	recruiters recruiterdomain.RecruiterRepository
}

func NewJobService(jobs domain.JobRepository, recruiters recruiterdomain.RecruiterRepository) *JobService {
	return &JobService{jobs: jobs, recruiters: recruiters}
}

// Create requires a recruiter profile; posting without one is a NotFound on
// the profile, not on the job.
func (s *JobService) Create(ctx context.Context, userID string, req dto.JobRequest) (*dto.JobOutput, error) {
	rec, err := s.recruiters.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperr.ErrRecruiterNotFound
	}

	now := time.Now()

	job := &domain.Job{
		ID:                  uuid.NewString(),
		RecruiterID:         rec.ID,
		Title:               req.Title,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Skills:              req.Skills,
		Location:            req.Location,
		JobType:             req.JobType,
		ExperienceLevel:     req.ExperienceLevel,
		MinSalary:           req.MinSalary,
		MaxSalary:           req.MaxSalary,
		SalaryCurrency:      constant.DefaultSalaryCurrency,
		Vacancies:           constant.DefaultVacancies,
		ApplicationDeadline: req.ApplicationDeadline,
		IsActive:            true,
		CreatedAt:           now,
		UpdatedAt:           now,

		RecruiterUserID: rec.UserID,
		CompanyName:     rec.CompanyName,
		CompanyLogo:     rec.CompanyLogo,
	}
	if req.SalaryCurrency != "" {
		job.SalaryCurrency = req.SalaryCurrency
	}
	if req.Vacancies != nil {
		job.Vacancies = *req.Vacancies
	}
	if req.IsRemote != nil {
		job.IsRemote = *req.IsRemote
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	out := dto.NewJobOutput(job)

	return &out, nil
}

func (s *JobService) Update(ctx context.Context, userID, jobID string, req dto.JobUpdateRequest) (*dto.JobOutput, error) {
	job, err := s.ownedJob(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Skills != nil {
		job.Skills = *req.Skills
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.ExperienceLevel != nil {
		job.ExperienceLevel = *req.ExperienceLevel
	}
	if req.MinSalary != nil {
		job.MinSalary = req.MinSalary
	}
	if req.MaxSalary != nil {
		job.MaxSalary = req.MaxSalary
	}
	if req.SalaryCurrency != nil {
		job.SalaryCurrency = *req.SalaryCurrency
	}
	if req.Vacancies != nil {
		job.Vacancies = *req.Vacancies
	}
	if req.ApplicationDeadline != nil {
		job.ApplicationDeadline = req.ApplicationDeadline
	}
	if req.IsRemote != nil {
		job.IsRemote = *req.IsRemote
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}

	out := dto.NewJobOutput(job)

	return &out, nil
}

// Delete deactivates the posting; rows are never hard-deleted.
func (s *JobService) Delete(ctx context.Context, userID, jobID string) error {
	job, err := s.ownedJob(ctx, userID, jobID)
	if err != nil {
		return err
	}

	job.IsActive = false

	return s.jobs.Update(ctx, job)
}

func (s *JobService) ToggleStatus(ctx context.Context, userID, jobID string) (*dto.JobOutput, error) {
	job, err := s.ownedJob(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}

	job.IsActive = !job.IsActive

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}

	out := dto.NewJobOutput(job)

	return &out, nil
}

func (s *JobService) GetByID(ctx context.Context, jobID string) (*dto.JobOutput, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperr.ErrJobNotFound
	}

	if err := s.jobs.IncrementViews(ctx, jobID); err != nil {
		log.Printf("warn: failed to bump view count for job %s: %v", jobID, err)
	}
	job.ViewsCount++

	out := dto.NewJobOutput(job)

	return &out, nil
}

func (s *JobService) ListActive(ctx context.Context, page, size int) (*dto.JobPage, error) {
	limit, offset := pageBounds(page, size)

	jobs, total, err := s.jobs.ListActive(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	out := dto.NewJobPage(jobs, total, page, limit)

	return &out, nil
}

func (s *JobService) Search(ctx context.Context, req dto.SearchRequest) (*dto.JobPage, error) {
	limit, offset := pageBounds(req.Page, req.Size)

	jobs, total, err := s.jobs.Search(ctx, domain.SearchFilter{
		Keyword:         req.Keyword,
		Location:        req.Location,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		Limit:           limit,
		Offset:          offset,
	})
	if err != nil {
		return nil, err
	}

	out := dto.NewJobPage(jobs, total, req.Page, limit)

	return &out, nil
}

func (s *JobService) ListOwn(ctx context.Context, userID string, page, size int) (*dto.JobPage, error) {
	rec, err := s.recruiters.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperr.ErrRecruiterNotFound
	}

	limit, offset := pageBounds(page, size)

	jobs, total, err := s.jobs.ListByRecruiter(ctx, rec.ID, limit, offset)
	if err != nil {
		return nil, err
	}

	out := dto.NewJobPage(jobs, total, page, limit)

	return &out, nil
}

func (s *JobService) ownedJob(ctx context.Context, userID, jobID string) (*domain.Job, error) {
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

	return job, nil
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
