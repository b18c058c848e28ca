package dto

import (
	"time"

	"github.com/jobportal/api/internal/job/domain"
)

type JobRequest struct {
	Title               string     `json:"title" validate:"required,max=200"`
	Description         string     `json:"description" validate:"required"`
	Requirements        string     `json:"requirements"`
	Skills              string     `json:"skills"`
	Location            string     `json:"location" validate:"omitempty,max=200"`
	JobType             string     `json:"jobType" validate:"omitempty,max=50"`
	ExperienceLevel     string     `json:"experienceLevel" validate:"omitempty,max=50"`
	MinSalary           *int64     `json:"minSalary" validate:"omitempty,gte=0"`
	MaxSalary           *int64     `json:"maxSalary" validate:"omitempty,gte=0"`
	SalaryCurrency      string     `json:"salaryCurrency" validate:"omitempty,max=10"`
	Vacancies           *int       `json:"vacancies" validate:"omitempty,gte=1"`
	ApplicationDeadline *time.Time `json:"applicationDeadline"`
	IsRemote            *bool      `json:"isRemote"`
}

// JobUpdateRequest carries only the fields being changed.
type JobUpdateRequest struct {
	Title               *string    `json:"title" validate:"omitempty,max=200"`
	Description         *string    `json:"description"`
	Requirements        *string    `json:"requirements"`
	Skills              *string    `json:"skills"`
	Location            *string    `json:"location" validate:"omitempty,max=200"`
	JobType             *string    `json:"jobType" validate:"omitempty,max=50"`
	ExperienceLevel     *string    `json:"experienceLevel" validate:"omitempty,max=50"`
	MinSalary           *int64     `json:"minSalary" validate:"omitempty,gte=0"`
	MaxSalary           *int64     `json:"maxSalary" validate:"omitempty,gte=0"`
	SalaryCurrency      *string    `json:"salaryCurrency" validate:"omitempty,max=10"`
	Vacancies           *int       `json:"vacancies" validate:"omitempty,gte=1"`
	ApplicationDeadline *time.Time `json:"applicationDeadline"`
	IsRemote            *bool      `json:"isRemote"`
}

type SearchRequest struct {
	Keyword         string `query:"keyword"`
	Location        string `query:"location"`
	JobType         string `query:"jobType"`
	ExperienceLevel string `query:"experienceLevel"`
	Page            int    `query:"page"`
	Size            int    `query:"size"`
}

type JobOutput struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Requirements        string     `json:"requirements,omitempty"`
	Skills              string     `json:"skills,omitempty"`
	Location            string     `json:"location,omitempty"`
	JobType             string     `json:"jobType,omitempty"`
	ExperienceLevel     string     `json:"experienceLevel,omitempty"`
	MinSalary           *int64     `json:"minSalary,omitempty"`
	MaxSalary           *int64     `json:"maxSalary,omitempty"`
	SalaryCurrency      string     `json:"salaryCurrency"`
	Vacancies           int        `json:"vacancies"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
	IsActive            bool       `json:"isActive"`
	IsRemote            bool       `json:"isRemote"`
	ViewsCount          int64      `json:"viewsCount"`
	ApplicationsCount   int64      `json:"applicationsCount"`
	RecruiterID         string     `json:"recruiterId"`
	CompanyName         string     `json:"companyName,omitempty"`
	CompanyLogo         string     `json:"companyLogo,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

type JobPage struct {
	Jobs  []JobOutput `json:"jobs"`
	Total int         `json:"total"`
	Page  int         `json:"page"`
	Size  int         `json:"size"`
}

func NewJobOutput(j *domain.Job) JobOutput {
	return JobOutput{
		ID:                  j.ID,
		Title:               j.Title,
		Description:         j.Description,
		Requirements:        j.Requirements,
		Skills:              j.Skills,
		Location:            j.Location,
		JobType:             j.JobType,
		ExperienceLevel:     j.ExperienceLevel,
		MinSalary:           j.MinSalary,
		MaxSalary:           j.MaxSalary,
		SalaryCurrency:      j.SalaryCurrency,
		Vacancies:           j.Vacancies,
		ApplicationDeadline: j.ApplicationDeadline,
		IsActive:            j.IsActive,
		IsRemote:            j.IsRemote,
		ViewsCount:          j.ViewsCount,
		ApplicationsCount:   j.ApplicationsCount,
		RecruiterID:         j.RecruiterID,
		CompanyName:         j.CompanyName,
		CompanyLogo:         j.CompanyLogo,
		CreatedAt:           j.CreatedAt,
		UpdatedAt:           j.UpdatedAt,
	}
}

func NewJobPage(jobs []domain.Job, total, page, size int) JobPage {
	out := make([]JobOutput, 0, len(jobs))
	for i := range jobs {
		out = append(out, NewJobOutput(&jobs[i]))
	}

	return JobPage{Jobs: out, Total: total, Page: page, Size: size}
}
