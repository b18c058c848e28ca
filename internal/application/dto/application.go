package dto

import (
	"time"

	"github.com/jobportal/api/internal/application/domain"
)

type ApplicationRequest struct {
	JobID       string `json:"jobId" validate:"required"`
	CoverLetter string `json:"coverLetter"`
	ResumeURL   string `json:"resumeUrl" validate:"omitempty,url,max=255"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

type ApplicationOutput struct {
	ID            string    `json:"id"`
	JobID         string    `json:"jobId"`
	JobTitle      string    `json:"jobTitle,omitempty"`
	CompanyName   string    `json:"companyName,omitempty"`
	UserID        string    `json:"userId"`
	ApplicantName string    `json:"applicantName,omitempty"`
	CoverLetter   string    `json:"coverLetter,omitempty"`
	ResumeURL     string    `json:"resumeUrl,omitempty"`
	Status        string    `json:"status"`
	AppliedAt     time.Time `json:"appliedAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type ApplicationPage struct {
	Applications []ApplicationOutput `json:"applications"`
	Total        int                 `json:"total"`
	Page         int                 `json:"page"`
	Size         int                 `json:"size"`
}

func NewApplicationOutput(a *domain.Application) ApplicationOutput {
	return ApplicationOutput{
		ID:            a.ID,
		JobID:         a.JobID,
		JobTitle:      a.JobTitle,
		CompanyName:   a.CompanyName,
		UserID:        a.UserID,
		ApplicantName: a.ApplicantName,
		CoverLetter:   a.CoverLetter,
		ResumeURL:     a.ResumeURL,
		Status:        a.Status,
		AppliedAt:     a.AppliedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func NewApplicationPage(apps []domain.Application, total, page, size int) ApplicationPage {
	out := make([]ApplicationOutput, 0, len(apps))
	for i := range apps {
		out = append(out, NewApplicationOutput(&apps[i]))
	}

	return ApplicationPage{Applications: out, Total: total, Page: page, Size: size}
}
