package dto

import (
	"time"

	"github.com/jobportal/api/internal/recruiter/domain"
)

type RecruiterInput struct {
	CompanyName        string `json:"companyName" validate:"required,max=200"`
	CompanyWebsite     string `json:"companyWebsite" validate:"omitempty,url,max=255"`
	CompanyLogo        string `json:"companyLogo" validate:"omitempty,max=255"`
	CompanyDescription string `json:"companyDescription"`
	Designation        string `json:"designation" validate:"omitempty,max=100"`
	Location           string `json:"location" validate:"omitempty,max=200"`
}

type RecruiterOutput struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	CompanyName        string    `json:"companyName"`
	CompanyWebsite     string    `json:"companyWebsite,omitempty"`
	CompanyLogo        string    `json:"companyLogo,omitempty"`
	CompanyDescription string    `json:"companyDescription,omitempty"`
	Designation        string    `json:"designation,omitempty"`
	Location           string    `json:"location,omitempty"`
	Verified           bool      `json:"verified"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func NewRecruiterOutput(r *domain.Recruiter) RecruiterOutput {
	return RecruiterOutput{
		ID:                 r.ID,
		UserID:             r.UserID,
		CompanyName:        r.CompanyName,
		CompanyWebsite:     r.CompanyWebsite,
		CompanyLogo:        r.CompanyLogo,
		CompanyDescription: r.CompanyDescription,
		Designation:        r.Designation,
		Location:           r.Location,
		Verified:           r.Verified,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}
