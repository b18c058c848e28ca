package dto

import (
	authdto "github.com/jobportal/api/internal/auth/dto"
	"github.com/jobportal/api/internal/dashboard/domain"
)

type AdminStatsOutput struct {
	UsersByRole          map[string]int64 `json:"usersByRole"`
	TotalJobs            int64            `json:"totalJobs"`
	ActiveJobs           int64            `json:"activeJobs"`
	ApplicationsByStatus map[string]int64 `json:"applicationsByStatus"`
	NewUsersLast7Days    int64            `json:"newUsersLast7Days"`
	NewJobsLast7Days     int64            `json:"newJobsLast7Days"`
}

type RecruiterStatsOutput struct {
	TotalJobs            int64            `json:"totalJobs"`
	ActiveJobs           int64            `json:"activeJobs"`
	TotalViews           int64            `json:"totalViews"`
	ApplicationsByStatus map[string]int64 `json:"applicationsByStatus"`
}

type UserPage struct {
	Users []authdto.UserOutput `json:"users"`
	Total int                  `json:"total"`
	Page  int                  `json:"page"`
	Size  int                  `json:"size"`
}

type SetEnabledRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

func NewAdminStatsOutput(s *domain.AdminStats) AdminStatsOutput {
	return AdminStatsOutput{
		UsersByRole:          s.UsersByRole,
		TotalJobs:            s.TotalJobs,
		ActiveJobs:           s.ActiveJobs,
		ApplicationsByStatus: s.ApplicationsByStatus,
		NewUsersLast7Days:    s.NewUsersLast7Days,
		NewJobsLast7Days:     s.NewJobsLast7Days,
	}
}

func NewRecruiterStatsOutput(s *domain.RecruiterStats) RecruiterStatsOutput {
	return RecruiterStatsOutput{
		TotalJobs:            s.TotalJobs,
		ActiveJobs:           s.ActiveJobs,
		TotalViews:           s.TotalViews,
		ApplicationsByStatus: s.ApplicationsByStatus,
	}
}
