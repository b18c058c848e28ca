package service

import (
	"context"

	authdomain "github.com/jobportal/api/internal/auth/domain"
	authdto "github.com/jobportal/api/internal/auth/dto"
	"github.com/jobportal/api/internal/dashboard/domain"
	"github.com/jobportal/api/internal/dashboard/dto"
	apperr "github.com/jobportal/api/internal/errors"
	recruiterdomain "github.com/jobportal/api/internal/recruiter/domain"
	"github.com/jobportal/api/pkg/constant"
)

type DashboardService struct {
	stats      domain.StatsRepository
	users      authdomain.UserRepository
	recruiters recruiterdomain.RecruiterRepository
}

func NewDashboardService(stats domain.StatsRepository, users authdomain.UserRepository,
	recruiters recruiterdomain.RecruiterRepository) *DashboardService {
	return &DashboardService{
		stats:      stats,
		users:      users,
		recruiters: recruiters,
	}
}

func (s *DashboardService) AdminStats(ctx context.Context) (*dto.AdminStatsOutput, error) {
	stats, err := s.stats.AdminStats(ctx)
	if err != nil {
		return nil, err
	}

	out := dto.NewAdminStatsOutput(stats)

	return &out, nil
}

func (s *DashboardService) RecruiterStats(ctx context.Context, userID string) (*dto.RecruiterStatsOutput, error) {
	rec, err := s.recruiters.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperr.ErrRecruiterNotFound
	}

	stats, err := s.stats.RecruiterStats(ctx, rec.ID)
	if err != nil {
		return nil, err
	}

	out := dto.NewRecruiterStatsOutput(stats)

	return &out, nil
}

// ListUsers is the admin directory: case-insensitive name search, paginated.
func (s *DashboardService) ListUsers(ctx context.Context, query string, page, size int) (*dto.UserPage, error) {
	if size <= 0 {
		size = constant.DefaultPageSize
	}
	if size > constant.MaxPageSize {
		size = constant.MaxPageSize
	}
	if page < 0 {
		page = 0
	}

	users, total, err := s.users.SearchByName(ctx, query, size, page*size)
	if err != nil {
		return nil, err
	}

	out := make([]authdto.UserOutput, 0, len(users))
	for i := range users {
		out = append(out, authdto.NewUserOutput(&users[i]))
	}

	return &dto.UserPage{Users: out, Total: total, Page: page, Size: size}, nil
}

// SetUserEnabled soft-deactivates or restores an account; rows are never
// hard-deleted.
func (s *DashboardService) SetUserEnabled(ctx context.Context, userID string, enabled bool) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.ErrUserNotFound
	}

	return s.users.SetEnabled(ctx, userID, enabled)
}
