package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdomain "github.com/jobportal/api/internal/auth/domain"
	"github.com/jobportal/api/internal/dashboard/domain"
	"github.com/jobportal/api/internal/dashboard/service"
	apperr "github.com/jobportal/api/internal/errors"
	"github.com/jobportal/api/internal/mocks"
	recruiterdomain "github.com/jobportal/api/internal/recruiter/domain"
	"github.com/jobportal/api/pkg/constant"
)

type dashboardFixture struct {
	svc            *service.DashboardService
	mockStats      *mocks.MockStatsRepository
	mockUsers      *mocks.MockUserRepository
	mockRecruiters *mocks.MockRecruiterRepository
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &dashboardFixture{
		mockStats:      mocks.NewMockStatsRepository(ctrl),
		mockUsers:      mocks.NewMockUserRepository(ctrl),
		mockRecruiters: mocks.NewMockRecruiterRepository(ctrl),
	}
	f.svc = service.NewDashboardService(f.mockStats, f.mockUsers, f.mockRecruiters)

	return f
}

func TestDashboardService_AdminStats(t *testing.T) {
	f := newDashboardFixture(t)

	stats := &domain.AdminStats{
		UsersByRole:          map[string]int64{constant.RoleJobSeeker: 12, constant.RoleRecruiter: 3},
		TotalJobs:            7,
		ActiveJobs:           5,
		ApplicationsByStatus: map[string]int64{"APPLIED": 9},
		NewUsersLast7Days:    4,
	}

	// Mock expectations
	f.mockStats.EXPECT().AdminStats(gomock.Any()).Return(stats, nil)

	out, err := f.svc.AdminStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), out.TotalJobs)
	assert.Equal(t, int64(12), out.UsersByRole[constant.RoleJobSeeker])
}

func TestDashboardService_RecruiterStats(t *testing.T) {
	f := newDashboardFixture(t)

	t.Run("success", func(t *testing.T) {
		rec := &recruiterdomain.Recruiter{ID: "rec-1", UserID: "user-1"}
		stats := &domain.RecruiterStats{TotalJobs: 2, ActiveJobs: 1, TotalViews: 40}

		f.mockRecruiters.EXPECT().GetByUserID(gomock.Any(), rec.UserID).Return(rec, nil)
		f.mockStats.EXPECT().RecruiterStats(gomock.Any(), rec.ID).Return(stats, nil)

		out, err := f.svc.RecruiterStats(context.Background(), rec.UserID)
		require.NoError(t, err)
		assert.Equal(t, int64(40), out.TotalViews)
	})

	t.Run("no profile", func(t *testing.T) {
		f.mockRecruiters.EXPECT().GetByUserID(gomock.Any(), "user-2").Return(nil, nil)

		out, err := f.svc.RecruiterStats(context.Background(), "user-2")
		assert.ErrorIs(t, err, apperr.ErrRecruiterNotFound)
		assert.Nil(t, out)
	})
}

func TestDashboardService_ListUsers(t *testing.T) {
	f := newDashboardFixture(t)

	users := []authdomain.User{{ID: "user-1", Username: "johndoe"}}

	// Mock expectations: oversized page size is clamped before it hits the store.
	f.mockUsers.EXPECT().SearchByName(gomock.Any(), "john", constant.MaxPageSize, 0).Return(users, 1, nil)

	page, err := f.svc.ListUsers(context.Background(), "john", 0, 9999)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Users, 1)
	assert.Equal(t, "johndoe", page.Users[0].Username)
}

func TestDashboardService_SetUserEnabled(t *testing.T) {
	f := newDashboardFixture(t)

	t.Run("success", func(t *testing.T) {
		user := &authdomain.User{ID: "user-1", Enabled: true}

		f.mockUsers.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
		f.mockUsers.EXPECT().SetEnabled(gomock.Any(), user.ID, false).Return(nil)

		err := f.svc.SetUserEnabled(context.Background(), user.ID, false)
		assert.NoError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		f.mockUsers.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

		err := f.svc.SetUserEnabled(context.Background(), "missing", true)
		assert.ErrorIs(t, err, apperr.ErrUserNotFound)
	})
}
