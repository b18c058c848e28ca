package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobportal/api/internal/application/domain"
	"github.com/jobportal/api/internal/application/dto"
	"github.com/jobportal/api/internal/application/service"
	authdomain "github.com/jobportal/api/internal/auth/domain"
	apperr "github.com/jobportal/api/internal/errors"
	jobdomain "github.com/jobportal/api/internal/job/domain"
	"github.com/jobportal/api/internal/mocks"
	"github.com/jobportal/api/pkg/constant"
)

type applicationFixture struct {
	svc       *service.ApplicationService
	mockApps  *mocks.MockApplicationRepository
	mockJobs  *mocks.MockJobRepository
	mockUsers *mocks.MockUserRepository
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &applicationFixture{
		mockApps:  mocks.NewMockApplicationRepository(ctrl),
		mockJobs:  mocks.NewMockJobRepository(ctrl),
		mockUsers: mocks.NewMockUserRepository(ctrl),
	}
	f.svc = service.NewApplicationService(f.mockApps, f.mockJobs, f.mockUsers)

	return f
}

func seeker() *authdomain.User {
	return &authdomain.User{
		ID:        "user-1",
		Username:  "johndoe",
		FirstName: "John",
		LastName:  "Doe",
		Role:      constant.RoleJobSeeker,
		Enabled:   true,
	}
}

func activeJob() *jobdomain.Job {
	return &jobdomain.Job{
		ID:              "job-1",
		Title:           "Backend Engineer",
		CompanyName:     "Acme Corp",
		RecruiterUserID: "recruiter-user",
		IsActive:        true,
	}
}

func TestApplicationService_Apply_Success(t *testing.T) {
	f := newApplicationFixture(t)

	user := seeker()
	job := activeJob()
	req := dto.ApplicationRequest{JobID: job.ID, CoverLetter: "Hello"}

	// Mock expectations
	f.mockUsers.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
	f.mockJobs.EXPECT().GetByID(gomock.Any(), job.ID).Return(job, nil)
	f.mockApps.EXPECT().ExistsByUserAndJob(gomock.Any(), user.ID, job.ID).Return(false, nil)
	f.mockApps.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, app *domain.Application) error {
			assert.Equal(t, domain.StatusApplied, app.Status)
			assert.Equal(t, job.ID, app.JobID)
			assert.Equal(t, user.ID, app.UserID)
			return nil
		})
	f.mockJobs.EXPECT().IncrementApplications(gomock.Any(), job.ID, 1).Return(nil)

	out, err := f.svc.Apply(context.Background(), user.ID, req)

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, domain.StatusApplied, out.Status)
	assert.Equal(t, job.Title, out.JobTitle)
	assert.Equal(t, "John Doe", out.ApplicantName)
}

func TestApplicationService_Apply_NotJobSeeker(t *testing.T) {
	f := newApplicationFixture(t)

	user := seeker()
	user.Role = constant.RoleRecruiter

	// Mock expectations
	f.mockUsers.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

	out, err := f.svc.Apply(context.Background(), user.ID, dto.ApplicationRequest{JobID: "job-1"})

	assert.ErrorIs(t, err, apperr.ErrOnlyJobSeekers)
	assert.Nil(t, out)
}

func TestApplicationService_Apply_InactiveJob(t *testing.T) {
	f := newApplicationFixture(t)

	user := seeker()
	job := activeJob()
	job.IsActive = false

	// Mock expectations
	f.mockUsers.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
	f.mockJobs.EXPECT().GetByID(gomock.Any(), job.ID).Return(job, nil)

	out, err := f.svc.Apply(context.Background(), user.ID, dto.ApplicationRequest{JobID: job.ID})

	assert.ErrorIs(t, err, apperr.ErrJobInactive)
	assert.Nil(t, out)
}

func TestApplicationService_Apply_Duplicate(t *testing.T) {
	f := newApplicationFixture(t)

	user := seeker()
	job := activeJob()

	// Mock expectations
	f.mockUsers.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
	f.mockJobs.EXPECT().GetByID(gomock.Any(), job.ID).Return(job, nil)
	f.mockApps.EXPECT().ExistsByUserAndJob(gomock.Any(), user.ID, job.ID).Return(true, nil)

	out, err := f.svc.Apply(context.Background(), user.ID, dto.ApplicationRequest{JobID: job.ID})

	assert.ErrorIs(t, err, apperr.ErrAlreadyApplied)
	assert.Nil(t, out)
}

func TestApplicationService_Apply_JobNotFound(t *testing.T) {
	f := newApplicationFixture(t)

	user := seeker()

	// Mock expectations
	f.mockUsers.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
	f.mockJobs.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

	out, err := f.svc.Apply(context.Background(), user.ID, dto.ApplicationRequest{JobID: "missing"})

	assert.ErrorIs(t, err, apperr.ErrJobNotFound)
	assert.Nil(t, out)
}

func TestApplicationService_GetByID_Visibility(t *testing.T) {
	f := newApplicationFixture(t)

	app := &domain.Application{
		ID:             "app-1",
		JobID:          "job-1",
		UserID:         "user-1",
		JobOwnerUserID: "recruiter-user",
		Status:         domain.StatusApplied,
		AppliedAt:      time.Now(),
	}

	tests := []struct {
		name    string
		userID  string
		wantErr error
	}{
		{name: "applicant can read", userID: "user-1"},
		{name: "job owner can read", userID: "recruiter-user"},
		{name: "stranger is rejected", userID: "someone-else", wantErr: apperr.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.mockApps.EXPECT().GetByID(gomock.Any(), app.ID).Return(app, nil)

			out, err := f.svc.GetByID(context.Background(), tt.userID, app.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, out)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, app.ID, out.ID)
		})
	}
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	f := newApplicationFixture(t)

	app := &domain.Application{
		ID:             "app-1",
		JobID:          "job-1",
		UserID:         "user-1",
		JobOwnerUserID: "recruiter-user",
		Status:         domain.StatusApplied,
	}

	t.Run("success normalizes case", func(t *testing.T) {
		f.mockApps.EXPECT().GetByID(gomock.Any(), app.ID).Return(app, nil)
		f.mockApps.EXPECT().UpdateStatus(gomock.Any(), app.ID, domain.StatusShortlisted).Return(nil)

		out, err := f.svc.UpdateStatus(context.Background(), "recruiter-user", app.ID, "shortlisted")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusShortlisted, out.Status)
	})

	t.Run("unknown status", func(t *testing.T) {
		out, err := f.svc.UpdateStatus(context.Background(), "recruiter-user", app.ID, "PONDERING")
		assert.ErrorIs(t, err, apperr.ErrInvalidStatus)
		assert.Nil(t, out)
	})

	t.Run("not the job owner", func(t *testing.T) {
		f.mockApps.EXPECT().GetByID(gomock.Any(), app.ID).Return(app, nil)

		out, err := f.svc.UpdateStatus(context.Background(), "user-1", app.ID, domain.StatusRejected)
		assert.ErrorIs(t, err, apperr.ErrForbidden)
		assert.Nil(t, out)
	})
}

func TestApplicationService_Withdraw(t *testing.T) {
	f := newApplicationFixture(t)

	app := &domain.Application{
		ID:     "app-1",
		JobID:  "job-1",
		UserID: "user-1",
	}

	t.Run("success releases the counter", func(t *testing.T) {
		f.mockApps.EXPECT().GetByID(gomock.Any(), app.ID).Return(app, nil)
		f.mockApps.EXPECT().Delete(gomock.Any(), app.ID).Return(nil)
		f.mockJobs.EXPECT().IncrementApplications(gomock.Any(), app.JobID, -1).Return(nil)

		err := f.svc.Withdraw(context.Background(), app.UserID, app.ID)
		assert.NoError(t, err)
	})

	t.Run("not the applicant", func(t *testing.T) {
		f.mockApps.EXPECT().GetByID(gomock.Any(), app.ID).Return(app, nil)

		err := f.svc.Withdraw(context.Background(), "someone-else", app.ID)
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run("not found", func(t *testing.T) {
		f.mockApps.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

		err := f.svc.Withdraw(context.Background(), app.UserID, "missing")
		assert.ErrorIs(t, err, apperr.ErrApplicationNotFound)
	})
}
