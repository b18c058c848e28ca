package domain

import (
	"time"

	"github.com/jobportal/api/pkg/constant"
)

type User struct {
	ID            string
	Username      string
	Email         string
	PasswordHash  string
	FirstName     string
	LastName      string
	PhoneNumber   string
	Role          string
	Enabled       bool
	EmailVerified bool
	LastLoginAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type RefreshToken struct {
	ID         string
	UserID     string
	Token      string
	DeviceInfo string
	IPAddress  string
	ExpiresAt  time.Time
	CreatedAt  time.Time
	Revoked    bool
}

func (rt *RefreshToken) IsExpired(now time.Time) bool {
	return now.After(rt.ExpiresAt)
}

// ValidRole reports whether name is one of the known role names.
func ValidRole(name string) bool {
	switch name {
	case constant.RoleAdmin, constant.RoleRecruiter, constant.RoleJobSeeker:
		return true
	}
	return false
}
