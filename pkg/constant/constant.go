package constant

const (
	RoleAdmin     = "ADMIN"
	RoleRecruiter = "RECRUITER"
	RoleJobSeeker = "JOB_SEEKER"

	TokenTypeBearer = "Bearer"
	BearerPrefix    = "Bearer "

	DefaultPageSize = 10
	MaxPageSize     = 100

	DefaultSalaryCurrency = "INR"
	DefaultVacancies      = 1

	DefaultAdminUsername = "admin"
	DefaultAdminEmail    = "admin@jobportal.com"
	DefaultAdminPassword = "admin123"
)
