package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Context keys
	ContextKeySubjectSID = "subject_sid"
	ContextKeyRole       = "role"

	// Roles carried in JWT claims
	RoleAdmin = "admin"
	RoleStaff = "staff"

	// DefaultCountryCode is prepended to validated 10-digit local phone numbers.
	DefaultCountryCode = "+91"
)
