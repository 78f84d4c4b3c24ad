package constants

const (
	// ContextKeyUserID is the gin context key carrying the authenticated user ID.
	ContextKeyUserID = "user_id"

	MinPasswordLength = 8
	MinUsernameLength = 3
	MaxUsernameLength = 50

	// MaxCategoriesPerUser caps how many categories a single user may own.
	MaxCategoriesPerUser = 10

	DefaultPageSize = 20
	MinPageSize     = 1
	MaxPageSize     = 100
)
