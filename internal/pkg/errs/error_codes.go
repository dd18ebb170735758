package errs

// 1xxx: request parsing and validation
const (
	// ErrValidation indicates a declarative validation rule failed.
	ErrValidation = 1001

	// ErrMissingFields indicates a required body field was absent.
	ErrMissingFields = 1002

	// ErrUnsupportedMediaType indicates a non-JSON Content-Type.
	ErrUnsupportedMediaType = 1003

	// ErrInvalidJSONFormat indicates the body could not be decoded.
	ErrInvalidJSONFormat = 1004

	// ErrRateLimited indicates the per-IP request budget was exceeded.
	ErrRateLimited = 1005
)

// 2xxx: user business logic
const (
	// ErrEmailExists indicates a registration against an email already on file.
	ErrEmailExists = 2001

	// ErrUserNotCreated indicates the store returned no record on create.
	ErrUserNotCreated = 2002

	// ErrIncorrectPassword indicates a login password mismatch.
	ErrIncorrectPassword = 2003

	// ErrUserNotFound indicates the referenced user record does not exist.
	ErrUserNotFound = 2004

	// ErrMissingUserID indicates the lookup route was called without an identifier.
	ErrMissingUserID = 2005

	// ErrInvalidUserIDFormat indicates the identifier is not a well-formed key.
	ErrInvalidUserIDFormat = 2006

	// ErrInvalidUserID indicates the authenticated identity carries a bad key.
	ErrInvalidUserID = 2007

	// ErrPasswordViaPatch indicates a password change attempted on the merge route.
	ErrPasswordViaPatch = 2008
)

// 3xxx: authentication
const (
	// ErrUnauthorized indicates a missing or unverifiable session token.
	ErrUnauthorized = 3001

	// ErrAuthUserNotFound indicates a valid token referencing a deleted user.
	ErrAuthUserNotFound = 3002
)

// 5xxx: internal
const (
	// ErrInternal represents any unclassified server-side failure.
	ErrInternal = 5000
)
