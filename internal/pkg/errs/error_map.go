package errs

import "net/http"

// errorMap registers every error code with its client message and HTTP
// status. A zero Status means http.StatusBadRequest.
var errorMap = map[int]CustomError{
	// 1xxx: request parsing and validation
	ErrValidation:           {Code: ErrValidation, Message: "Validation error"},
	ErrMissingFields:        {Code: ErrMissingFields, Message: "Missing required fields"},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Message: "Unsupported request format"},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Message: "Invalid request body"},
	ErrRateLimited:          {Code: ErrRateLimited, Message: "Too many requests, please try again later", Status: http.StatusTooManyRequests},

	// 2xxx: user business logic
	ErrEmailExists:         {Code: ErrEmailExists, Message: "User with this email already exists"},
	ErrUserNotCreated:      {Code: ErrUserNotCreated, Message: "User not created"},
	ErrIncorrectPassword:   {Code: ErrIncorrectPassword, Message: "Incorrect password"},
	ErrUserNotFound:        {Code: ErrUserNotFound, Message: "User not found"},
	ErrMissingUserID:       {Code: ErrMissingUserID, Message: "Missing User Id"},
	ErrInvalidUserIDFormat: {Code: ErrInvalidUserIDFormat, Message: "Invalid User ID format"},
	ErrInvalidUserID:       {Code: ErrInvalidUserID, Message: "Invalid user ID"},
	ErrPasswordViaPatch:    {Code: ErrPasswordViaPatch, Message: "Password cannot be updated through this route, consider PUT"},

	// 3xxx: authentication
	ErrUnauthorized:     {Code: ErrUnauthorized, Message: "Unauthorized", Status: http.StatusUnauthorized},
	ErrAuthUserNotFound: {Code: ErrAuthUserNotFound, Message: "User Not Found", Status: http.StatusUnauthorized},

	// 5xxx: internal
	ErrInternal: {Code: ErrInternal, Message: "Internal server error", Status: http.StatusInternalServerError},
}
