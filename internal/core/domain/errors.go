package domain

import "errors"

// Sentinel errors returned by services and repositories. The API error
// handler maps each to a fixed HTTP status, so services never deal in
// status codes directly.
var (
	// ErrInvalidInput covers missing or malformed request fields, including
	// out-of-range usernames and unknown enum values.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials is returned for every login failure, whether the
	// identifier is unknown or the password does not match. Keeping the two
	// cases indistinguishable prevents account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers every token verification failure: bad signature,
	// malformed payload, wrong algorithm, or expiry in the past.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrForbidden is the authorization policy's denial verdict.
	ErrForbidden = errors.New("admin access required")

	// ErrInvalidReference signals a task write that points at a user or
	// project id with no matching record. Distinct from ErrForbidden: it is
	// an input problem, not a policy denial.
	ErrInvalidReference = errors.New("invalid reference")

	ErrUserExists       = errors.New("email or username already in use")
	ErrUserNotFound     = errors.New("user not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrProjectNotFound  = errors.New("project not found")
	ErrCategoryNotFound = errors.New("category not found")
)
