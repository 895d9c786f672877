package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnavailable indicates that a required dependency (document store, mail relay)
// is not configured or not reachable. Handlers translate it to 503.
var ErrUnavailable = errors.New("service unavailable")

// ErrUnauthorized indicates that the caller's credentials are missing or invalid.
var ErrUnauthorized = errors.New("unauthorized")
