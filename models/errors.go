package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")

	// OperationFailedError is rendered with the http status code 500. It hides
	// the underlying cause from the caller: the cause is logged, not exposed.
	OperationFailedError = errors.New("operation failed")
)

// DB related errors
var ErrIgnoreRollBackError = errors.New("ignore rollback error")

// Church record workflow errors
var (
	ErrChurchNotFound = errors.Wrap(NotFoundError, "church record not found")

	ErrMissingRequiredFields = errors.Wrap(BadParameterError,
		"church name, municipality and description are required")

	ErrInvalidReviewAction = errors.Wrap(BadParameterError, "unknown review action")

	ErrSceneNotFound = errors.Wrap(NotFoundError, "virtual tour scene not found")
)
