package projecterrors

import (
	"net/http"

	"bizdash/internal/shared/apperror"
)

var (
	ErrInvalidProjectID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid project ID",
		http.StatusBadRequest,
	)
	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project not found",
		http.StatusNotFound,
	)
	// ErrNotFoundOrCompleted is deliberate: marking an already-completed
	// project is reported as a failure, not an idempotent success.
	ErrNotFoundOrCompleted = apperror.New(
		apperror.CodeNotFound,
		"Project not found or already completed",
		http.StatusNotFound,
	)
	ErrInvalidProjectData = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid projectData payload",
		http.StatusBadRequest,
	)
)
