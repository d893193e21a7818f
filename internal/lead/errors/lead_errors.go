package leaderrors

import (
	"net/http"

	"bizdash/internal/shared/apperror"
)

var (
	ErrInvalidContactID = apperror.New(apperror.CodeInvalidInput, "Invalid contact id", http.StatusBadRequest)

	ErrContactNotFound = apperror.New(apperror.CodeNotFound, "Contact not found", http.StatusNotFound)

	// ErrStatusNotUpdated also covers a transition to the status the
	// contact already holds, which modifies nothing.
	ErrStatusNotUpdated = apperror.New(apperror.CodeNotFound, "Contact not found or status not updated", http.StatusNotFound)
)
