package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the wire-level view of an error: the status to write plus the
// message, underlying error text and optional detail that go into the body.
type HTTPError struct {
	Status    int
	Code      string
	Message   string
	ErrorText string
	Details   any
}

func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		h := HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}
		if appErr.Err != nil {
			h.ErrorText = appErr.Err.Error()
		}
		return h
	}
	return HTTPError{
		Status:    http.StatusInternalServerError,
		Code:      CodeInternalError,
		Message:   "An unexpected error occurred",
		ErrorText: err.Error(),
	}
}
