package attendanceerrors

import (
	"net/http"

	"bizdash/internal/shared/apperror"
)

var (
	ErrExpectedArray = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid input: expected an array of attendance records",
		http.StatusBadRequest,
	)
	ErrNoValidRecords = apperror.New(
		apperror.CodeInvalidInput,
		"No valid attendance records found",
		http.StatusBadRequest,
	)
	ErrInvalidBulkData = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid bulk attendance data",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid year/month",
		http.StatusBadRequest,
	)
)
