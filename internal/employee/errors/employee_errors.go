package employeeerrors

import (
	"net/http"

	"bizdash/internal/shared/apperror"
)

var (
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid userId: expected an integer",
		http.StatusBadRequest,
	)
	ErrInvalidDateOfBirth = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid dateOfBirth format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid hireDate format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
)
