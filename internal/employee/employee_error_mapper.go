package employee

import (
	"errors"
	"net/http"

	employeeerrors "bizdash/internal/employee/errors"
	"bizdash/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates storage failures into the API taxonomy:
// missing rows become 404s, constraint violations become the 500 with
// nested schema detail the callers display, everything else a plain 500.
func mapRepositoryError(err error, message string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return apperror.Wrap(err, apperror.CodeSchemaViolation, message, http.StatusInternalServerError).
			WithDetails(map[string]any{
				"code":       pgErr.Code,
				"constraint": pgErr.ConstraintName,
				"column":     pgErr.ColumnName,
				"detail":     pgErr.Detail,
				"message":    pgErr.Message,
			})
	}

	return apperror.Wrap(err, apperror.CodeInternalError, message, http.StatusInternalServerError)
}
