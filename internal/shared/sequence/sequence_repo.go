package sequence

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repository serves the max-existing-plus-one id convention the dashboard
// clients rely on: user ids and project ids are plain integers counted up
// from a fixed floor (1000). A unique index on the target column turns a
// concurrent double-allocation into a constraint error instead of a
// silently duplicated id.
type Repository interface {
	// NextValue returns max(column)+1, or floor+1 when the table is empty.
	NextValue(ctx context.Context, table, column string, floor int) (int, error)
	// MaxValue returns max(column), or floor when the table is empty.
	MaxValue(ctx context.Context, table, column string, floor int) (int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// table and column are always compile-time constants supplied by the calling
// module, never request input.
func (r *repository) NextValue(ctx context.Context, table, column string, floor int) (int, error) {
	var next int
	err := r.db.WithContext(ctx).
		Raw(fmt.Sprintf("SELECT COALESCE(MAX(%s), ?) + 1 FROM %s", column, table), floor).
		Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

func (r *repository) MaxValue(ctx context.Context, table, column string, floor int) (int, error) {
	var max int
	err := r.db.WithContext(ctx).
		Raw(fmt.Sprintf("SELECT COALESCE(MAX(%s), ?) FROM %s", column, table), floor).
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max, nil
}
