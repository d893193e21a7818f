package lead

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, row *Lead) error
	FindAll(ctx context.Context) ([]Lead, error)
	UpdateStatus(ctx context.Context, id uint, to string) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, row *Lead) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *gormRepository) FindAll(ctx context.Context) ([]Lead, error) {
	var rows []Lead
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

// UpdateStatus reports the number of rows actually changed; moving a
// contact to its current status counts as zero.
func (r *gormRepository) UpdateStatus(ctx context.Context, id uint, to string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Lead{}).
		Where("id = ? AND status <> ?", id, to).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *gormRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Lead{}, id)
	return res.RowsAffected, res.Error
}
