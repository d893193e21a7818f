package employee

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByUserID(ctx context.Context, userID int) (*Employee, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Preload("Documents").
		Order("user_id").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByUserID(ctx context.Context, userID int) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Preload("Documents").
		First(&e, "user_id = ?", userID).Error
	return &e, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Employee{}).Count(&count).Error
	return count, err
}
