package project

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, p *Project) error
	FindAll(ctx context.Context) ([]Project, error)
	FindByProjectID(ctx context.Context, projectID int) (*Project, error)
	// Replace updates the project row and swaps its document set for
	// p.Documents in one transaction.
	Replace(ctx context.Context, p *Project) error
	// MarkCompleted flips status for a not-yet-completed project and reports
	// how many rows changed; zero means missing or already completed.
	MarkCompleted(ctx context.Context, projectID int) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Project, error) {
	var rows []Project
	err := r.db.WithContext(ctx).
		Preload("Documents").
		Order("project_id").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByProjectID(ctx context.Context, projectID int) (*Project, error) {
	var p Project
	err := r.db.WithContext(ctx).
		Preload("Documents").
		First(&p, "project_id = ?", projectID).Error
	return &p, err
}

func (r *repository) Replace(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_row_id = ?", p.ID).Delete(&ProjectDocument{}).Error; err != nil {
			return err
		}
		for i := range p.Documents {
			p.Documents[i].ID = 0
			p.Documents[i].ProjectRowID = p.ID
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(p).Error
	})
}

func (r *repository) MarkCompleted(ctx context.Context, projectID int) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Project{}).
		Where("project_id = ? AND status <> ?", projectID, StatusCompleted).
		Update("status", StatusCompleted)
	return res.RowsAffected, res.Error
}
