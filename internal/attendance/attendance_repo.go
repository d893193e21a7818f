package attendance

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	InsertMany(ctx context.Context, records []AttendanceRecord) (int64, error)
	// Upsert writes status and userName keyed by (userID, date); resubmitting
	// the same day updates the existing row instead of inserting a new one.
	Upsert(ctx context.Context, userID int, date time.Time, status, userName string) error
	CountPresentBetween(ctx context.Context, start, end time.Time) (int64, error)
	// FindForDay uses the half-open day window: start inclusive, end exclusive.
	FindForDay(ctx context.Context, start, end time.Time) ([]AttendanceRecord, error)
	// FindForMonth is inclusive on both bounds.
	FindForMonth(ctx context.Context, start, end time.Time) ([]AttendanceRecord, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) InsertMany(ctx context.Context, records []AttendanceRecord) (int64, error) {
	res := r.db.WithContext(ctx).Create(&records)
	return res.RowsAffected, res.Error
}

func (r *repository) Upsert(ctx context.Context, userID int, date time.Time, status, userName string) error {
	var rec AttendanceRecord
	return r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Assign(map[string]any{"status": status, "user_name": userName}).
		FirstOrCreate(&rec, AttendanceRecord{UserID: userID, Date: date}).Error
}

func (r *repository) CountPresentBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&AttendanceRecord{}).
		Where("status = ?", StatusPresent).
		Where("date >= ? AND date < ?", start, end).
		Count(&count).Error
	return count, err
}

func (r *repository) FindForDay(ctx context.Context, start, end time.Time) ([]AttendanceRecord, error) {
	var rows []AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", start, end).
		Order("user_id").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindForMonth(ctx context.Context, start, end time.Time) ([]AttendanceRecord, error) {
	var rows []AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("date").
		Find(&rows).Error
	return rows, err
}
