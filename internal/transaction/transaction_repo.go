package transaction

import (
	"context"

	"gorm.io/gorm"
)

// MonthlyTypeTotal is one group of the (year, month, lowercased type)
// aggregation.
type MonthlyTypeTotal struct {
	Year  int
	Month int
	Type  string
	Total float64
}

type CategoryTotal struct {
	Name  string
	Value float64
}

type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	FindAll(ctx context.Context) ([]Transaction, error)
	MonthlyTotalsByType(ctx context.Context) ([]MonthlyTypeTotal, error)
	ExpenseTotalsByCategory(ctx context.Context) ([]CategoryTotal, error)
	// ReceivedAndSentTotals sums amounts over the whole table, counting the
	// legacy misspelling as received.
	ReceivedAndSentTotals(ctx context.Context) (received, sent float64, err error)
	// FindBalancesInWindow selects rollup rows overlapping the window using
	// the three-clause year/month OR match, ordered by (year, month).
	FindBalancesInWindow(ctx context.Context, startYear, startMonth, endYear, endMonth int) ([]MonthlyBalance, error)
	InsertMonthlyBalance(ctx context.Context, b *MonthlyBalance) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Transaction, error) {
	var rows []Transaction
	err := r.db.WithContext(ctx).Order("date").Find(&rows).Error
	return rows, err
}

func (r *repository) MonthlyTotalsByType(ctx context.Context) ([]MonthlyTypeTotal, error) {
	var rows []MonthlyTypeTotal
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXTRACT(YEAR FROM date)::int  AS year,
		       EXTRACT(MONTH FROM date)::int AS month,
		       LOWER(type)                   AS type,
		       SUM(amount)                   AS total
		FROM transactions
		GROUP BY 1, 2, 3
		ORDER BY 1, 2
	`).Scan(&rows).Error
	return rows, err
}

func (r *repository) ExpenseTotalsByCategory(ctx context.Context) ([]CategoryTotal, error) {
	var rows []CategoryTotal
	err := r.db.WithContext(ctx).Raw(`
		SELECT category AS name, SUM(amount) AS value
		FROM transactions
		WHERE type = ?
		GROUP BY category
	`, TypeSent).Scan(&rows).Error
	return rows, err
}

func (r *repository) ReceivedAndSentTotals(ctx context.Context) (float64, float64, error) {
	var row struct {
		TotalReceived float64
		TotalSent     float64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(CASE WHEN type IN (?, ?) THEN amount ELSE 0 END), 0) AS total_received,
		       COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0)       AS total_sent
		FROM transactions
	`, TypeReceived, TypeReceivedLegacy, TypeSent).Scan(&row).Error
	return row.TotalReceived, row.TotalSent, err
}

func (r *repository) FindBalancesInWindow(ctx context.Context, startYear, startMonth, endYear, endMonth int) ([]MonthlyBalance, error) {
	var rows []MonthlyBalance
	err := r.db.WithContext(ctx).
		Where("(year = ? AND month >= ?) OR (year = ? AND month <= ?) OR (year > ? AND year < ?)",
			startYear, startMonth, endYear, endMonth, startYear, endYear).
		Order("year, month").
		Find(&rows).Error
	return rows, err
}

func (r *repository) InsertMonthlyBalance(ctx context.Context, b *MonthlyBalance) error {
	return r.db.WithContext(ctx).Create(b).Error
}
