package transaction

// MonthlyBalance is a precomputed per-month rollup. Live transaction writes
// do not maintain it; the only writer is the cmd/seed tool, so summary reads
// report zeros until it has run.
type MonthlyBalance struct {
	ID             uint    `gorm:"column:id;primaryKey" json:"-"`
	Year           int     `gorm:"column:year;not null;uniqueIndex:uq_monthly_balance" json:"year"`
	Month          int     `gorm:"column:month;not null;uniqueIndex:uq_monthly_balance" json:"month"`
	OpeningBalance float64 `gorm:"column:opening_balance;not null" json:"openingBalance"`
	ClosingBalance float64 `gorm:"column:closing_balance;not null" json:"closingBalance"`
	TotalReceived  float64 `gorm:"column:total_received;not null" json:"totalReceived"`
	TotalSent      float64 `gorm:"column:total_sent;not null" json:"totalSent"`
}

func (MonthlyBalance) TableName() string {
	return "monthly_balances"
}
