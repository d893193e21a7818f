package transaction

import "time"

// TypeReceivedLegacy is a misspelling that exists in historical data; every
// aggregation counts it together with TypeReceived.
const (
	TypeReceived       = "received"
	TypeReceivedLegacy = "recieved"
	TypeSent           = "sent"
)

type Transaction struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	Type        string    `gorm:"column:type;type:varchar(10);not null;check:type IN ('received','recieved','sent')" json:"type"`
	Category    string    `gorm:"column:category;not null" json:"category"`
	Subcategory string    `gorm:"column:subcategory;not null" json:"subcategory"`
	Description string    `gorm:"column:description;not null" json:"description"`
	To          string    `gorm:"column:recipient;not null" json:"to"`
	Amount      float64   `gorm:"column:amount;not null" json:"amount"`
	Date        time.Time `gorm:"column:date;type:timestamptz;not null" json:"date"`
}

func (Transaction) TableName() string {
	return "transactions"
}
