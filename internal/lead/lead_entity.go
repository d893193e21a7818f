package lead

import "time"

const (
	StatusLead     = "lead"
	StatusProspect = "prospect"
	StatusClient   = "client"
)

// Lead is a CRM entry moving through the lead -> prospect -> client funnel.
type Lead struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Client    string    `gorm:"not null" json:"client"`
	PIC       string    `gorm:"column:pic" json:"pic"`
	Contact   string    `json:"contact"`
	Sector    string    `json:"sector"`
	APV       string    `gorm:"column:apv" json:"apv"`
	Location  string    `json:"location"`
	Status    string    `gorm:"not null;default:lead;check:status IN ('lead','prospect','client')" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Lead) TableName() string {
	return "leads"
}
