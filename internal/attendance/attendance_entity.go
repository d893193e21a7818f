package attendance

import "time"

// Status values are stored exactly as submitted; the present-count query
// matches the capitalized form only.
const StatusPresent = "Present"

type AttendanceRecord struct {
	ID       uint      `gorm:"column:id;primaryKey" json:"id"`
	UserID   int       `gorm:"column:user_id;not null;index:idx_attendance_user_date" json:"userId"`
	Date     time.Time `gorm:"column:date;type:timestamptz;not null;index:idx_attendance_user_date" json:"date"`
	Status   string    `gorm:"column:status;type:varchar(10);not null" json:"status"`
	UserName string    `gorm:"column:user_name" json:"userName,omitempty"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}
