package employee

import "time"

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

type Employee struct {
	ID            uint       `gorm:"column:id;primaryKey" json:"id"`
	UserID        int        `gorm:"column:user_id;not null;uniqueIndex:uq_employee_user_id" json:"userId"`
	FirstName     string     `gorm:"column:first_name;not null" json:"firstName"`
	LastName      string     `gorm:"column:last_name;not null" json:"lastName"`
	DateOfBirth   time.Time  `gorm:"column:date_of_birth;type:date;not null" json:"dateOfBirth"`
	Gender        string     `gorm:"column:gender;type:varchar(10);not null;check:gender IN ('Male','Female','Other')" json:"gender"`
	ContactNumber string     `gorm:"column:contact_number;not null" json:"contactNumber"`
	Address       string     `gorm:"column:address;not null" json:"address"`
	Position      string     `gorm:"column:position;not null" json:"position"`
	Department    string     `gorm:"column:department;not null" json:"department"`
	HireDate      time.Time  `gorm:"column:hire_date;type:date" json:"hireDate"`
	Status        string     `gorm:"column:status;type:varchar(10);not null;default:present;check:status IN ('present','absent')" json:"status"`
	Documents     []Document `gorm:"foreignKey:EmployeeRowID" json:"documents"`
	CreatedAt     time.Time  `gorm:"column:created_at" json:"-"`
	UpdatedAt     time.Time  `gorm:"column:updated_at" json:"-"`
}

func (Employee) TableName() string {
	return "employees"
}

type Document struct {
	ID            uint   `gorm:"column:id;primaryKey" json:"-"`
	EmployeeRowID uint   `gorm:"column:employee_row_id;not null;index" json:"-"`
	Filename      string `gorm:"column:filename;not null" json:"filename"`
	OriginalName  string `gorm:"column:original_name;not null" json:"originalName"`
	Path          string `gorm:"column:path;not null" json:"path"`
}

func (Document) TableName() string {
	return "employee_documents"
}

// FullName is the denormalized display name carried onto attendance records.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
