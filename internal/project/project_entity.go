package project

import "time"

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// projectIDFloor makes the first assigned ProjectId 1001.
const projectIDFloor = 1000

type Project struct {
	ID           uint              `gorm:"column:id;primaryKey" json:"id"`
	ProjectID    int               `gorm:"column:project_id;not null;uniqueIndex:uq_project_project_id" json:"ProjectId"`
	Name         string            `gorm:"column:name;not null" json:"name"`
	Requirement  string            `gorm:"column:requirement" json:"requirement"`
	ProjectValue string            `gorm:"column:project_value" json:"projectValue"`
	AssignTeam   string            `gorm:"column:assign_team" json:"assignTeam"`
	Sector       string            `gorm:"column:sector" json:"sector"`
	Date         time.Time         `gorm:"column:date;type:date" json:"date"`
	Status       string            `gorm:"column:status;type:varchar(20);not null;default:active;check:status IN ('active','completed')" json:"status"`
	Documents    []ProjectDocument `gorm:"foreignKey:ProjectRowID" json:"documents"`
	CreatedAt    time.Time         `gorm:"column:created_at" json:"-"`
	UpdatedAt    time.Time         `gorm:"column:updated_at" json:"-"`
}

func (Project) TableName() string {
	return "projects"
}

type ProjectDocument struct {
	ID           uint   `gorm:"column:id;primaryKey" json:"-"`
	ProjectRowID uint   `gorm:"column:project_row_id;not null;index" json:"-"`
	Filename     string `gorm:"column:filename;not null" json:"filename"`
	OriginalName string `gorm:"column:original_name;not null" json:"originalName"`
	Path         string `gorm:"column:path;not null" json:"path"`
	Label        string `gorm:"column:label" json:"label,omitempty"`
}

func (ProjectDocument) TableName() string {
	return "project_documents"
}
