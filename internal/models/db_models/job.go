package db_models

import "github.com/lib/pq"

const (
	JobStatusActive  = "active"
	JobStatusArchive = "archive"
)

type Job struct {
	BaseModel
	Title  string
	Slug   string         `gorm:"uniqueIndex"`
	Status string         `gorm:"index;default:active"`
	Tags   pq.StringArray `gorm:"type:text[]"`
	// "order" is reserved in SQL, store under display_order
	Order int `gorm:"column:display_order;index"`

	Candidates  []Candidate
	Assessments []Assessment
}
