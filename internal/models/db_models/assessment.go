package db_models

import (
	"github.com/google/uuid"

	"talentflow/pkg/assessment"
)

// Assessment persists one authored document per job. The document itself is
// stored whole as JSONB; the schema editor and interpreter only ever see the
// decoded assessment.Assessment value.
type Assessment struct {
	BaseModel
	JobID    uuid.UUID             `gorm:"type:uuid;uniqueIndex"`
	Document assessment.Assessment `gorm:"serializer:json;type:jsonb"`
}

// AssessmentResponse is a candidate's submitted answer set for an
// assessment, stored after the interpreter accepted it.
type AssessmentResponse struct {
	BaseModel
	AssessmentID uuid.UUID          `gorm:"type:uuid;index"`
	CandidateID  uuid.UUID          `gorm:"type:uuid;index"`
	Answers      assessment.Answers `gorm:"serializer:json;type:jsonb"`
}
