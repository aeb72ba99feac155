package db_models

import "github.com/google/uuid"

// Timeline event kinds.
const (
	EventApplied             = "applied"
	EventStageChange         = "stage-change"
	EventNoteAdded           = "note-added"
	EventAssessmentSubmitted = "assessment-submitted"
)

// TimelineEvent is one entry in a candidate's history. The event timestamp
// is BaseModel.CreatedAt.
type TimelineEvent struct {
	BaseModel
	CandidateID uuid.UUID `gorm:"type:uuid;index"`
	Event       string
	Notes       string
}
