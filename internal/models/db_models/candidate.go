package db_models

import "github.com/google/uuid"

// Pipeline stages, in board order.
const (
	StageApplied  = "applied"
	StageScreen   = "screen"
	StageTech     = "tech"
	StageOffer    = "offer"
	StageHired    = "hired"
	StageRejected = "rejected"
)

var Stages = []string{StageApplied, StageScreen, StageTech, StageOffer, StageHired, StageRejected}

func IsValidStage(stage string) bool {
	for _, s := range Stages {
		if s == stage {
			return true
		}
	}
	return false
}

type Candidate struct {
	BaseModel
	Name  string
	Email string    `gorm:"index"`
	Stage string    `gorm:"index;default:applied"`
	JobID uuid.UUID `gorm:"type:uuid;index"`

	Timeline []TimelineEvent `gorm:"foreignKey:CandidateID"`
}
