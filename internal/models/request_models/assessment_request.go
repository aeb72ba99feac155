package request_models

import "talentflow/pkg/assessment"

type PutAssessmentRequest struct {
	Title    string               `json:"title" binding:"required"`
	Sections []assessment.Section `json:"sections"`
}

// EditAssessmentRequest carries one structural edit op for the schema
// editor. Op selects which fields are read; unknown ops are rejected by the
// service.
type EditAssessmentRequest struct {
	Op         string                    `json:"op" binding:"required"`
	SectionID  string                    `json:"sectionId,omitempty"`
	QuestionID string                    `json:"questionId,omitempty"`
	Title      string                    `json:"title,omitempty"`
	Patch      *assessment.QuestionPatch `json:"patch,omitempty"`
}

// Op values accepted by EditAssessmentRequest.
const (
	OpAddSection     = "add-section"
	OpRemoveSection  = "remove-section"
	OpRenameSection  = "rename-section"
	OpAddQuestion    = "add-question"
	OpRemoveQuestion = "remove-question"
	OpUpdateQuestion = "update-question"
)

type PreviewAssessmentRequest struct {
	Answers assessment.Answers `json:"answers"`
}

type SubmitAssessmentRequest struct {
	CandidateID string             `json:"candidateId" binding:"required"`
	Answers     assessment.Answers `json:"answers"`
}

type SaveDraftRequest struct {
	Answers assessment.Answers `json:"answers" binding:"required"`
}
