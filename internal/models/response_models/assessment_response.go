package response_models

import "talentflow/pkg/assessment"

type AssessmentResponse struct {
	ID       string                `json:"id"`
	JobID    string                `json:"jobId"`
	Document assessment.Assessment `json:"document"`
}

// PreviewResponse is the interpreter's render plan for the supplied answers.
type PreviewResponse struct {
	Plans []assessment.FieldPlan `json:"plans"`
	Valid bool                   `json:"valid"`
}

type SubmitResponse struct {
	ResponseID string                 `json:"responseId,omitempty"`
	Plans      []assessment.FieldPlan `json:"plans,omitempty"`
	Accepted   bool                   `json:"accepted"`
}
