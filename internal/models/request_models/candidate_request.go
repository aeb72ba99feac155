package request_models

type CreateCandidateRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	JobID string `json:"jobId" binding:"required"`
}

type UpdateCandidateRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Stage *string `json:"stage,omitempty"`
}

type AddNoteRequest struct {
	Notes string `json:"notes" binding:"required"`
}
