package response_models

type CandidateResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Stage string `json:"stage"`
	JobID string `json:"jobId"`
}

type CandidateListResponse struct {
	Data  []CandidateResponse `json:"data"`
	Total int64               `json:"total"`
}

type TimelineEventResponse struct {
	ID        string `json:"id"`
	Event     string `json:"event"`
	Notes     string `json:"notes,omitempty"`
	Timestamp int64  `json:"timestamp"`
}
