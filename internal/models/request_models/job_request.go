package request_models

type CreateJobRequest struct {
	Title string   `json:"title" binding:"required"`
	Slug  string   `json:"slug"`
	Tags  []string `json:"tags"`
}

type UpdateJobRequest struct {
	Title  *string  `json:"title,omitempty"`
	Slug   *string  `json:"slug,omitempty"`
	Status *string  `json:"status,omitempty"`
	Tags   []string `json:"tags,omitempty"`
}

type JobOrder struct {
	ID    string `json:"id" binding:"required"`
	Order int    `json:"order"`
}

type ReorderJobsRequest struct {
	Jobs []JobOrder `json:"jobs" binding:"required"`
}
