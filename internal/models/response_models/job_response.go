package response_models

type JobResponse struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Slug   string   `json:"slug"`
	Status string   `json:"status"`
	Tags   []string `json:"tags"`
	Order  int      `json:"order"`
}

type JobListResponse struct {
	Data  []JobResponse `json:"data"`
	Total int64         `json:"total"`
}
