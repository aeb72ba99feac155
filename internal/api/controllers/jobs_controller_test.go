package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"talentflow/internal/models/request_models"
	"talentflow/internal/models/response_models"
	"talentflow/pkg/utils"
)

type stubJobService struct {
	listResp   *response_models.JobListResponse
	getResp    *response_models.JobResponse
	createResp *response_models.JobResponse
	updateResp *response_models.JobResponse
	err        error

	reordered *request_models.ReorderJobsRequest
}

func (s *stubJobService) ListJobs(_ context.Context, _ string, _ string, _ int, _ int) (*response_models.JobListResponse, error) {
	return s.listResp, s.err
}

func (s *stubJobService) GetJob(_ context.Context, _ string) (*response_models.JobResponse, error) {
	return s.getResp, s.err
}

func (s *stubJobService) CreateJob(_ context.Context, _ request_models.CreateJobRequest) (*response_models.JobResponse, error) {
	return s.createResp, s.err
}

func (s *stubJobService) UpdateJob(_ context.Context, _ string, _ request_models.UpdateJobRequest) (*response_models.JobResponse, error) {
	return s.updateResp, s.err
}

func (s *stubJobService) ReorderJobs(_ context.Context, req request_models.ReorderJobsRequest) error {
	s.reordered = &req
	return s.err
}

func jobsRouter(svc *stubJobService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	c := NewJobsController(svc)
	r.GET("/jobs", c.ListJobs)
	r.POST("/jobs", c.CreateJob)
	r.PATCH("/jobs/reorder", c.ReorderJobs)
	r.GET("/jobs/:id", c.GetJob)
	r.PATCH("/jobs/:id", c.UpdateJob)
	return r
}

func TestListJobsOK(t *testing.T) {
	svc := &stubJobService{listResp: &response_models.JobListResponse{
		Data:  []response_models.JobResponse{{ID: "1", Title: "Engineer", Slug: "engineer"}},
		Total: 1,
	}}
	r := jobsRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs?status=active&page=1&pageSize=10", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp utils.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("status field = %q", resp.Status)
	}
}

func TestListJobsBadPagination(t *testing.T) {
	r := jobsRouter(&stubJobService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs?page=0", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs?pageSize=500", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateJobConflictOnSlug(t *testing.T) {
	r := jobsRouter(&stubJobService{err: utils.ErrSlugTaken})

	body, _ := json.Marshal(request_models.CreateJobRequest{Title: "Engineer", Slug: "engineer"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/jobs", bytes.NewReader(body)))

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
}

func TestCreateJobRejectsBadPayload(t *testing.T) {
	r := jobsRouter(&stubJobService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/jobs", bytes.NewReader([]byte(`{"slug": 7}`))))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetJobNotFound(t *testing.T) {
	r := jobsRouter(&stubJobService{err: utils.ErrJobNotFound})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs/missing", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestReorderJobsPassesPayload(t *testing.T) {
	svc := &stubJobService{}
	r := jobsRouter(svc)

	body, _ := json.Marshal(request_models.ReorderJobsRequest{Jobs: []request_models.JobOrder{{ID: "a", Order: 2}}})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/jobs/reorder", bytes.NewReader(body)))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if svc.reordered == nil || len(svc.reordered.Jobs) != 1 || svc.reordered.Jobs[0].ID != "a" {
		t.Errorf("service did not receive the reorder payload: %+v", svc.reordered)
	}
}
