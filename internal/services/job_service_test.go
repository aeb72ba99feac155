package services

import (
	"context"
	"testing"

	"talentflow/internal/models/db_models"
	"talentflow/internal/models/request_models"
	"talentflow/pkg/utils"
)

func strPtr(s string) *string { return &s }

func TestCreateJobDerivesSlug(t *testing.T) {
	repo := &fakeJobRepo{jobs: map[string]db_models.Job{}}
	s := NewJobService(repo)

	job, err := s.CreateJob(context.Background(), request_models.CreateJobRequest{Title: "Senior Backend Engineer"})
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}
	if job.Slug != "senior-backend-engineer" {
		t.Errorf("slug = %q", job.Slug)
	}
	if job.Status != db_models.JobStatusActive {
		t.Errorf("status = %q, want active", job.Status)
	}
	if job.Order != 0 {
		t.Errorf("first job should take board position 0, got %d", job.Order)
	}
}

func TestCreateJobRejectsDuplicateSlug(t *testing.T) {
	repo := &fakeJobRepo{jobs: map[string]db_models.Job{}}
	s := NewJobService(repo)
	ctx := context.Background()

	if _, err := s.CreateJob(ctx, request_models.CreateJobRequest{Title: "Designer", Slug: "designer"}); err != nil {
		t.Fatalf("CreateJob: %v", err)
	}
	_, err := s.CreateJob(ctx, request_models.CreateJobRequest{Title: "Another Designer", Slug: "designer"})
	if err != utils.ErrSlugTaken {
		t.Errorf("err = %v, want ErrSlugTaken", err)
	}
}

func TestUpdateJobArchives(t *testing.T) {
	repo := &fakeJobRepo{jobs: map[string]db_models.Job{}}
	s := NewJobService(repo)
	ctx := context.Background()

	created, err := s.CreateJob(ctx, request_models.CreateJobRequest{Title: "Analyst"})
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}

	updated, err := s.UpdateJob(ctx, created.ID, request_models.UpdateJobRequest{Status: strPtr(db_models.JobStatusArchive)})
	if err != nil {
		t.Fatalf("UpdateJob: %v", err)
	}
	if updated.Status != db_models.JobStatusArchive {
		t.Errorf("status = %q, want archive", updated.Status)
	}
}

func TestUpdateJobRejectsUnknownStatus(t *testing.T) {
	repo := &fakeJobRepo{jobs: map[string]db_models.Job{}}
	s := NewJobService(repo)
	ctx := context.Background()

	created, err := s.CreateJob(ctx, request_models.CreateJobRequest{Title: "Analyst"})
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}

	if _, err := s.UpdateJob(ctx, created.ID, request_models.UpdateJobRequest{Status: strPtr("paused")}); err == nil {
		t.Error("unknown status accepted")
	}
}

func TestUpdateJobNotFound(t *testing.T) {
	repo := &fakeJobRepo{jobs: map[string]db_models.Job{}}
	s := NewJobService(repo)

	_, err := s.UpdateJob(context.Background(), "missing", request_models.UpdateJobRequest{Title: strPtr("x")})
	if err != utils.ErrJobNotFound {
		t.Errorf("err = %v, want ErrJobNotFound", err)
	}
}

func TestReorderJobs(t *testing.T) {
	repo := &fakeJobRepo{jobs: map[string]db_models.Job{}}
	s := NewJobService(repo)
	ctx := context.Background()

	a, _ := s.CreateJob(ctx, request_models.CreateJobRequest{Title: "A"})
	b, _ := s.CreateJob(ctx, request_models.CreateJobRequest{Title: "B"})

	err := s.ReorderJobs(ctx, request_models.ReorderJobsRequest{Jobs: []request_models.JobOrder{
		{ID: a.ID, Order: 1},
		{ID: b.ID, Order: 0},
	}})
	if err != nil {
		t.Fatalf("ReorderJobs: %v", err)
	}

	moved, err := s.GetJob(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetJob: %v", err)
	}
	if moved.Order != 1 {
		t.Errorf("order = %d, want 1", moved.Order)
	}
}
