package services

import (
	"context"

	"talentflow/internal/models/db_models"
	"talentflow/internal/models/request_models"
	"talentflow/internal/models/response_models"
	"talentflow/internal/repositories"
	"talentflow/pkg/utils"
)

type JobServiceInterface interface {
	ListJobs(ctx context.Context, status string, search string, page int, pageSize int) (*response_models.JobListResponse, error)
	GetJob(ctx context.Context, id string) (*response_models.JobResponse, error)
	CreateJob(ctx context.Context, req request_models.CreateJobRequest) (*response_models.JobResponse, error)
	UpdateJob(ctx context.Context, id string, req request_models.UpdateJobRequest) (*response_models.JobResponse, error)
	ReorderJobs(ctx context.Context, req request_models.ReorderJobsRequest) error
}

type JobService struct {
	jobRepo repositories.JobRepositoryInterface
}

func NewJobService(jobRepo repositories.JobRepositoryInterface) JobServiceInterface {
	return &JobService{jobRepo: jobRepo}
}

func (s *JobService) ListJobs(ctx context.Context, status string, search string, page int, pageSize int) (*response_models.JobListResponse, error) {
	jobs, total, err := s.jobRepo.List(ctx, status, search, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		responses = append(responses, toJobResponse(job))
	}
	return &response_models.JobListResponse{Data: responses, Total: total}, nil
}

func (s *JobService) GetJob(ctx context.Context, id string) (*response_models.JobResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if job == nil {
		return nil, utils.ErrJobNotFound
	}
	resp := toJobResponse(*job)
	return &resp, nil
}

func (s *JobService) CreateJob(ctx context.Context, req request_models.CreateJobRequest) (*response_models.JobResponse, error) {
	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Title)
	}

	existing, err := s.jobRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrSlugTaken
	}

	// New jobs go to the end of the board.
	count, err := s.jobRepo.Count(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	job := db_models.Job{
		Title:  req.Title,
		Slug:   slug,
		Status: db_models.JobStatusActive,
		Tags:   req.Tags,
		Order:  int(count),
	}
	if err := s.jobRepo.Create(ctx, &job); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toJobResponse(job)
	return &resp, nil
}

func (s *JobService) UpdateJob(ctx context.Context, id string, req request_models.UpdateJobRequest) (*response_models.JobResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if job == nil {
		return nil, utils.ErrJobNotFound
	}

	if req.Slug != nil && *req.Slug != job.Slug {
		existing, err := s.jobRepo.GetBySlug(ctx, *req.Slug)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if existing != nil {
			return nil, utils.ErrSlugTaken
		}
		job.Slug = *req.Slug
	}
	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Status != nil {
		if *req.Status != db_models.JobStatusActive && *req.Status != db_models.JobStatusArchive {
			return nil, utils.ErrInvalidStatus
		}
		job.Status = *req.Status
	}
	if req.Tags != nil {
		job.Tags = req.Tags
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := toJobResponse(*job)
	return &resp, nil
}

func (s *JobService) ReorderJobs(ctx context.Context, req request_models.ReorderJobsRequest) error {
	orders := make(map[string]int, len(req.Jobs))
	for _, j := range req.Jobs {
		orders[j.ID] = j.Order
	}
	if err := s.jobRepo.Reorder(ctx, orders); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toJobResponse(job db_models.Job) response_models.JobResponse {
	return response_models.JobResponse{
		ID:     job.ID.String(),
		Title:  job.Title,
		Slug:   job.Slug,
		Status: job.Status,
		Tags:   job.Tags,
		Order:  job.Order,
	}
}
