package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"talentflow/internal/models/request_models"
	"talentflow/internal/services"
	"talentflow/pkg/utils"
)

type JobsController struct {
	jobService services.JobServiceInterface
}

func NewJobsController(jobService services.JobServiceInterface) *JobsController {
	return &JobsController{jobService: jobService}
}

// ListJobs godoc
// @Summary List jobs
// @Description Paginated jobs board, ordered by board position
// @Tags Jobs
// @Param status query string false "Filter by status (active|archive)"
// @Param search query string false "Title search"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Router /jobs [get]
func (j *JobsController) ListJobs(c *gin.Context) {
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	status := c.Query("status")
	search := c.Query("search")

	jobs, err := j.jobService.ListJobs(c.Request.Context(), status, search, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, jobs, "Jobs fetched successfully")
}

// GetJob godoc
// @Summary Get a job
// @Tags Jobs
// @Param id path string true "Job ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /jobs/{id} [get]
func (j *JobsController) GetJob(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Job ID is required")
		return
	}

	job, err := j.jobService.GetJob(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, job, "Job fetched successfully")
}

// CreateJob godoc
// @Summary Create a job
// @Description Creates a job at the end of the board; slug must be unique
// @Tags Jobs
// @Accept json
// @Param request body request_models.CreateJobRequest true "Job payload"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /jobs [post]
func (j *JobsController) CreateJob(c *gin.Context) {
	var req request_models.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	job, err := j.jobService.CreateJob(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, job, "Job created successfully")
}

// UpdateJob godoc
// @Summary Update a job
// @Description Patches title, slug, status or tags; archiving is a status patch
// @Tags Jobs
// @Accept json
// @Param id path string true "Job ID"
// @Param request body request_models.UpdateJobRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Router /jobs/{id} [patch]
func (j *JobsController) UpdateJob(c *gin.Context) {
	id := c.Param("id")

	var req request_models.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	job, err := j.jobService.UpdateJob(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, job, "Job updated successfully")
}

// ReorderJobs godoc
// @Summary Reorder the jobs board
// @Description Applies new board positions after a drag-drop, transactionally
// @Tags Jobs
// @Accept json
// @Param request body request_models.ReorderJobsRequest true "New order"
// @Success 200 {object} utils.APIResponse
// @Router /jobs/reorder [patch]
func (j *JobsController) ReorderJobs(c *gin.Context) {
	var req request_models.ReorderJobsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := j.jobService.ReorderJobs(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Order updated successfully")
}

func parsePagination(c *gin.Context) (int, int, bool) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return 0, 0, false
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return 0, 0, false
	}

	return page, pageSize, true
}
