package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talentflow/internal/models/request_models"
	"talentflow/internal/services"
	"talentflow/pkg/utils"
)

type CandidatesController struct {
	candidateService services.CandidateServiceInterface
}

func NewCandidatesController(candidateService services.CandidateServiceInterface) *CandidatesController {
	return &CandidatesController{candidateService: candidateService}
}

// ListCandidates godoc
// @Summary List candidates
// @Description Paginated candidate list; the kanban board groups by stage client-side
// @Tags Candidates
// @Param jobId query string false "Filter by job"
// @Param stage query string false "Filter by pipeline stage"
// @Param search query string false "Name or email search"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(50)
// @Success 200 {object} utils.APIResponse
// @Router /candidates [get]
func (cc *CandidatesController) ListCandidates(c *gin.Context) {
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	candidates, err := cc.candidateService.ListCandidates(
		c.Request.Context(),
		c.Query("jobId"),
		c.Query("stage"),
		c.Query("search"),
		page, pageSize,
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, candidates, "Candidates fetched successfully")
}

// GetCandidate godoc
// @Summary Get a candidate
// @Tags Candidates
// @Param id path string true "Candidate ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /candidates/{id} [get]
func (cc *CandidatesController) GetCandidate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Candidate ID is required")
		return
	}

	candidate, err := cc.candidateService.GetCandidate(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, candidate, "Candidate fetched successfully")
}

// CreateCandidate godoc
// @Summary Create a candidate
// @Description New candidates enter the pipeline at the applied stage
// @Tags Candidates
// @Accept json
// @Param request body request_models.CreateCandidateRequest true "Candidate payload"
// @Success 201 {object} utils.APIResponse
// @Router /candidates [post]
func (cc *CandidatesController) CreateCandidate(c *gin.Context) {
	var req request_models.CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	candidate, err := cc.candidateService.CreateCandidate(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, candidate, "Candidate created successfully")
}

// UpdateCandidate godoc
// @Summary Update a candidate
// @Description Stage moves append a stage-change event to the timeline
// @Tags Candidates
// @Accept json
// @Param id path string true "Candidate ID"
// @Param request body request_models.UpdateCandidateRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Router /candidates/{id} [patch]
func (cc *CandidatesController) UpdateCandidate(c *gin.Context) {
	id := c.Param("id")

	var req request_models.UpdateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	candidate, err := cc.candidateService.UpdateCandidate(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, candidate, "Candidate updated successfully")
}

// AddNote godoc
// @Summary Add a note to a candidate's timeline
// @Tags Candidates
// @Accept json
// @Param id path string true "Candidate ID"
// @Param request body request_models.AddNoteRequest true "Note payload"
// @Success 200 {object} utils.APIResponse
// @Router /candidates/{id}/notes [post]
func (cc *CandidatesController) AddNote(c *gin.Context) {
	id := c.Param("id")

	var req request_models.AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := cc.candidateService.AddNote(c.Request.Context(), id, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Note added successfully")
}

// GetTimeline godoc
// @Summary Get a candidate's timeline
// @Tags Candidates
// @Param id path string true "Candidate ID"
// @Success 200 {object} utils.APIResponse
// @Router /candidates/{id}/timeline [get]
func (cc *CandidatesController) GetTimeline(c *gin.Context) {
	id := c.Param("id")

	events, err := cc.candidateService.GetTimeline(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, events, "Timeline fetched successfully")
}
