package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talentflow/internal/models/request_models"
	"talentflow/internal/services"
	"talentflow/pkg/utils"
)

type AssessmentsController struct {
	assessmentService services.AssessmentServiceInterface
}

func NewAssessmentsController(assessmentService services.AssessmentServiceInterface) *AssessmentsController {
	return &AssessmentsController{assessmentService: assessmentService}
}

// GetAssessment godoc
// @Summary Get the assessment for a job
// @Tags Assessments
// @Param jobId path string true "Job ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /jobs/{jobId}/assessment [get]
func (a *AssessmentsController) GetAssessment(c *gin.Context) {
	jobID := c.Param("id")
	if jobID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Job ID is required")
		return
	}

	record, err := a.assessmentService.GetAssessment(c.Request.Context(), jobID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, record, "Assessment fetched successfully")
}

// PutAssessment godoc
// @Summary Store the assessment for a job
// @Description Replaces the whole authored document; creates it when absent
// @Tags Assessments
// @Accept json
// @Param jobId path string true "Job ID"
// @Param request body request_models.PutAssessmentRequest true "Assessment document"
// @Success 200 {object} utils.APIResponse
// @Router /jobs/{jobId}/assessment [put]
func (a *AssessmentsController) PutAssessment(c *gin.Context) {
	jobID := c.Param("id")

	var req request_models.PutAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	record, err := a.assessmentService.PutAssessment(c.Request.Context(), jobID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, record, "Assessment saved successfully")
}

// DeleteAssessment godoc
// @Summary Delete the assessment for a job
// @Tags Assessments
// @Param jobId path string true "Job ID"
// @Success 200 {object} utils.APIResponse
// @Router /jobs/{jobId}/assessment [delete]
func (a *AssessmentsController) DeleteAssessment(c *gin.Context) {
	jobID := c.Param("id")

	if err := a.assessmentService.DeleteAssessment(c.Request.Context(), jobID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Assessment deleted successfully")
}

// EditAssessment godoc
// @Summary Apply one structural edit to the assessment
// @Description Builder edit ops: add/remove/rename section, add/remove/update question
// @Tags Assessments
// @Accept json
// @Param jobId path string true "Job ID"
// @Param request body request_models.EditAssessmentRequest true "Edit operation"
// @Success 200 {object} utils.APIResponse
// @Router /jobs/{jobId}/assessment [patch]
func (a *AssessmentsController) EditAssessment(c *gin.Context) {
	jobID := c.Param("id")

	var req request_models.EditAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	record, err := a.assessmentService.EditAssessment(c.Request.Context(), jobID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, record, "Assessment updated successfully")
}

// PreviewAssessment godoc
// @Summary Render the assessment against a set of answers
// @Description Returns the interpreter's field plans: visibility, input kind, validation errors
// @Tags Assessments
// @Accept json
// @Param jobId path string true "Job ID"
// @Param request body request_models.PreviewAssessmentRequest true "Current answers"
// @Success 200 {object} utils.APIResponse
// @Router /jobs/{jobId}/assessment/preview [post]
func (a *AssessmentsController) PreviewAssessment(c *gin.Context) {
	jobID := c.Param("id")

	var req request_models.PreviewAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	preview, err := a.assessmentService.Preview(c.Request.Context(), jobID, req.Answers)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, preview, "Assessment rendered successfully")
}

// SubmitAssessment godoc
// @Summary Submit a candidate's answers
// @Description Rejects with 422 and the render plan when any visible field fails validation
// @Tags Assessments
// @Accept json
// @Param jobId path string true "Job ID"
// @Param request body request_models.SubmitAssessmentRequest true "Submission"
// @Success 201 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /jobs/{jobId}/assessment/submit [post]
func (a *AssessmentsController) SubmitAssessment(c *gin.Context) {
	jobID := c.Param("id")

	var req request_models.SubmitAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := a.assessmentService.Submit(c.Request.Context(), jobID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if !result.Accepted {
		utils.RespondUnprocessable(c, result, "Submission failed validation")
		return
	}

	utils.RespondCreated(c, result, "Submission accepted")
}

// SaveDraft godoc
// @Summary Save in-progress answers for a candidate
// @Tags Assessments
// @Accept json
// @Param jobId path string true "Job ID"
// @Param candidateId path string true "Candidate ID"
// @Param request body request_models.SaveDraftRequest true "Draft answers"
// @Success 200 {object} utils.APIResponse
// @Router /jobs/{jobId}/assessment/draft/{candidateId} [put]
func (a *AssessmentsController) SaveDraft(c *gin.Context) {
	jobID := c.Param("id")
	candidateID := c.Param("candidateId")

	var req request_models.SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := a.assessmentService.SaveDraft(c.Request.Context(), jobID, candidateID, req.Answers); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Draft saved successfully")
}

// GetDraft godoc
// @Summary Get in-progress answers for a candidate
// @Tags Assessments
// @Param jobId path string true "Job ID"
// @Param candidateId path string true "Candidate ID"
// @Success 200 {object} utils.APIResponse
// @Router /jobs/{jobId}/assessment/draft/{candidateId} [get]
func (a *AssessmentsController) GetDraft(c *gin.Context) {
	jobID := c.Param("id")
	candidateID := c.Param("candidateId")

	answers, err := a.assessmentService.GetDraft(c.Request.Context(), jobID, candidateID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, answers, "Draft fetched successfully")
}
