package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"talentflow/internal/models/db_models"
	"talentflow/internal/models/request_models"
	"talentflow/internal/models/response_models"
	"talentflow/internal/repositories"
	"talentflow/pkg/assessment"
	"talentflow/pkg/memcache"
	"talentflow/pkg/utils"
)

// draftTTL bounds how long a half-filled form survives without activity.
const draftTTL = 24 * time.Hour

type AssessmentServiceInterface interface {
	GetAssessment(ctx context.Context, jobID string) (*response_models.AssessmentResponse, error)
	PutAssessment(ctx context.Context, jobID string, req request_models.PutAssessmentRequest) (*response_models.AssessmentResponse, error)
	DeleteAssessment(ctx context.Context, jobID string) error
	EditAssessment(ctx context.Context, jobID string, req request_models.EditAssessmentRequest) (*response_models.AssessmentResponse, error)
	Preview(ctx context.Context, jobID string, answers assessment.Answers) (*response_models.PreviewResponse, error)
	Submit(ctx context.Context, jobID string, req request_models.SubmitAssessmentRequest) (*response_models.SubmitResponse, error)
	SaveDraft(ctx context.Context, jobID string, candidateID string, answers assessment.Answers) error
	GetDraft(ctx context.Context, jobID string, candidateID string) (assessment.Answers, error)
}

type AssessmentService struct {
	assessmentRepo repositories.AssessmentRepositoryInterface
	jobRepo        repositories.JobRepositoryInterface
	candidateRepo  repositories.CandidateRepositoryInterface
	timelineRepo   repositories.TimelineRepositoryInterface
	drafts         memcache.DraftStore
	editor         *assessment.Editor
}

func NewAssessmentService(
	assessmentRepo repositories.AssessmentRepositoryInterface,
	jobRepo repositories.JobRepositoryInterface,
	candidateRepo repositories.CandidateRepositoryInterface,
	timelineRepo repositories.TimelineRepositoryInterface,
	drafts memcache.DraftStore,
) AssessmentServiceInterface {
	return &AssessmentService{
		assessmentRepo: assessmentRepo,
		jobRepo:        jobRepo,
		candidateRepo:  candidateRepo,
		timelineRepo:   timelineRepo,
		drafts:         drafts,
		editor:         assessment.NewEditor(),
	}
}

func (s *AssessmentService) GetAssessment(ctx context.Context, jobID string) (*response_models.AssessmentResponse, error) {
	record, err := s.assessmentRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if record == nil {
		return nil, utils.ErrAssessmentNotFound
	}
	return toAssessmentResponse(record), nil
}

func (s *AssessmentService) PutAssessment(ctx context.Context, jobID string, req request_models.PutAssessmentRequest) (*response_models.AssessmentResponse, error) {
	jobUUID, err := s.requireJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	record := &db_models.Assessment{
		JobID: jobUUID,
		Document: assessment.Assessment{
			JobID:    jobID,
			Title:    req.Title,
			Sections: req.Sections,
		},
	}
	if err := s.assessmentRepo.Upsert(ctx, record); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toAssessmentResponse(record), nil
}

func (s *AssessmentService) DeleteAssessment(ctx context.Context, jobID string) error {
	if err := s.assessmentRepo.DeleteByJobID(ctx, jobID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// EditAssessment runs one structural edit through the schema editor: load
// the stored document, apply, store the result. Editing a job with no
// assessment yet starts from an empty untitled document, so the builder
// never needs a separate create step.
func (s *AssessmentService) EditAssessment(ctx context.Context, jobID string, req request_models.EditAssessmentRequest) (*response_models.AssessmentResponse, error) {
	jobUUID, err := s.requireJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	record, err := s.assessmentRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if record == nil {
		record = &db_models.Assessment{
			JobID:    jobUUID,
			Document: assessment.Assessment{JobID: jobID, Title: "Untitled Assessment", Sections: []assessment.Section{}},
		}
	}

	op, err := toEditorOp(req)
	if err != nil {
		return nil, err
	}

	record.Document = s.editor.Apply(record.Document, op)
	if err := s.assessmentRepo.Upsert(ctx, record); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toAssessmentResponse(record), nil
}

// Preview renders the stored document against the supplied answers; this is
// the builder's live preview pane and the candidate runtime's re-render on
// every answer change.
func (s *AssessmentService) Preview(ctx context.Context, jobID string, answers assessment.Answers) (*response_models.PreviewResponse, error) {
	record, err := s.assessmentRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if record == nil {
		return nil, utils.ErrAssessmentNotFound
	}

	plans := assessment.Render(record.Document, answers)
	return &response_models.PreviewResponse{Plans: plans, Valid: plansValid(plans)}, nil
}

func (s *AssessmentService) Submit(ctx context.Context, jobID string, req request_models.SubmitAssessmentRequest) (*response_models.SubmitResponse, error) {
	record, err := s.assessmentRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if record == nil {
		return nil, utils.ErrAssessmentNotFound
	}

	candidate, err := s.candidateRepo.GetByID(ctx, req.CandidateID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if candidate == nil {
		return nil, utils.ErrCandidateNotFound
	}

	answers := req.Answers
	if answers == nil {
		answers = assessment.Answers{}
	}

	plans := assessment.Render(record.Document, answers)
	if !plansValid(plans) {
		return &response_models.SubmitResponse{Plans: plans, Accepted: false}, nil
	}

	response := &db_models.AssessmentResponse{
		AssessmentID: record.ID,
		CandidateID:  candidate.ID,
		Answers:      answers,
	}
	if err := s.assessmentRepo.SaveResponse(ctx, response); err != nil {
		return nil, utils.ErrDatabaseError
	}

	event := db_models.TimelineEvent{
		CandidateID: candidate.ID,
		Event:       db_models.EventAssessmentSubmitted,
		Notes:       record.Document.Title,
	}
	_ = s.timelineRepo.Append(ctx, &event)

	// The draft is done with once the submission landed.
	s.drafts.Consume(jobID, req.CandidateID)

	return &response_models.SubmitResponse{ResponseID: response.ID.String(), Accepted: true}, nil
}

func (s *AssessmentService) SaveDraft(ctx context.Context, jobID string, candidateID string, answers assessment.Answers) error {
	if _, err := s.requireJob(ctx, jobID); err != nil {
		return err
	}
	s.drafts.Set(jobID, candidateID, answers, draftTTL)
	return nil
}

func (s *AssessmentService) GetDraft(ctx context.Context, jobID string, candidateID string) (assessment.Answers, error) {
	answers, ok := s.drafts.Peek(jobID, candidateID)
	if !ok {
		return assessment.Answers{}, nil
	}
	return answers, nil
}

func (s *AssessmentService) requireJob(ctx context.Context, jobID string) (uuid.UUID, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if job == nil {
		return uuid.Nil, utils.ErrJobNotFound
	}
	return job.ID, nil
}

func toEditorOp(req request_models.EditAssessmentRequest) (assessment.Op, error) {
	switch req.Op {
	case request_models.OpAddSection:
		return assessment.AddSection{}, nil
	case request_models.OpRemoveSection:
		return assessment.RemoveSection{SectionID: req.SectionID}, nil
	case request_models.OpRenameSection:
		return assessment.RenameSection{SectionID: req.SectionID, Title: req.Title}, nil
	case request_models.OpAddQuestion:
		return assessment.AddQuestion{SectionID: req.SectionID}, nil
	case request_models.OpRemoveQuestion:
		return assessment.RemoveQuestion{SectionID: req.SectionID, QuestionID: req.QuestionID}, nil
	case request_models.OpUpdateQuestion:
		patch := assessment.QuestionPatch{}
		if req.Patch != nil {
			patch = *req.Patch
		}
		return assessment.UpdateQuestion{SectionID: req.SectionID, QuestionID: req.QuestionID, Patch: patch}, nil
	default:
		return nil, utils.ErrInvalidEditOp
	}
}

func plansValid(plans []assessment.FieldPlan) bool {
	for _, p := range plans {
		if p.Error != "" {
			return false
		}
	}
	return true
}

func toAssessmentResponse(record *db_models.Assessment) *response_models.AssessmentResponse {
	return &response_models.AssessmentResponse{
		ID:       record.ID.String(),
		JobID:    record.JobID.String(),
		Document: record.Document,
	}
}
