package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"talentflow/internal/models/db_models"
	"talentflow/internal/models/request_models"
	"talentflow/internal/models/response_models"
	"talentflow/internal/repositories"
	"talentflow/pkg/utils"
)

type CandidateServiceInterface interface {
	ListCandidates(ctx context.Context, jobID string, stage string, search string, page int, pageSize int) (*response_models.CandidateListResponse, error)
	GetCandidate(ctx context.Context, id string) (*response_models.CandidateResponse, error)
	CreateCandidate(ctx context.Context, req request_models.CreateCandidateRequest) (*response_models.CandidateResponse, error)
	UpdateCandidate(ctx context.Context, id string, req request_models.UpdateCandidateRequest) (*response_models.CandidateResponse, error)
	AddNote(ctx context.Context, id string, req request_models.AddNoteRequest) error
	GetTimeline(ctx context.Context, id string) ([]response_models.TimelineEventResponse, error)
}

type CandidateService struct {
	candidateRepo repositories.CandidateRepositoryInterface
	timelineRepo  repositories.TimelineRepositoryInterface
}

func NewCandidateService(
	candidateRepo repositories.CandidateRepositoryInterface,
	timelineRepo repositories.TimelineRepositoryInterface,
) CandidateServiceInterface {
	return &CandidateService{
		candidateRepo: candidateRepo,
		timelineRepo:  timelineRepo,
	}
}

func (s *CandidateService) ListCandidates(ctx context.Context, jobID string, stage string, search string, page int, pageSize int) (*response_models.CandidateListResponse, error) {
	if stage != "" && !db_models.IsValidStage(stage) {
		return nil, utils.ErrInvalidStage
	}

	candidates, total, err := s.candidateRepo.List(ctx, jobID, stage, search, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		responses = append(responses, toCandidateResponse(c))
	}
	return &response_models.CandidateListResponse{Data: responses, Total: total}, nil
}

func (s *CandidateService) GetCandidate(ctx context.Context, id string) (*response_models.CandidateResponse, error) {
	candidate, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if candidate == nil {
		return nil, utils.ErrCandidateNotFound
	}
	resp := toCandidateResponse(*candidate)
	return &resp, nil
}

func (s *CandidateService) CreateCandidate(ctx context.Context, req request_models.CreateCandidateRequest) (*response_models.CandidateResponse, error) {
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return nil, utils.ErrJobNotFound
	}

	candidate := db_models.Candidate{
		Name:  req.Name,
		Email: req.Email,
		Stage: db_models.StageApplied,
		JobID: jobID,
	}
	if err := s.candidateRepo.Create(ctx, &candidate); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.appendEvent(ctx, candidate.ID, db_models.EventApplied, "")

	resp := toCandidateResponse(candidate)
	return &resp, nil
}

func (s *CandidateService) UpdateCandidate(ctx context.Context, id string, req request_models.UpdateCandidateRequest) (*response_models.CandidateResponse, error) {
	candidate, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if candidate == nil {
		return nil, utils.ErrCandidateNotFound
	}

	if req.Name != nil {
		candidate.Name = *req.Name
	}
	if req.Email != nil {
		candidate.Email = *req.Email
	}

	var stageNote string
	if req.Stage != nil && *req.Stage != candidate.Stage {
		if !db_models.IsValidStage(*req.Stage) {
			return nil, utils.ErrInvalidStage
		}
		stageNote = fmt.Sprintf("%s → %s", candidate.Stage, *req.Stage)
		candidate.Stage = *req.Stage
	}

	if err := s.candidateRepo.Update(ctx, candidate); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Stage moves show up on the candidate's timeline.
	if stageNote != "" {
		s.appendEvent(ctx, candidate.ID, db_models.EventStageChange, stageNote)
	}

	resp := toCandidateResponse(*candidate)
	return &resp, nil
}

func (s *CandidateService) AddNote(ctx context.Context, id string, req request_models.AddNoteRequest) error {
	candidate, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if candidate == nil {
		return utils.ErrCandidateNotFound
	}

	event := db_models.TimelineEvent{
		CandidateID: candidate.ID,
		Event:       db_models.EventNoteAdded,
		Notes:       req.Notes,
	}
	if err := s.timelineRepo.Append(ctx, &event); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CandidateService) GetTimeline(ctx context.Context, id string) ([]response_models.TimelineEventResponse, error) {
	candidate, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if candidate == nil {
		return nil, utils.ErrCandidateNotFound
	}

	events, err := s.timelineRepo.ListByCandidate(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.TimelineEventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, response_models.TimelineEventResponse{
			ID:        e.ID.String(),
			Event:     e.Event,
			Notes:     e.Notes,
			Timestamp: e.CreatedAt,
		})
	}
	return responses, nil
}

// appendEvent logs the timeline write but never fails the caller: losing a
// history entry is preferable to failing the stage move.
func (s *CandidateService) appendEvent(ctx context.Context, candidateID uuid.UUID, event string, notes string) {
	e := db_models.TimelineEvent{CandidateID: candidateID, Event: event, Notes: notes}
	if err := s.timelineRepo.Append(ctx, &e); err != nil {
		log.Printf("failed to append timeline event: %v", err)
	}
}

func toCandidateResponse(c db_models.Candidate) response_models.CandidateResponse {
	return response_models.CandidateResponse{
		ID:    c.ID.String(),
		Name:  c.Name,
		Email: c.Email,
		Stage: c.Stage,
		JobID: c.JobID.String(),
	}
}
