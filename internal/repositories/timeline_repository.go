package repositories

import (
	"context"

	"gorm.io/gorm"

	"talentflow/internal/models/db_models"
)

type TimelineRepositoryInterface interface {
	Append(ctx context.Context, event *db_models.TimelineEvent) error
	ListByCandidate(ctx context.Context, candidateID string) ([]db_models.TimelineEvent, error)
}

func NewTimelineRepository(db *gorm.DB) TimelineRepositoryInterface {
	return &TimelineRepository{db: db}
}

type TimelineRepository struct {
	db *gorm.DB
}

func (r *TimelineRepository) Append(ctx context.Context, event *db_models.TimelineEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *TimelineRepository) ListByCandidate(ctx context.Context, candidateID string) ([]db_models.TimelineEvent, error) {
	var events []db_models.TimelineEvent
	err := r.db.WithContext(ctx).
		Where("candidate_id = ?", candidateID).
		Order("created_at").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
