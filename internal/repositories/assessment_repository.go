package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"talentflow/internal/models/db_models"
)

type AssessmentRepositoryInterface interface {
	GetByJobID(ctx context.Context, jobID string) (*db_models.Assessment, error)
	Upsert(ctx context.Context, record *db_models.Assessment) error
	BulkCreate(ctx context.Context, records []db_models.Assessment) error
	DeleteByJobID(ctx context.Context, jobID string) error
	SaveResponse(ctx context.Context, response *db_models.AssessmentResponse) error
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepositoryInterface {
	return &AssessmentRepository{db: db}
}

type AssessmentRepository struct {
	db *gorm.DB
}

func (r *AssessmentRepository) GetByJobID(ctx context.Context, jobID string) (*db_models.Assessment, error) {
	var record db_models.Assessment
	err := r.db.WithContext(ctx).Where("job_id = ?", jobID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// Upsert keeps the one-document-per-job shape: an insert that hits the
// job_id unique index turns into an update of the stored document.
func (r *AssessmentRepository) Upsert(ctx context.Context, record *db_models.Assessment) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "job_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
	}).Create(record).Error
}

func (r *AssessmentRepository) BulkCreate(ctx context.Context, records []db_models.Assessment) error {
	return r.db.WithContext(ctx).CreateInBatches(records, 50).Error
}

func (r *AssessmentRepository) DeleteByJobID(ctx context.Context, jobID string) error {
	return r.db.WithContext(ctx).Where("job_id = ?", jobID).Delete(&db_models.Assessment{}).Error
}

func (r *AssessmentRepository) SaveResponse(ctx context.Context, response *db_models.AssessmentResponse) error {
	return r.db.WithContext(ctx).Create(response).Error
}
