package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"talentflow/internal/models/db_models"
)

type CandidateRepositoryInterface interface {
	Create(ctx context.Context, candidate *db_models.Candidate) error
	BulkCreate(ctx context.Context, candidates []db_models.Candidate) error
	GetByID(ctx context.Context, id string) (*db_models.Candidate, error)
	List(ctx context.Context, jobID string, stage string, search string, page int, pageSize int) ([]db_models.Candidate, int64, error)
	Update(ctx context.Context, candidate *db_models.Candidate) error
}

func NewCandidateRepository(db *gorm.DB) CandidateRepositoryInterface {
	return &CandidateRepository{db: db}
}

type CandidateRepository struct {
	db *gorm.DB
}

func (r *CandidateRepository) Create(ctx context.Context, candidate *db_models.Candidate) error {
	return r.db.WithContext(ctx).Create(candidate).Error
}

func (r *CandidateRepository) BulkCreate(ctx context.Context, candidates []db_models.Candidate) error {
	return r.db.WithContext(ctx).CreateInBatches(candidates, 200).Error
}

func (r *CandidateRepository) GetByID(ctx context.Context, id string) (*db_models.Candidate, error) {
	var candidate db_models.Candidate
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&candidate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &candidate, nil
}

func (r *CandidateRepository) List(ctx context.Context, jobID string, stage string, search string, page int, pageSize int) ([]db_models.Candidate, int64, error) {
	query := r.db.WithContext(ctx).Model(&db_models.Candidate{})
	if jobID != "" {
		query = query.Where("job_id = ?", jobID)
	}
	if stage != "" {
		query = query.Where("stage = ?", stage)
	}
	if search != "" {
		query = query.Where("name ILIKE ? OR email ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var candidates []db_models.Candidate
	offset := (page - 1) * pageSize
	err := query.Order("created_at").Offset(offset).Limit(pageSize).Find(&candidates).Error
	if err != nil {
		return nil, 0, err
	}
	return candidates, total, nil
}

func (r *CandidateRepository) Update(ctx context.Context, candidate *db_models.Candidate) error {
	return r.db.WithContext(ctx).Save(candidate).Error
}
