package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"talentflow/internal/models/db_models"
)

type JobRepositoryInterface interface {
	Create(ctx context.Context, job *db_models.Job) error
	BulkCreate(ctx context.Context, jobs []db_models.Job) error
	GetByID(ctx context.Context, id string) (*db_models.Job, error)
	GetBySlug(ctx context.Context, slug string) (*db_models.Job, error)
	List(ctx context.Context, status string, search string, page int, pageSize int) ([]db_models.Job, int64, error)
	Update(ctx context.Context, job *db_models.Job) error
	Reorder(ctx context.Context, orders map[string]int) error
	Count(ctx context.Context) (int64, error)
}

func NewJobRepository(db *gorm.DB) JobRepositoryInterface {
	return &JobRepository{db: db}
}

type JobRepository struct {
	db *gorm.DB
}

func (r *JobRepository) Create(ctx context.Context, job *db_models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *JobRepository) BulkCreate(ctx context.Context, jobs []db_models.Job) error {
	return r.db.WithContext(ctx).CreateInBatches(jobs, 100).Error
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (*db_models.Job, error) {
	var job db_models.Job
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepository) GetBySlug(ctx context.Context, slug string) (*db_models.Job, error) {
	var job db_models.Job
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepository) List(ctx context.Context, status string, search string, page int, pageSize int) ([]db_models.Job, int64, error) {
	query := r.db.WithContext(ctx).Model(&db_models.Job{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		query = query.Where("title ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []db_models.Job
	offset := (page - 1) * pageSize
	err := query.Order("display_order").Offset(offset).Limit(pageSize).Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *JobRepository) Update(ctx context.Context, job *db_models.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// Reorder applies a new display order to every listed job in one
// transaction so a failed drag-drop save never leaves the board half moved.
func (r *JobRepository) Reorder(ctx context.Context, orders map[string]int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for id, order := range orders {
			if err := tx.WithContext(ctx).Model(&db_models.Job{}).
				Where("id = ?", id).
				Update("display_order", order).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *JobRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Job{}).Count(&count).Error
	return count, err
}
