package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"ruralplanner/internal/models/db_models"
	"ruralplanner/pkg/utils"
)

type JobRepository interface {
	GetByID(ctx context.Context, id int) (db_models.JobPost, error)
	ListByIDs(ctx context.Context, ids []int) ([]db_models.JobPost, error)
	// SearchByVector returns up to limit jobs ordered by cosine distance.
	// When region is set, rows from that region rank first and nationwide
	// rows only fill the remainder.
	SearchByVector(ctx context.Context, vector pgvector.Vector, region string, limit int) ([]db_models.JobPost, error)
	Upsert(ctx context.Context, job *db_models.JobPost) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) GetByID(ctx context.Context, id int) (db_models.JobPost, error) {
	var job db_models.JobPost
	err := r.db.WithContext(ctx).First(&job, id).Error
	if err == gorm.ErrRecordNotFound {
		return job, utils.ErrJobNotFound
	}
	if err != nil {
		return job, utils.ErrDatabaseError
	}
	return job, nil
}

func (r *jobRepository) ListByIDs(ctx context.Context, ids []int) ([]db_models.JobPost, error) {
	var jobs []db_models.JobPost
	if len(ids) == 0 {
		return jobs, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&jobs).Error; err != nil {
		return nil, utils.ErrDatabaseError
	}
	return jobs, nil
}

const jobSearchQuery = `
	SELECT * FROM jobs
	WHERE embedding IS NOT NULL AND region LIKE ?
	ORDER BY embedding <=> ?
	LIMIT ?
`

const jobSearchFillQuery = `
	SELECT * FROM jobs
	WHERE embedding IS NOT NULL AND id NOT IN ?
	ORDER BY embedding <=> ?
	LIMIT ?
`

const jobSearchAllQuery = `
	SELECT * FROM jobs
	WHERE embedding IS NOT NULL
	ORDER BY embedding <=> ?
	LIMIT ?
`

func (r *jobRepository) SearchByVector(ctx context.Context, vector pgvector.Vector, region string, limit int) ([]db_models.JobPost, error) {
	vecStr := vector.String()

	var jobs []db_models.JobPost
	if region == "" {
		if err := r.db.WithContext(ctx).Raw(jobSearchAllQuery, vecStr, limit).Scan(&jobs).Error; err != nil {
			return nil, utils.ErrDatabaseError
		}
		return jobs, nil
	}

	if err := r.db.WithContext(ctx).Raw(jobSearchQuery, "%"+region+"%", vecStr, limit).Scan(&jobs).Error; err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(jobs) >= limit {
		return jobs, nil
	}

	// Region did not fill the quota; top up nationwide.
	seen := make([]int, 0, len(jobs))
	for _, j := range jobs {
		seen = append(seen, j.ID)
	}
	var fill []db_models.JobPost
	if len(seen) == 0 {
		if err := r.db.WithContext(ctx).Raw(jobSearchAllQuery, vecStr, limit).Scan(&fill).Error; err != nil {
			return nil, utils.ErrDatabaseError
		}
		return fill, nil
	}
	if err := r.db.WithContext(ctx).Raw(jobSearchFillQuery, seen, vecStr, limit-len(jobs)).Scan(&fill).Error; err != nil {
		return nil, utils.ErrDatabaseError
	}
	return append(jobs, fill...), nil
}

func (r *jobRepository) Upsert(ctx context.Context, job *db_models.JobPost) error {
	if err := r.db.WithContext(ctx).Save(job).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
