package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"ruralplanner/internal/models/db_models"
	"ruralplanner/pkg/utils"
)

type TourRepository interface {
	GetByID(ctx context.Context, id int) (db_models.TourSpot, error)
	GetByContentID(ctx context.Context, contentID string) (db_models.TourSpot, error)
	ListByIDs(ctx context.Context, ids []int) ([]db_models.TourSpot, error)
	SearchByVector(ctx context.Context, vector pgvector.Vector, region string, limit int) ([]db_models.TourSpot, error)
	Upsert(ctx context.Context, tour *db_models.TourSpot) error
}

type tourRepository struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) TourRepository {
	return &tourRepository{db: db}
}

func (r *tourRepository) GetByID(ctx context.Context, id int) (db_models.TourSpot, error) {
	var tour db_models.TourSpot
	err := r.db.WithContext(ctx).First(&tour, id).Error
	if err == gorm.ErrRecordNotFound {
		return tour, utils.ErrTourNotFound
	}
	if err != nil {
		return tour, utils.ErrDatabaseError
	}
	return tour, nil
}

func (r *tourRepository) GetByContentID(ctx context.Context, contentID string) (db_models.TourSpot, error) {
	var tour db_models.TourSpot
	err := r.db.WithContext(ctx).Where("contentid = ?", contentID).First(&tour).Error
	if err == gorm.ErrRecordNotFound {
		return tour, utils.ErrTourNotFound
	}
	if err != nil {
		return tour, utils.ErrDatabaseError
	}
	return tour, nil
}

func (r *tourRepository) ListByIDs(ctx context.Context, ids []int) ([]db_models.TourSpot, error) {
	var tours []db_models.TourSpot
	if len(ids) == 0 {
		return tours, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tours).Error; err != nil {
		return nil, utils.ErrDatabaseError
	}
	return tours, nil
}

const tourSearchQuery = `
	SELECT * FROM tour_spots
	WHERE embedding IS NOT NULL AND region LIKE ?
	ORDER BY embedding <=> ?
	LIMIT ?
`

const tourSearchFillQuery = `
	SELECT * FROM tour_spots
	WHERE embedding IS NOT NULL AND id NOT IN ?
	ORDER BY embedding <=> ?
	LIMIT ?
`

const tourSearchAllQuery = `
	SELECT * FROM tour_spots
	WHERE embedding IS NOT NULL
	ORDER BY embedding <=> ?
	LIMIT ?
`

func (r *tourRepository) SearchByVector(ctx context.Context, vector pgvector.Vector, region string, limit int) ([]db_models.TourSpot, error) {
	vecStr := vector.String()

	var tours []db_models.TourSpot
	if region == "" {
		if err := r.db.WithContext(ctx).Raw(tourSearchAllQuery, vecStr, limit).Scan(&tours).Error; err != nil {
			return nil, utils.ErrDatabaseError
		}
		return tours, nil
	}

	if err := r.db.WithContext(ctx).Raw(tourSearchQuery, "%"+region+"%", vecStr, limit).Scan(&tours).Error; err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(tours) >= limit {
		return tours, nil
	}

	seen := make([]int, 0, len(tours))
	for _, t := range tours {
		seen = append(seen, t.ID)
	}
	var fill []db_models.TourSpot
	if len(seen) == 0 {
		if err := r.db.WithContext(ctx).Raw(tourSearchAllQuery, vecStr, limit).Scan(&fill).Error; err != nil {
			return nil, utils.ErrDatabaseError
		}
		return fill, nil
	}
	if err := r.db.WithContext(ctx).Raw(tourSearchFillQuery, seen, vecStr, limit-len(tours)).Scan(&fill).Error; err != nil {
		return nil, utils.ErrDatabaseError
	}
	return append(tours, fill...), nil
}

func (r *tourRepository) Upsert(ctx context.Context, tour *db_models.TourSpot) error {
	if err := r.db.WithContext(ctx).Save(tour).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
