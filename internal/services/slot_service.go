package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"

	"ruralplanner/internal/models/db_models"
	"ruralplanner/internal/models/response_models"
	"ruralplanner/internal/repositories"
	mem "ruralplanner/pkg/memcache"
	"ruralplanner/pkg/utils"
)

// previewCount is how many cards each side of the /slots response carries.
const previewCount = 10

// fallbackSearchText seeds the embedding when a query yields no usable tags.
const fallbackSearchText = "농업체험 자연"

type SlotServiceInterface interface {
	// ExtractSlots runs (cached) slot extraction over one sentence.
	ExtractSlots(ctx context.Context, sentence string) (utils.UserSlots, error)
	// GetSlotsPreview extracts slots and assembles the job/tour card preview.
	GetSlotsPreview(ctx context.Context, sentence string) (*response_models.SlotsResponse, error)
}

type SlotService struct {
	aiClient utils.AIClientInterface
	jobRepo  repositories.JobRepository
	tourRepo repositories.TourRepository
	cache    *mem.ResponseCache
}

func NewSlotService(
	aiClient utils.AIClientInterface,
	jobRepo repositories.JobRepository,
	tourRepo repositories.TourRepository,
	cache *mem.ResponseCache,
) SlotServiceInterface {
	return &SlotService{
		aiClient: aiClient,
		jobRepo:  jobRepo,
		tourRepo: tourRepo,
		cache:    cache,
	}
}

func (s *SlotService) ExtractSlots(ctx context.Context, sentence string) (utils.UserSlots, error) {
	cacheKey := "slots::" + sentence
	if cached, ok := s.cache.Get(cacheKey); ok {
		if slots, ok := cached.(utils.UserSlots); ok {
			return slots, nil
		}
	}

	slots, err := s.aiClient.ExtractSlots(ctx, sentence)
	if err != nil {
		return utils.UserSlots{}, err
	}

	s.cache.Set(cacheKey, slots)
	return slots, nil
}

func (s *SlotService) GetSlotsPreview(ctx context.Context, sentence string) (*response_models.SlotsResponse, error) {
	slots, err := s.ExtractSlots(ctx, sentence)
	if err != nil {
		return nil, err
	}

	vector, err := s.searchVector(ctx, slots)
	if err != nil {
		return nil, err
	}

	region := ""
	if slots.Region != nil {
		region = *slots.Region
	}

	jobs, err := s.jobRepo.SearchByVector(ctx, vector, region, previewCount)
	if err != nil {
		return nil, err
	}
	tours, err := s.tourRepo.SearchByVector(ctx, vector, region, previewCount)
	if err != nil {
		return nil, err
	}

	return &response_models.SlotsResponse{
		Slots:        slots.ToMap(),
		JobsPreview:  buildJobPreviews(jobs),
		ToursPreview: buildTourPreviews(tours),
	}, nil
}

func (s *SlotService) searchVector(ctx context.Context, slots utils.UserSlots) (pgvector.Vector, error) {
	text := strings.Join(slots.SearchTags(), " ")
	if strings.TrimSpace(text) == "" {
		text = fallbackSearchText
	}
	vector, err := s.aiClient.GetEmbedding(ctx, text)
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("%w: %v", utils.ErrSlotExtraction, err)
	}
	return vector, nil
}

func buildJobPreviews(jobs []db_models.JobPost) []response_models.JobPreview {
	previews := []response_models.JobPreview{}
	seen := make(map[int]bool)
	for _, job := range jobs {
		if seen[job.ID] {
			continue
		}
		seen[job.ID] = true
		previews = append(previews, response_models.JobPreview{
			JobID:    job.ID,
			FarmName: job.Title,
			Region:   regionOrUnknown(job.Region),
			Tags:     append([]string{}, job.Tags...),
		})
		if len(previews) >= previewCount {
			break
		}
	}
	return previews
}

func buildTourPreviews(tours []db_models.TourSpot) []response_models.TourPreview {
	previews := []response_models.TourPreview{}
	seen := make(map[int]bool)
	for _, tour := range tours {
		if seen[tour.ID] {
			continue
		}
		seen[tour.ID] = true

		var imageURL *string
		if tour.ImageURL != "" {
			url := tour.ImageURL
			imageURL = &url
		}
		previews = append(previews, response_models.TourPreview{
			ContentID: tour.ID,
			Title:     tour.Name,
			Region:    regionOrUnknown(tour.Region),
			Overview:  strings.Join(tour.Tags, ", "),
			ImageURL:  imageURL,
		})
		if len(previews) >= previewCount {
			break
		}
	}
	return previews
}

func regionOrUnknown(region string) string {
	if region == "" {
		return "지역정보없음"
	}
	return region
}
