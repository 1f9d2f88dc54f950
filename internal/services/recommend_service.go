package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/pgvector/pgvector-go"

	"ruralplanner/internal/models/db_models"
	"ruralplanner/internal/models/request_models"
	"ruralplanner/internal/models/response_models"
	"ruralplanner/internal/repositories"
	"ruralplanner/pkg/utils"
)

const itineraryOutputHint = `Return a JSON array of day objects, each exactly:
{"day":1,"date":"YYYY-MM-DD","plan_items":["..."],"total_distance_km":0.0,"total_cost_krw":0}`

type RecommendServiceInterface interface {
	Recommend(ctx context.Context, req *request_models.RecommendRequest) ([]response_models.Itinerary, error)
}

type RecommendService struct {
	slotService SlotServiceInterface
	aiClient    utils.AIClientInterface
	jobRepo     repositories.JobRepository
	tourRepo    repositories.TourRepository

	// useGenerator switches the LLM itinerary path on; the deterministic
	// builder always remains as fallback so /recommend cannot fail on a
	// model hiccup.
	useGenerator bool
}

func NewRecommendService(
	slotService SlotServiceInterface,
	aiClient utils.AIClientInterface,
	jobRepo repositories.JobRepository,
	tourRepo repositories.TourRepository,
	useGenerator bool,
) RecommendServiceInterface {
	return &RecommendService{
		slotService:  slotService,
		aiClient:     aiClient,
		jobRepo:      jobRepo,
		tourRepo:     tourRepo,
		useGenerator: useGenerator,
	}
}

func (s *RecommendService) Recommend(ctx context.Context, req *request_models.RecommendRequest) ([]response_models.Itinerary, error) {
	req.Normalize()

	// Re-extraction is idempotent thanks to the slot cache.
	slots, err := s.slotService.ExtractSlots(ctx, req.Query)
	if err != nil {
		return nil, err
	}

	jobs, tours, err := s.resolveSelections(ctx, slots, req)
	if err != nil {
		return nil, err
	}

	if s.useGenerator {
		if itineraries, err := s.generateWithModel(ctx, slots, jobs, tours, req.BudgetKRW()); err == nil {
			return itineraries, nil
		} else {
			log.Printf("Itinerary model failed, using schedule builder: %v", err)
		}
	}

	return BuildItineraries(slots, jobs, tours, req.BudgetKRW()), nil
}

// resolveSelections honors the ids the user picked on the preview screen;
// only unselected sides fall back to vector search.
func (s *RecommendService) resolveSelections(
	ctx context.Context,
	slots utils.UserSlots,
	req *request_models.RecommendRequest,
) ([]db_models.JobPost, []db_models.TourSpot, error) {
	region := ""
	if slots.Region != nil {
		region = *slots.Region
	}

	var jobs []db_models.JobPost
	var tours []db_models.TourSpot
	var vector pgvector.Vector
	var err error

	needSearch := len(req.SelectedJobs) == 0 || len(req.SelectedTours) == 0
	if needSearch {
		text := strings.Join(slots.SearchTags(), " ")
		if strings.TrimSpace(text) == "" {
			text = fallbackSearchText
		}
		vector, err = s.aiClient.GetEmbedding(ctx, text)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", utils.ErrSlotExtraction, err)
		}
	}

	if len(req.SelectedJobs) > 0 {
		jobs, err = s.jobRepo.ListByIDs(ctx, req.SelectedJobs)
	} else {
		jobs, err = s.jobRepo.SearchByVector(ctx, vector, region, previewCount)
	}
	if err != nil {
		return nil, nil, err
	}

	if len(req.SelectedTours) > 0 {
		tours, err = s.tourRepo.ListByIDs(ctx, req.SelectedTours)
	} else {
		tours, err = s.tourRepo.SearchByVector(ctx, vector, region, previewCount)
	}
	if err != nil {
		return nil, nil, err
	}

	return jobs, tours, nil
}

func (s *RecommendService) generateWithModel(
	ctx context.Context,
	slots utils.UserSlots,
	jobs []db_models.JobPost,
	tours []db_models.TourSpot,
	budget int,
) ([]response_models.Itinerary, error) {
	selections := make([]map[string]interface{}, 0, len(jobs)+len(tours))
	for _, job := range jobs {
		selections = append(selections, map[string]interface{}{
			"type":   "job",
			"id":     job.ID,
			"name":   job.Title,
			"region": job.Region,
			"tags":   []string(job.Tags),
		})
	}
	for _, tour := range tours {
		selections = append(selections, map[string]interface{}{
			"type":   "tour",
			"id":     tour.ID,
			"name":   tour.Name,
			"region": tour.Region,
			"tags":   []string(tour.Tags),
		})
	}

	contextJSON, err := utils.BuildModelContext(slots, selections, budget)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrItineraryGeneration, err)
	}

	content, err := s.aiClient.GenerateItinerary(ctx, contextJSON+"\n\n"+itineraryOutputHint)
	if err != nil {
		return nil, err
	}

	var itineraries []response_models.Itinerary
	if err := json.Unmarshal([]byte(content), &itineraries); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrItineraryGeneration, err)
	}
	if len(itineraries) == 0 {
		return nil, fmt.Errorf("%w: model returned no days", utils.ErrItineraryGeneration)
	}
	for i := range itineraries {
		if itineraries[i].PlanItems == nil {
			itineraries[i].PlanItems = []string{}
		}
	}
	return itineraries, nil
}
