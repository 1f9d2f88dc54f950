package services

import (
	"context"

	"github.com/pgvector/pgvector-go"

	"ruralplanner/internal/models/db_models"
	"ruralplanner/internal/models/response_models"
	"ruralplanner/pkg/utils"
)

type fakeAIClient struct {
	slots    utils.UserSlots
	slotsErr error

	embedding pgvector.Vector
	embedErr  error

	itinerary    string
	itineraryErr error

	extractCalls       int
	embedCalls         int
	lastItineraryInput string
}

func (f *fakeAIClient) ExtractSlots(ctx context.Context, sentence string) (utils.UserSlots, error) {
	f.extractCalls++
	return f.slots, f.slotsErr
}

func (f *fakeAIClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	f.embedCalls++
	return f.embedding, f.embedErr
}

func (f *fakeAIClient) GetEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	f.embedCalls++
	vectors := make([]pgvector.Vector, len(texts))
	for i := range texts {
		vectors[i] = f.embedding
	}
	return vectors, f.embedErr
}

func (f *fakeAIClient) GenerateItinerary(ctx context.Context, contextJSON string) (string, error) {
	f.lastItineraryInput = contextJSON
	return f.itinerary, f.itineraryErr
}

type fakeJobRepo struct {
	byID          map[int]db_models.JobPost
	searchResult  []db_models.JobPost
	listResult    []db_models.JobPost
	lastRegion    string
	lastLimit     int
	lastListedIDs []int
}

func (f *fakeJobRepo) GetByID(ctx context.Context, id int) (db_models.JobPost, error) {
	job, ok := f.byID[id]
	if !ok {
		return db_models.JobPost{}, utils.ErrJobNotFound
	}
	return job, nil
}

func (f *fakeJobRepo) ListByIDs(ctx context.Context, ids []int) ([]db_models.JobPost, error) {
	f.lastListedIDs = ids
	return f.listResult, nil
}

func (f *fakeJobRepo) SearchByVector(ctx context.Context, vector pgvector.Vector, region string, limit int) ([]db_models.JobPost, error) {
	f.lastRegion = region
	f.lastLimit = limit
	return f.searchResult, nil
}

func (f *fakeJobRepo) Upsert(ctx context.Context, job *db_models.JobPost) error {
	return nil
}

type fakeTourRepo struct {
	byID          map[int]db_models.TourSpot
	searchResult  []db_models.TourSpot
	listResult    []db_models.TourSpot
	lastRegion    string
	lastListedIDs []int
}

func (f *fakeTourRepo) GetByID(ctx context.Context, id int) (db_models.TourSpot, error) {
	tour, ok := f.byID[id]
	if !ok {
		return db_models.TourSpot{}, utils.ErrTourNotFound
	}
	return tour, nil
}

func (f *fakeTourRepo) GetByContentID(ctx context.Context, contentID string) (db_models.TourSpot, error) {
	return db_models.TourSpot{}, utils.ErrTourNotFound
}

func (f *fakeTourRepo) ListByIDs(ctx context.Context, ids []int) ([]db_models.TourSpot, error) {
	f.lastListedIDs = ids
	return f.listResult, nil
}

func (f *fakeTourRepo) SearchByVector(ctx context.Context, vector pgvector.Vector, region string, limit int) ([]db_models.TourSpot, error) {
	f.lastRegion = region
	return f.searchResult, nil
}

func (f *fakeTourRepo) Upsert(ctx context.Context, tour *db_models.TourSpot) error {
	return nil
}

type fakeUserRepo struct {
	user        db_models.User
	feedbacks   []db_models.Feedback
	savedVector *pgvector.Vector
}

func (f *fakeUserRepo) GetOrCreateByEmail(ctx context.Context, email string) (db_models.User, error) {
	f.user.Email = email
	return f.user, nil
}

func (f *fakeUserRepo) UpdatePrefVector(ctx context.Context, userID int, vector pgvector.Vector) error {
	f.savedVector = &vector
	return nil
}

func (f *fakeUserRepo) CreateFeedback(ctx context.Context, feedback *db_models.Feedback) error {
	f.feedbacks = append(f.feedbacks, *feedback)
	return nil
}

type fakeSlotService struct {
	slots    utils.UserSlots
	slotsErr error
}

func (f *fakeSlotService) ExtractSlots(ctx context.Context, sentence string) (utils.UserSlots, error) {
	return f.slots, f.slotsErr
}

func (f *fakeSlotService) GetSlotsPreview(ctx context.Context, sentence string) (*response_models.SlotsResponse, error) {
	return nil, nil
}
