package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"

	"ruralplanner/internal/models/db_models"
	"ruralplanner/internal/models/request_models"
	"ruralplanner/internal/repositories"
	"ruralplanner/pkg/utils"
)

type FeedbackServiceInterface interface {
	RecordFeedback(ctx context.Context, req *request_models.FeedbackRequest) error
}

type FeedbackService struct {
	userRepo repositories.UserRepository
	jobRepo  repositories.JobRepository
	tourRepo repositories.TourRepository
	aiClient utils.AIClientInterface
}

func NewFeedbackService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	tourRepo repositories.TourRepository,
	aiClient utils.AIClientInterface,
) FeedbackServiceInterface {
	return &FeedbackService{
		userRepo: userRepo,
		jobRepo:  jobRepo,
		tourRepo: tourRepo,
		aiClient: aiClient,
	}
}

// RecordFeedback stores the +1/-1 signal and, on a like, folds the content
// embedding into the user's preference vector by averaging.
func (s *FeedbackService) RecordFeedback(ctx context.Context, req *request_models.FeedbackRequest) error {
	user, err := s.userRepo.GetOrCreateByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	tags, err := s.contentTags(ctx, req.ContentType, req.ContentID)
	if err != nil {
		return err
	}

	if err := s.userRepo.CreateFeedback(ctx, &db_models.Feedback{
		UserID:      user.ID,
		ContentID:   req.ContentID,
		ContentType: req.ContentType,
		Score:       req.Score,
	}); err != nil {
		return err
	}

	if req.Score <= 0 {
		return nil
	}

	contentVec, err := s.aiClient.GetEmbedding(ctx, strings.Join(tags, " "))
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrSlotExtraction, err)
	}

	combined := contentVec
	if len(user.PrefVector.Slice()) > 0 {
		combined = averageVectors(user.PrefVector, contentVec)
	}
	return s.userRepo.UpdatePrefVector(ctx, user.ID, combined)
}

func (s *FeedbackService) contentTags(ctx context.Context, contentType string, contentID int) ([]string, error) {
	switch contentType {
	case "job":
		job, err := s.jobRepo.GetByID(ctx, contentID)
		if err != nil {
			return nil, err
		}
		return job.Tags, nil
	case "tour":
		tour, err := s.tourRepo.GetByID(ctx, contentID)
		if err != nil {
			return nil, err
		}
		return tour.Tags, nil
	default:
		return nil, &utils.ValidationError{Field: "content_type", Constraint: "oneof=job tour"}
	}
}

// averageVectors takes the element-wise mean. Vectors of unequal length
// fall back to the newer one.
func averageVectors(vectors ...pgvector.Vector) pgvector.Vector {
	if len(vectors) == 0 {
		return pgvector.Vector{}
	}
	dims := len(vectors[0].Slice())
	for _, v := range vectors {
		if len(v.Slice()) != dims {
			return vectors[len(vectors)-1]
		}
	}

	mean := make([]float32, dims)
	for _, v := range vectors {
		for i, val := range v.Slice() {
			mean[i] += val
		}
	}
	for i := range mean {
		mean[i] /= float32(len(vectors))
	}
	return pgvector.NewVector(mean)
}
