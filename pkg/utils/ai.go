package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// UserSlots is the structured result of slot extraction over one free-text
// sentence. Dates are YYYY-MM-DD strings as returned by the model.
type UserSlots struct {
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	Region     *string  `json:"region"`
	Activities []string `json:"activities"`
}

// ToMap renders the slots as the untyped JSON object the /slots response
// carries. The contract layer never validates this shape.
func (s UserSlots) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"start_date": s.StartDate,
		"end_date":   s.EndDate,
		"region":     nil,
		"activities": s.Activities,
	}
	if s.Region != nil {
		m["region"] = *s.Region
	}
	return m
}

// SearchTags joins activities and region into the text that gets embedded
// for catalog similarity search.
func (s UserSlots) SearchTags() []string {
	tags := append([]string{}, s.Activities...)
	if s.Region != nil && *s.Region != "" {
		tags = append(tags, *s.Region)
	}
	return tags
}

// AIClientInterface is everything the services need from the model backend:
// slot extraction, embeddings and itinerary generation.
type AIClientInterface interface {
	ExtractSlots(ctx context.Context, sentence string) (UserSlots, error)
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	GetEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error)
	GenerateItinerary(ctx context.Context, contextJSON string) (string, error)
}

// AIClientConfig selects the models each call uses.
type AIClientConfig struct {
	SlotModel      string
	EmbedModel     string
	ItineraryModel string
}

// NewAIClient builds the backend for the configured provider.
func NewAIClient(provider, apiKey string, cfg AIClientConfig) (AIClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIClient(apiKey, cfg), nil
	case "gemini":
		return NewGeminiClient(apiKey, cfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAIBackend, provider)
	}
}
