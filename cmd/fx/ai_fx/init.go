package ai_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"ruralplanner/pkg/utils"
)

var Module = fx.Provide(
	ProvideAIClient,
)

// ProvideAIClient builds the model backend from environment variables.
func ProvideAIClient() (utils.AIClientInterface, error) {
	provider := GetEnvWithDefault("AI_PROVIDER", "openai")

	var apiKey string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when using the OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required when using the Gemini provider")
		}
	}

	cfg := utils.AIClientConfig{
		SlotModel:      os.Getenv("SLOT_MODEL"),
		EmbedModel:     os.Getenv("EMBED_MODEL"),
		ItineraryModel: os.Getenv("ITINERARY_MODEL"),
	}

	log.Printf("Initializing %s AI client (slot=%q embed=%q itinerary=%q)",
		provider, cfg.SlotModel, cfg.EmbedModel, cfg.ItineraryModel)

	return utils.NewAIClient(provider, apiKey, cfg)
}

// GetEnvWithDefault returns the environment variable or a default value.
func GetEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
