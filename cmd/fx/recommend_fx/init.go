package recommend_fx

import (
	"os"

	"go.uber.org/fx"

	"ruralplanner/internal/api/controllers"
	"ruralplanner/internal/repositories"
	"ruralplanner/internal/services"
	"ruralplanner/pkg/utils"
)

var Module = fx.Provide(
	ProvideRecommendService,
	ProvideRecommendController,
)

func ProvideRecommendService(
	slotService services.SlotServiceInterface,
	aiClient utils.AIClientInterface,
	jobRepo repositories.JobRepository,
	tourRepo repositories.TourRepository,
) services.RecommendServiceInterface {
	// The LLM itinerary path is opt-in; without ITINERARY_MODEL the
	// deterministic schedule builder answers alone.
	useGenerator := os.Getenv("ITINERARY_MODEL") != ""
	return services.NewRecommendService(slotService, aiClient, jobRepo, tourRepo, useGenerator)
}

func ProvideRecommendController(recommendService services.RecommendServiceInterface) *controllers.RecommendController {
	return controllers.NewRecommendController(recommendService)
}
