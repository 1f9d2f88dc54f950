package feedback_fx

import (
	"go.uber.org/fx"

	"ruralplanner/internal/api/controllers"
	"ruralplanner/internal/repositories"
	"ruralplanner/internal/services"
	"ruralplanner/pkg/utils"
)

var Module = fx.Provide(
	ProvideFeedbackService,
	ProvideFeedbackController,
)

func ProvideFeedbackService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	tourRepo repositories.TourRepository,
	aiClient utils.AIClientInterface,
) services.FeedbackServiceInterface {
	return services.NewFeedbackService(userRepo, jobRepo, tourRepo, aiClient)
}

func ProvideFeedbackController(feedbackService services.FeedbackServiceInterface) *controllers.FeedbackController {
	return controllers.NewFeedbackController(feedbackService)
}
