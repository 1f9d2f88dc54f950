package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ruralplanner/internal/models/request_models"
	"ruralplanner/internal/services"
	"ruralplanner/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
	}
}

// RecordFeedbackHandler handles POST /feedback.
func (f *FeedbackController) RecordFeedbackHandler(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req, err := request_models.ParseFeedbackRequest(body)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if err := f.feedbackService.RecordFeedback(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Feedback recorded")
}
