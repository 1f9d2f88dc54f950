package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ruralplanner/internal/models/request_models"
	"ruralplanner/internal/services"
	"ruralplanner/pkg/utils"
)

type RecommendController struct {
	recommendService services.RecommendServiceInterface
}

func NewRecommendController(recommendService services.RecommendServiceInterface) *RecommendController {
	return &RecommendController{
		recommendService: recommendService,
	}
}

// RecommendHandler handles POST /recommend: the final card selection plus
// budget in, the generated day plans out as a bare Itinerary array.
func (r *RecommendController) RecommendHandler(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req, err := request_models.ParseRecommendRequest(body)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	itineraries, err := r.recommendService.Recommend(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, itineraries)
}
