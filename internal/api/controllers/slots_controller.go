package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ruralplanner/internal/models/request_models"
	"ruralplanner/internal/services"
	"ruralplanner/pkg/utils"
)

type SlotsController struct {
	slotService services.SlotServiceInterface
}

func NewSlotsController(slotService services.SlotServiceInterface) *SlotsController {
	return &SlotsController{
		slotService: slotService,
	}
}

// GetSlotsPreviewHandler handles POST /slots: free-text sentence in,
// extracted slots plus ten job and ten tour cards out. The SlotsResponse
// body is the wire contract and goes out unwrapped.
func (s *SlotsController) GetSlotsPreviewHandler(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	query, err := request_models.ParseSlotQuery(body)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	resp, err := s.slotService.GetSlotsPreview(c.Request.Context(), query.Query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
