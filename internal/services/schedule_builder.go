package services

import (
	"fmt"

	"ruralplanner/internal/models/db_models"
	"ruralplanner/internal/models/response_models"
	"ruralplanner/pkg/utils"
)

// BuildItineraries lays the recommended jobs and tours into a single-day
// plan: jobs fill the morning block, tours the afternoon block. Budget is
// accepted for wire compatibility; no budget cap is applied yet.
func BuildItineraries(
	slots utils.UserSlots,
	jobs []db_models.JobPost,
	tours []db_models.TourSpot,
	budget int,
) []response_models.Itinerary {
	date := slots.StartDate
	if _, err := utils.ParseDateKR(date); err != nil {
		date = utils.TodayKR()
	}

	planItems := []string{}
	totalCost := 0

	for _, job := range jobs {
		wage := 0
		if job.Wage != nil {
			wage = *job.Wage
		}
		totalCost += wage
		planItems = append(planItems,
			fmt.Sprintf("[JOB] %s (09:00~12:00) - %d원", job.Title, wage))
	}
	for _, tour := range tours {
		// Entrance fees and transfer costs are not modeled yet.
		planItems = append(planItems,
			fmt.Sprintf("[TOUR] %s (13:00~17:00) - 0원", tour.Name))
	}

	distance := 0.0
	cost := totalCost

	return []response_models.Itinerary{{
		ScheduleItem: response_models.ScheduleItem{
			Day:             1,
			Date:            date,
			PlanItems:       planItems,
			TotalDistanceKM: &distance,
			TotalCostKRW:    &cost,
		},
	}}
}
