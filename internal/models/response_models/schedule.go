package response_models

// ScheduleItem is one day of the generated job + travel plan. Date is a
// calendar date string (YYYY-MM-DD); this layer does not enforce the format.
// The optional totals stay nil when the planner did not compute them.
type ScheduleItem struct {
	Day             int      `json:"day"`
	Date            string   `json:"date"`
	PlanItems       []string `json:"plan_items"`
	TotalDistanceKM *float64 `json:"total_distance_km"`
	TotalCostKRW    *int     `json:"total_cost_krw"`
}

// Itinerary is currently identical to ScheduleItem; kept as its own type so
// multi-day aggregation can grow here without touching ScheduleItem clients.
type Itinerary struct {
	ScheduleItem
}
