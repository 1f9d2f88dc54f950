package request_models

// SlotQuery wraps a single free-text sentence describing the job/travel
// conditions, e.g. "9월 첫째 주 고창에서 조개잡이 + 해변 관광하고 싶어요".
type SlotQuery struct {
	Query string `json:"query" binding:"required"`
}
