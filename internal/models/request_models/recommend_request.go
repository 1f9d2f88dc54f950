package request_models

import (
	"encoding/json"

	"github.com/google/uuid"

	"ruralplanner/pkg/utils"
)

// UserID is a uuid.UUID on the wire. encoding/json surfaces a malformed
// uuid as a bare parse error with no field attached; this wrapper keeps
// the field path on the error instead.
type UserID uuid.UUID

func (u *UserID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &utils.ValidationError{Field: "user_id", Constraint: "must be a UUID string"}
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return &utils.ValidationError{Field: "user_id", Constraint: "must be a valid UUID"}
	}
	*u = UserID(id)
	return nil
}

func (u UserID) MarshalJSON() ([]byte, error) {
	return json.Marshal(uuid.UUID(u).String())
}

func (u UserID) UUID() uuid.UUID { return uuid.UUID(u) }

// RecommendationRequest carries the fields shared by every recommendation
// call. Budget is the whole-trip budget in KRW; the field must be present
// but an explicit 0 is a valid budget, hence the pointer.
type RecommendationRequest struct {
	Query  string  `json:"query" binding:"required"`
	UserID *UserID `json:"user_id"`
	Budget *int    `json:"budget" binding:"required"`
}

// BudgetKRW returns the budget, 0 when unset.
func (r *RecommendationRequest) BudgetKRW() int {
	if r.Budget == nil {
		return 0
	}
	return *r.Budget
}

// RecommendRequest is the final /recommend body. The embedded base keeps the
// shared fields first on the wire; existing clients depend on that order.
type RecommendRequest struct {
	RecommendationRequest
	SelectedJobs  []int `json:"selected_jobs"`
	SelectedTours []int `json:"selected_tours"`
}

// Normalize replaces nil selection slices with empty ones so consumers can
// iterate and re-serialize without nil checks.
func (r *RecommendRequest) Normalize() {
	if r.SelectedJobs == nil {
		r.SelectedJobs = []int{}
	}
	if r.SelectedTours == nil {
		r.SelectedTours = []int{}
	}
}
