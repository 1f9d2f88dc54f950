package utils

import (
	"encoding/json"
	"time"
)

const modelContextVersion = "1.0"

// ModelContext bundles slots, selected cards and constraints into the single
// JSON payload the itinerary model consumes.
type ModelContext struct {
	Meta        ModelContextMeta         `json:"meta"`
	Slots       map[string]interface{}   `json:"slots"`
	Selections  []map[string]interface{} `json:"selections"`
	Constraints map[string]interface{}   `json:"constraints"`
}

type ModelContextMeta struct {
	GeneratedAt string `json:"generated_at"`
	Version     string `json:"version"`
}

// BuildModelContext serializes the payload as pretty-printed JSON.
func BuildModelContext(slots UserSlots, selections []map[string]interface{}, budget int) (string, error) {
	if selections == nil {
		selections = []map[string]interface{}{}
	}
	mc := ModelContext{
		Meta: ModelContextMeta{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			Version:     modelContextVersion,
		},
		Slots:       slots.ToMap(),
		Selections:  selections,
		Constraints: map[string]interface{}{"budget": budget},
	}
	out, err := json.MarshalIndent(mc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
