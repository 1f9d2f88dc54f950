package response_models

// JobPreview is one farm-work card from the vector-similarity top results.
type JobPreview struct {
	JobID    int      `json:"job_id"`
	FarmName string   `json:"farm_name"`
	Region   string   `json:"region"`
	Tags     []string `json:"tags"`
}

// TourPreview is one tour-spot card. ImageURL stays nil when no image is
// known for the spot; nil and "" are different states on the wire.
type TourPreview struct {
	ContentID int     `json:"content_id"`
	Title     string  `json:"title"`
	Region    string  `json:"region"`
	Overview  string  `json:"overview"`
	ImageURL  *string `json:"image_url"`
}

// SlotsResponse is the /slots body. Slots is the raw JSON object produced
// by the slot extractor and is passed through unvalidated.
type SlotsResponse struct {
	Slots        map[string]interface{} `json:"slots"`
	JobsPreview  []JobPreview           `json:"jobs_preview"`
	ToursPreview []TourPreview          `json:"tours_preview"`
}
