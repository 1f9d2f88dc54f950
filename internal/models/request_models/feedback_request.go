package request_models

// FeedbackRequest records a like/dislike on a recommended card. Score is
// +1 (like) or -1 (dislike) and feeds the user's preference vector.
type FeedbackRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	ContentID   int     `json:"content_id" binding:"required"`
	ContentType string  `json:"content_type" binding:"required,oneof=job tour"`
	Score       float64 `json:"score" binding:"required,eq=1|eq=-1"`
}
