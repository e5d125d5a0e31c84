package models

// Feedback entry kinds.
const (
	FeedbackReview    = "review"
	FeedbackComplaint = "complaint"
)

// Review statuses.
const (
	ReviewNew      = "new"
	ReviewResolved = "resolved"
)

// Review is a customer review or complaint submitted through the
// feedback form. ID and date are assigned server-side on creation.
type Review struct {
	ID      string `json:"id"` // "rev-..."
	Name    string `json:"name"`
	Email   string `json:"email"`
	Rating  int    `json:"rating"` // 1..5
	Type    string `json:"type"`   // review | complaint
	Message string `json:"message"`
	Date    string `json:"date"`
	Status  string `json:"status"` // new | resolved
}
