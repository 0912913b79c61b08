package domain

import "time"

type JourneyStatus string

const (
	StatusNotStarted      JourneyStatus = "not_started"
	StatusActive          JourneyStatus = "active"
	StatusPendingApproval JourneyStatus = "pending_approval"
)

// PostedItem is one published day. Items are append-only.
type PostedItem struct {
	Day            int       `json:"day"`
	Topic          string    `json:"topic"`
	Content        string    `json:"content"`
	ExternalPostID *string   `json:"external_post_id"`
	PostedAt       time.Time `json:"posted_at"`
	CharCount      int       `json:"char_count"`
}

type History struct {
	PostedItems []PostedItem `json:"posted_items"`
	LastUpdated *time.Time   `json:"last_updated"`
	TotalPosts  int          `json:"total_posts"`
}

// PendingApproval is the single in-flight draft awaiting publish.
type PendingApproval struct {
	Content    string    `json:"content"`
	Day        int       `json:"day"`
	Topic      string    `json:"topic"`
	ApprovedAt time.Time `json:"approved_at"`
}

type JourneyState struct {
	CurrentDay      int              `json:"current_day"`
	StartedAt       *time.Time       `json:"started_at"`
	LastPostDate    *time.Time       `json:"last_post_date"`
	PendingApproval *PendingApproval `json:"pending_approval"`
	Status          JourneyStatus    `json:"status"`
}

// Progress is a read-only snapshot of the journey.
type Progress struct {
	CurrentDay           int
	TotalPosts           int
	TotalDays            int
	StartedAt            *time.Time
	LastPostDate         *time.Time
	Status               JourneyStatus
	CompletionPercentage float64
}

// Completed reports whether every day of the journey has been consumed.
func (p Progress) Completed() bool {
	return p.CurrentDay > p.TotalDays
}
