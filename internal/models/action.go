package models

import "time"

// user action tags
const (
	ActionStart          = "start_command"
	ActionMainMenu       = "main_menu_accessed"
	ActionCategoryViewed = "category_viewed"
	ActionServiceViewed  = "service_viewed"
	ActionDetailsViewed  = "service_details_viewed"
	ActionOrderCreated   = "order_created"
)

// UserAction is an append-only audit record
type UserAction struct {
	ID        int64
	UserID    int64
	Username  string
	Action    string
	Details   string
	Timestamp time.Time
}
