package models

import "time"

// Order is a user's request for an offering. OfferingName is copied at
// order time so the record stays readable after the offering is deleted.
type Order struct {
	ID           int64
	UserID       int64
	Username     string
	OfferingID   int64
	OfferingName string
	OrderTime    time.Time
}

// Requester identifies the chat user placing an order or performing an action
type Requester struct {
	ID       int64
	Username string
}
