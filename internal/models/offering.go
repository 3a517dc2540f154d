package models

import "time"

// Offering is a catalog entry. Price is free-form text ("1500 units", "free").
type Offering struct {
	ID          int64
	Name        string `validate:"required"`
	Description string
	Price       string
	Category    string `validate:"required"`
	CreatedAt   time.Time
}
