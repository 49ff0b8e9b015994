package models

import "time"

// Service is an offering a client can book (e.g. a haircut).
type Service struct {
	ID              string    `bson:"id" json:"id"`
	BusinessID      string    `bson:"business_id" json:"business_id"`
	Name            string    `bson:"name" json:"name"`
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"`
	Price           float64   `bson:"price" json:"price"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
