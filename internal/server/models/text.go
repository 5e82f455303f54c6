package models

import "time"

// Text is a memorization text owned by exactly one user. Tags is a
// comma-separated string, possibly empty. LastPracticedAt is nil until the
// first practice completion and afterwards written only by that transition.
type Text struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	Tags            string     `json:"tags,omitempty"`
	UserID          string     `json:"userId"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	LastPracticedAt *time.Time `json:"lastPracticedAt"`
}
