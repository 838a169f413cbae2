// Package models defines server-side data models persisted in the database.
package models

import "time"

// Entry is a stored journal entry. Images holds object-storage keys in the
// order the client captured them.
type Entry struct {
	ID        string
	UserID    string
	Title     string
	Body      string
	Images    []string
	Latitude  float64
	Longitude float64
	Location  string
	CreatedAt time.Time
}
