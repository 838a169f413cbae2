// Package models defines client-side data models used by the diarykeeper CLI.
package models

import "time"

// Entry is a journal entry the server accepted, as kept in the local history.
type Entry struct {
	// Id is the server-assigned identifier.
	Id string

	Title string
	Body  string

	// Images holds the storage keys of the attached images, in capture order.
	Images []string

	// Location is the human-readable place label, possibly empty.
	Location string

	Coordinates Coordinates

	// CreatedAt is the local acceptance time in UTC.
	CreatedAt time.Time
}
