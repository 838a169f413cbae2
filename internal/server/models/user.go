package models

import "time"

// User is a registered account together with its profile fields.
type User struct {
	ID       string
	UserName string
	Salt     []byte
	Verifier []byte

	// Status is the profile status code; new users start at
	// common.StatusProfileIncomplete.
	Status int32
	// Sex is 0 when unset.
	Sex int32

	CreatedAt time.Time
}
