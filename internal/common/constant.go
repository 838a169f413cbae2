// Package common contains shared constants and sentinel errors used across
// diarykeeper components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// FirstEntryFlagKey is the local flag consulted by the compose screen to
// decide whether the user is writing their very first diary entry.
const FirstEntryFlagKey = "firstEntryDiary"

// Profile status codes shared by client and server.
const (
	// StatusProfileIncomplete marks a freshly registered profile.
	StatusProfileIncomplete int32 = 502
	// StatusWroteFirstEntry is set after the first saved entry when sex is unset.
	StatusWroteFirstEntry int32 = 103
	// StatusWroteFirstEntryWithSex is set after the first saved entry when sex is known.
	StatusWroteFirstEntryWithSex int32 = 113
)

// EntryCodeAccepted is the CreateEntry discriminant meaning the server
// persisted the entry.
const EntryCodeAccepted int32 = 0

// EntryCodeRejected is returned when the server refuses an entry.
const EntryCodeRejected int32 = 1
