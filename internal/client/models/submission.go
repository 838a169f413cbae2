package models

import "github.com/dmitrijs2005/diarykeeper/internal/common"

// UploadTag classifies a media batch in the object store.
type UploadTag struct {
	Category string
	OwnerID  string
}

// Submission is the payload sent to the entry-creation endpoint.
type Submission struct {
	Title       string
	Body        string
	Images      []ImageRef
	Coordinates Coordinates
	Location    string
}

// Receipt is the entry-creation response. Code 0 means accepted.
type Receipt struct {
	Code    int32
	Message string
	EntryID string
}

// Accepted reports whether the server stored the entry.
func (r Receipt) Accepted() bool {
	return r.Code == common.EntryCodeAccepted
}
