package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/diarykeeper/internal/common"
	"github.com/dmitrijs2005/diarykeeper/internal/server/models"
	"github.com/dmitrijs2005/diarykeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Rejection messages returned with common.EntryCodeRejected.
const (
	MsgTitleRequired = "title is required"
	MsgBodyRequired  = "body is required"
	MsgForeignImage  = "image key does not belong to the caller"
)

// CreateResult mirrors the wire response: Code is common.EntryCodeAccepted
// when the entry was stored.
type CreateResult struct {
	Code    int32
	Message string
	EntryID string
}

type EntryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	newID       func() string
}

func NewEntryService(db *sql.DB, repomanager repomanager.RepositoryManager) *EntryService {
	return &EntryService{
		db:          db,
		repomanager: repomanager,
		newID:       uuid.NewString,
	}
}

// Create stores entry for userID. Business rejections come back as a result
// with common.EntryCodeRejected and a nil error; only storage failures are
// errors.
func (s *EntryService) Create(ctx context.Context, userID string, entry *models.Entry) (*CreateResult, error) {
	if msg := validateEntry(userID, entry); msg != "" {
		return &CreateResult{Code: common.EntryCodeRejected, Message: msg}, nil
	}

	entry.ID = s.newID()
	entry.UserID = userID

	if err := s.repomanager.Entries(s.db).Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("error creating entry: %w", err)
	}
	return &CreateResult{Code: common.EntryCodeAccepted, EntryID: entry.ID}, nil
}

func validateEntry(userID string, e *models.Entry) string {
	switch {
	case strings.TrimSpace(e.Title) == "":
		return MsgTitleRequired
	case strings.TrimSpace(e.Body) == "":
		return MsgBodyRequired
	}
	for _, key := range e.Images {
		if KeyOwner(key) != userID {
			return MsgForeignImage
		}
	}
	return ""
}
