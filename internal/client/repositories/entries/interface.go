package entries

import (
	"context"

	"github.com/dmitrijs2005/diarykeeper/internal/client/models"
)

// Repository stores accepted entries.
type Repository interface {
	// Insert adds an entry; inserting the same id twice replaces the row.
	Insert(ctx context.Context, entry *models.Entry) error

	// List returns up to limit entries, newest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]*models.Entry, error)

	// GetByID returns common.ErrorNotFound when the id is unknown.
	GetByID(ctx context.Context, id string) (*models.Entry, error)
}
