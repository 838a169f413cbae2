// Package entries provides the PostgreSQL-backed journal entry repository.
package entries

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/diarykeeper/internal/dbx"
	"github.com/dmitrijs2005/diarykeeper/internal/server/models"
)

// PostgresRepository implements entry storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts entry and fills in CreatedAt. Image keys are stored as a
// JSON array; a nil slice is stored as [].
func (r *PostgresRepository) Create(ctx context.Context, entry *models.Entry) error {
	images := entry.Images
	if images == nil {
		images = []string{}
	}
	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return fmt.Errorf("encode images: %w", err)
	}

	query := `
		INSERT INTO entries (id, user_id, title, body, images, latitude, longitude, location)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7, $8)
		RETURNING created_at
	`
	err = r.db.QueryRowContext(ctx, query,
		entry.ID, entry.UserID, entry.Title, entry.Body, string(imagesJSON),
		entry.Latitude, entry.Longitude, entry.Location,
	).Scan(&entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
