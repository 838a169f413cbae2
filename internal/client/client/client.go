package client

import (
	"context"

	"github.com/dmitrijs2005/diarykeeper/internal/client/models"
)

// PresignedUpload is a one-shot upload slot issued by the server.
type PresignedUpload struct {
	Key string
	URL string
}

type Client interface {
	Close() error
	Register(ctx context.Context, username string, salt []byte, key []byte) error
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, key []byte) (*models.Profile, error)
	Ping(ctx context.Context) error
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID string, status *int32, sex *int32) error
	CreateEntry(ctx context.Context, entry models.Submission) (*models.Receipt, error)
	PresignUploads(ctx context.Context, count int, category string) ([]PresignedUpload, error)
}
