package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/diarykeeper/internal/client/client"
	"github.com/dmitrijs2005/diarykeeper/internal/client/models"
	"github.com/dmitrijs2005/diarykeeper/internal/client/repositories/entries"
	"github.com/dmitrijs2005/diarykeeper/internal/logging"
)

type EntryService interface {
	CreateEntry(ctx context.Context, sub models.Submission) (models.Receipt, error)
	History(ctx context.Context, limit int) ([]*models.Entry, error)
}

type entryService struct {
	client    client.Client
	entryRepo entries.Repository
	log       logging.Logger
	now       func() time.Time
}

func NewEntryService(c client.Client, entryRepo entries.Repository, log logging.Logger) EntryService {
	return &entryService{client: c, entryRepo: entryRepo, log: log.With("module", "entries"), now: time.Now}
}

// CreateEntry submits the entry. An accepted entry is also recorded in the
// local history; a failure to record it is logged and does not change the
// receipt.
func (s *entryService) CreateEntry(ctx context.Context, sub models.Submission) (models.Receipt, error) {
	res, err := s.client.CreateEntry(ctx, sub)
	if err != nil {
		return models.Receipt{}, fmt.Errorf("create entry: %w", err)
	}
	if !res.Accepted() {
		return *res, nil
	}

	images := make([]string, 0, len(sub.Images))
	for _, ref := range sub.Images {
		images = append(images, string(ref))
	}
	e := &models.Entry{
		Id:          res.EntryID,
		Title:       sub.Title,
		Body:        sub.Body,
		Images:      images,
		Location:    sub.Location,
		Coordinates: sub.Coordinates,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.entryRepo.Insert(ctx, e); err != nil {
		s.log.Warn(ctx, "failed to record entry locally", "entry_id", res.EntryID, "error", err)
	}
	return *res, nil
}

func (s *entryService) History(ctx context.Context, limit int) ([]*models.Entry, error) {
	list, err := s.entryRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return list, nil
}
