package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/diarykeeper/internal/client/client"
	"github.com/dmitrijs2005/diarykeeper/internal/client/models"
	"github.com/dmitrijs2005/diarykeeper/internal/logging"
	"github.com/dmitrijs2005/diarykeeper/internal/netx"
	"golang.org/x/sync/errgroup"
)

const defaultUploadConcurrency = 4

// presignBatchSize matches the server's per-request presign limit.
const presignBatchSize = 20

// MediaService uploads image payloads through server-issued presigned URLs.
type MediaService struct {
	client      client.Client
	http        *http.Client
	concurrency int
	log         logging.Logger
}

func NewMediaService(c client.Client, httpClient *http.Client, concurrency int, log logging.Logger) *MediaService {
	if concurrency <= 0 {
		concurrency = defaultUploadConcurrency
	}
	return &MediaService{client: c, http: httpClient, concurrency: concurrency, log: log.With("module", "media")}
}

// Upload stores every payload and returns one reference per payload, in
// input order. Any failed upload fails the batch.
func (s *MediaService) Upload(ctx context.Context, media []models.Media, tag models.UploadTag) ([]models.ImageRef, error) {
	if len(media) == 0 {
		return []models.ImageRef{}, nil
	}

	slots, err := s.presign(ctx, len(media), tag.Category)
	if err != nil {
		return nil, err
	}

	refs := make([]models.ImageRef, len(media))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := range media {
		g.Go(func() error {
			if err := netx.UploadToPresignedURL(gctx, s.http, slots[i].URL, media[i].Data, media[i].ContentType); err != nil {
				return fmt.Errorf("upload %q: %w", media[i].Name, err)
			}
			refs[i] = models.ImageRef(slots[i].Key)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.Debug(ctx, "media uploaded", "count", len(refs), "category", tag.Category, "owner_id", tag.OwnerID)
	return refs, nil
}

// presign requests count slots in batches of at most presignBatchSize,
// concatenated in request order.
func (s *MediaService) presign(ctx context.Context, count int, category string) ([]client.PresignedUpload, error) {
	slots := make([]client.PresignedUpload, 0, count)
	for len(slots) < count {
		n := min(count-len(slots), presignBatchSize)
		batch, err := s.client.PresignUploads(ctx, n, category)
		if err != nil {
			return nil, fmt.Errorf("presign uploads: %w", err)
		}
		if len(batch) != n {
			return nil, fmt.Errorf("presign uploads: want %d slots, got %d", n, len(batch))
		}
		slots = append(slots, batch...)
	}
	return slots, nil
}
