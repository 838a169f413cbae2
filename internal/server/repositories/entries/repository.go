package entries

import (
	"context"

	"github.com/dmitrijs2005/diarykeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, entry *models.Entry) error
}
