package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/diarykeeper/internal/client/repositories/metadata"
)

// FlagStore keeps boolean flags in the metadata store.
type FlagStore struct {
	repo metadata.Repository
}

func NewFlagStore(repo metadata.Repository) *FlagStore {
	return &FlagStore{repo: repo}
}

// GetBool returns def when the key is absent. A stored value that does not
// parse also yields def, together with the parse error.
func (s *FlagStore) GetBool(ctx context.Context, key string, def bool) (bool, error) {
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		return def, err
	}
	if raw == nil {
		return def, nil
	}
	v, err := strconv.ParseBool(string(raw))
	if err != nil {
		return def, fmt.Errorf("flag %s: %w", key, err)
	}
	return v, nil
}

func (s *FlagStore) SetBool(ctx context.Context, key string, v bool) error {
	return s.repo.Set(ctx, key, []byte(strconv.FormatBool(v)))
}
