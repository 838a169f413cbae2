package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/diarykeeper/internal/client/client"
	"github.com/dmitrijs2005/diarykeeper/internal/client/models"
)

// ProfileService holds the caller profile of the current session and talks
// to the profile endpoints. It is safe for concurrent use.
type ProfileService struct {
	client client.Client

	mu      sync.RWMutex
	current *models.Profile
}

func NewProfileService(c client.Client) *ProfileService {
	return &ProfileService{client: c}
}

// Current returns a copy of the cached profile and whether one is set.
func (s *ProfileService) Current() (models.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.Profile{}, false
	}
	return *s.current, true
}

func (s *ProfileService) Set(p *models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p == nil {
		s.current = nil
		return
	}
	cp := *p
	s.current = &cp
}

func (s *ProfileService) Clear() {
	s.Set(nil)
}

// UpdateStatus asks the server to set the profile status. The cache is left
// alone; callers refresh it when they need the server's view.
func (s *ProfileService) UpdateStatus(ctx context.Context, profile models.Profile, status int32) error {
	if profile.Id == "" {
		return fmt.Errorf("update status: %w", client.ErrNotLoggedIn)
	}
	if err := s.client.UpdateProfile(ctx, profile.Id, &status, nil); err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	return nil
}

// Refresh re-reads the profile of ownerID from the server into the cache.
func (s *ProfileService) Refresh(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return fmt.Errorf("refresh profile: %w", client.ErrNotLoggedIn)
	}
	p, err := s.client.GetProfile(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("refresh profile: %w", err)
	}
	s.Set(p)
	return nil
}
