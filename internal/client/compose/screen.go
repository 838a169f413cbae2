package compose

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/diarykeeper/internal/common"
	"github.com/dmitrijs2005/diarykeeper/internal/logging"
)

// ScreenDeps extends Deps with what the screen lifecycle needs.
type ScreenDeps struct {
	Deps
	Flags    FlagStore
	Position PositionProvider
	Geocoder Geocoder
	Now      func() time.Time
}

// Screen is one opening of the note-authoring screen.
type Screen struct {
	store    *DraftStore
	orch     *Orchestrator
	resolver *LocationResolver
	flags    FlagStore
	nav      Navigator
	log      logging.Logger

	wg sync.WaitGroup
	// firstEntryKnown is closed once the first-entry flag has been read.
	firstEntryKnown chan struct{}
}

func NewScreen(deps ScreenDeps, cfg Config, log logging.Logger) *Screen {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	log = log.With("module", "compose")
	store := NewDraftStore(now())

	return &Screen{
		store:    store,
		orch:     NewOrchestrator(store, deps.Deps, cfg, log),
		resolver: NewLocationResolver(deps.Position, deps.Geocoder, store, cfg.LocationTimeout, log),
		flags:    deps.Flags,
		nav:      deps.Navigator,
		log:      log,
	}
}

// Store exposes the draft for input handlers and subscribers.
func (s *Screen) Store() *DraftStore {
	return s.store
}

// Activate starts the location lookup and the first-entry check. Neither
// blocks the caller. Call it from the goroutine that later calls Save.
func (s *Screen) Activate(ctx context.Context) {
	s.firstEntryKnown = make(chan struct{})
	s.wg.Add(2)
	go func() {
		defer s.wg.Done()
		_ = s.resolver.Resolve(ctx)
	}()
	go func() {
		defer s.wg.Done()
		defer close(s.firstEntryKnown)
		s.checkFirstEntry(ctx)
	}()
}

func (s *Screen) checkFirstEntry(ctx context.Context) {
	first, err := s.flags.GetBool(ctx, common.FirstEntryFlagKey, true)
	if err != nil {
		s.log.Warn(ctx, "first-entry flag unreadable, assuming first entry", "error", err)
		first = true
	}
	s.store.update(func(d *Draft) {
		d.IsFirstEntry = first
		if first {
			d.HintVisible = true
			d.HintText = IntroHintText
		}
	})
}

// Save is the save gesture. After Activate it waits for the first-entry
// check so the outcome does not depend on how fast the flag was read.
func (s *Screen) Save(ctx context.Context) (Result, error) {
	if known := s.firstEntryKnown; known != nil {
		select {
		case <-known:
		case <-ctx.Done():
			return Result{Outcome: OutcomeIgnored}, ctx.Err()
		}
	}
	return s.orch.Save(ctx)
}

// AcknowledgeHint closes the hint dialog. The screen leaves for the index
// only when the body is non-empty.
func (s *Screen) AcknowledgeHint() {
	d := s.store.hideHint()
	if d.Body != "" {
		s.nav.Reset(SceneIndex)
	}
}

// Teardown records that the first-entry hint has been seen. In-flight saves
// are not cancelled.
func (s *Screen) Teardown(ctx context.Context) error {
	if err := s.flags.SetBool(ctx, common.FirstEntryFlagKey, false); err != nil {
		s.log.Warn(ctx, "failed to clear first-entry flag", "error", err)
		return err
	}
	return nil
}

// Wait blocks until activation work and best-effort requests are done.
func (s *Screen) Wait() {
	s.wg.Wait()
	s.orch.Wait()
}
