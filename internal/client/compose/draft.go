package compose

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/diarykeeper/internal/client/models"
)

// Draft is the in-progress entry. Empty Title and Body mean unset.
type Draft struct {
	Title string
	Body  string
	// Media is kept in capture order.
	Media []models.Media

	Coordinates models.Coordinates
	PlaceLabel  string

	IsSubmitting bool
	IsFirstEntry bool

	HintVisible bool
	HintText    string

	// StartedAt is when the screen was opened; the entry date shown to the user.
	StartedAt time.Time

	State   State
	Outcome Outcome
}

// Validate checks the draft in the order the save pipeline does.
// Whitespace-only fields count as empty, as they do on the server.
func (d Draft) Validate() error {
	title, body := strings.TrimSpace(d.Title), strings.TrimSpace(d.Body)
	switch {
	case title == "" && body == "":
		return ErrEmptyDraft
	case title == "":
		return ErrTitleRequired
	case body == "":
		return ErrBodyRequired
	default:
		return nil
	}
}

func (d Draft) clone() Draft {
	if d.Media != nil {
		d.Media = append([]models.Media(nil), d.Media...)
	}
	return d
}

// DraftStore owns the draft of one screen and notifies subscribers after
// each change. It is safe for concurrent use.
type DraftStore struct {
	mu     sync.Mutex
	draft  Draft
	subs   map[int]func(Draft)
	nextID int
}

func NewDraftStore(now time.Time) *DraftStore {
	return &DraftStore{
		draft: Draft{StartedAt: now},
		subs:  map[int]func(Draft){},
	}
}

// Snapshot returns a copy the caller may keep.
func (s *DraftStore) Snapshot() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.clone()
}

// Subscribe registers fn to be called with a snapshot after every change.
// Calls happen on the goroutine that made the change, in subscription order.
func (s *DraftStore) Subscribe(fn func(Draft)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *DraftStore) SetTitle(title string) {
	s.update(func(d *Draft) { d.Title = title })
}

func (s *DraftStore) SetBody(body string) {
	s.update(func(d *Draft) { d.Body = body })
}

// AppendMedia adds payloads after the ones already captured.
func (s *DraftStore) AppendMedia(media ...models.Media) {
	if len(media) == 0 {
		return
	}
	s.update(func(d *Draft) { d.Media = append(d.Media, media...) })
}

func (s *DraftStore) setLocation(c models.Coordinates, label string) {
	s.update(func(d *Draft) {
		d.Coordinates = c
		d.PlaceLabel = label
	})
}

func (s *DraftStore) location() (models.Coordinates, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Coordinates, s.draft.PlaceLabel
}

func (s *DraftStore) isFirstEntry() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.IsFirstEntry
}

// beginSubmit sets IsSubmitting unless it is already set. On success the
// returned snapshot is the draft the pipeline works on.
func (s *DraftStore) beginSubmit() (Draft, bool) {
	var (
		snap Draft
		ok   bool
	)
	s.update(func(d *Draft) {
		if d.IsSubmitting {
			return
		}
		d.IsSubmitting = true
		d.State = StateValidating
		d.Outcome = OutcomeNone
		snap = d.clone()
		ok = true
	})
	return snap, ok
}

func (s *DraftStore) setState(st State) {
	s.update(func(d *Draft) { d.State = st })
}

// finish records a terminal state. keepSubmitting is used when the screen
// navigated away.
func (s *DraftStore) finish(st State, o Outcome, keepSubmitting bool) {
	s.update(func(d *Draft) {
		d.State = st
		d.Outcome = o
		if !keepSubmitting {
			d.IsSubmitting = false
		}
	})
}

func (s *DraftStore) hideHint() Draft {
	var snap Draft
	s.update(func(d *Draft) {
		d.HintVisible = false
		snap = d.clone()
	})
	return snap
}

func (s *DraftStore) update(fn func(d *Draft)) {
	s.mu.Lock()
	fn(&s.draft)
	snap := s.draft.clone()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	subs := make([]func(Draft), 0, len(ids))
	for _, id := range ids {
		subs = append(subs, s.subs[id])
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}
