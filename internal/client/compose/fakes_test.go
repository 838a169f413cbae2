package compose

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/diarykeeper/internal/client/models"
)

// recorder collects the order of collaborator calls across fakes.
type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) add(s string) {
	r.mu.Lock()
	r.calls = append(r.calls, s)
	r.mu.Unlock()
}

func (r *recorder) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

type fakeMedia struct {
	rec     *recorder
	err     error
	short   bool
	gate    chan struct{}
	entered chan struct{}

	mu      sync.Mutex
	calls   int
	lastTag models.UploadTag
	lastIn  []models.Media
}

func (f *fakeMedia) Upload(ctx context.Context, media []models.Media, tag models.UploadTag) ([]models.ImageRef, error) {
	f.mu.Lock()
	f.calls++
	f.lastTag = tag
	f.lastIn = media
	f.mu.Unlock()
	if f.rec != nil {
		f.rec.add("upload")
	}
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
	if f.err != nil {
		return nil, f.err
	}
	refs := make([]models.ImageRef, 0, len(media))
	for _, m := range media {
		refs = append(refs, models.ImageRef("note/"+m.Name))
	}
	if f.short {
		refs = refs[:len(refs)-1]
	}
	return refs, nil
}

func (f *fakeMedia) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeEntries struct {
	rec     *recorder
	receipt models.Receipt
	err     error

	mu    sync.Mutex
	calls int
	last  models.Submission
}

func (f *fakeEntries) CreateEntry(ctx context.Context, sub models.Submission) (models.Receipt, error) {
	f.mu.Lock()
	f.calls++
	f.last = sub
	f.mu.Unlock()
	if f.rec != nil {
		f.rec.add("submit")
	}
	if f.err != nil {
		return models.Receipt{}, f.err
	}
	return f.receipt, nil
}

func (f *fakeEntries) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeProfiles struct {
	profile    models.Profile
	hasProfile bool
	updateErr  error
	refreshErr error

	mu        sync.Mutex
	updates   []int32
	refreshes []string
}

func (f *fakeProfiles) Current() (models.Profile, bool) {
	return f.profile, f.hasProfile
}

func (f *fakeProfiles) UpdateStatus(ctx context.Context, p models.Profile, status int32) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("best-effort call without deadline")
	}
	f.mu.Lock()
	f.updates = append(f.updates, status)
	f.mu.Unlock()
	return f.updateErr
}

func (f *fakeProfiles) Refresh(ctx context.Context, ownerID string) error {
	f.mu.Lock()
	f.refreshes = append(f.refreshes, ownerID)
	f.mu.Unlock()
	return f.refreshErr
}

func (f *fakeProfiles) snapshot() ([]int32, []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int32(nil), f.updates...), append([]string(nil), f.refreshes...)
}

type fakeNav struct {
	mu     sync.Mutex
	pops   int
	resets []Scene
}

func (f *fakeNav) Pop() {
	f.mu.Lock()
	f.pops++
	f.mu.Unlock()
}

func (f *fakeNav) Reset(scene Scene) {
	f.mu.Lock()
	f.resets = append(f.resets, scene)
	f.mu.Unlock()
}

func (f *fakeNav) state() (int, []Scene) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pops, append([]Scene(nil), f.resets...)
}

type fakePrompter struct {
	mu     sync.Mutex
	alerts []string
}

func (f *fakePrompter) Alert(ctx context.Context, message string) {
	f.mu.Lock()
	f.alerts = append(f.alerts, message)
	f.mu.Unlock()
}

func (f *fakePrompter) list() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.alerts...)
}

type fakeFlags struct {
	mu     sync.Mutex
	values map[string]bool
	getErr error
	setErr error
	// gate, when set, holds GetBool until closed.
	gate chan struct{}
}

func newFakeFlags() *fakeFlags { return &fakeFlags{values: map[string]bool{}} }

func (f *fakeFlags) GetBool(ctx context.Context, key string, def bool) (bool, error) {
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return def, f.getErr
	}
	v, ok := f.values[key]
	if !ok {
		return def, nil
	}
	return v, nil
}

func (f *fakeFlags) SetBool(ctx context.Context, key string, v bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = v
	return nil
}

func (f *fakeFlags) get(key string) (bool, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

type fakePosition struct {
	coords models.Coordinates
	err    error
	block  bool
}

func (f fakePosition) CurrentPosition(ctx context.Context) (models.Coordinates, error) {
	if f.block {
		<-ctx.Done()
		return models.Coordinates{}, ctx.Err()
	}
	return f.coords, f.err
}

type fakeGeocoder struct {
	place models.Place
	err   error

	mu      sync.Mutex
	lastLon float64
	lastLat float64
}

func (f *fakeGeocoder) ReverseGeocode(ctx context.Context, lon, lat float64) (models.Place, error) {
	f.mu.Lock()
	f.lastLon, f.lastLat = lon, lat
	f.mu.Unlock()
	return f.place, f.err
}
