package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/diarykeeper/internal/client/config"
	"github.com/dmitrijs2005/diarykeeper/internal/client/models"
	"github.com/dmitrijs2005/diarykeeper/internal/logging"
)

type fakeAuth struct {
	regUser string
	regPass []byte
	regErr  error

	loginUser    string
	loginPass    []byte
	loginProfile *models.Profile
	loginErr     error

	logoutCalled bool
	logoutErr    error

	pingErr error
}

func (f *fakeAuth) Register(_ context.Context, user string, pass []byte) error {
	f.regUser, f.regPass = user, append([]byte(nil), pass...)
	return f.regErr
}
func (f *fakeAuth) OnlineLogin(_ context.Context, user string, pass []byte) (*models.Profile, error) {
	f.loginUser, f.loginPass = user, append([]byte(nil), pass...)
	return f.loginProfile, f.loginErr
}
func (f *fakeAuth) CurrentUser(context.Context) (string, error) { return f.loginUser, nil }
func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}
func (f *fakeAuth) Ping(context.Context) error  { return f.pingErr }
func (f *fakeAuth) Close(context.Context) error { return nil }

type fakeEntries struct {
	mu      sync.Mutex
	subs    []models.Submission
	receipt models.Receipt
	err     error
	history []*models.Entry
}

func (f *fakeEntries) CreateEntry(_ context.Context, sub models.Submission) (models.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs = append(f.subs, sub)
	return f.receipt, f.err
}
func (f *fakeEntries) History(context.Context, int) ([]*models.Entry, error) {
	return f.history, f.err
}

type fakeProfiles struct {
	profile *models.Profile
}

func (f *fakeProfiles) Current() (models.Profile, bool) {
	if f.profile == nil {
		return models.Profile{}, false
	}
	return *f.profile, true
}
func (f *fakeProfiles) UpdateStatus(context.Context, models.Profile, int32) error { return nil }
func (f *fakeProfiles) Refresh(context.Context, string) error                     { return nil }

type fakeMedia struct {
	mu    sync.Mutex
	calls [][]models.Media
}

func (f *fakeMedia) Upload(_ context.Context, media []models.Media, _ models.UploadTag) ([]models.ImageRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, media)
	refs := make([]models.ImageRef, len(media))
	for i, m := range media {
		refs[i] = models.ImageRef("note/u1/" + m.Name)
	}
	return refs, nil
}

type fakeFlags struct {
	mu     sync.Mutex
	values map[string]bool
}

func (f *fakeFlags) GetBool(_ context.Context, key string, def bool) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.values[key]; ok {
		return v, nil
	}
	return def, nil
}
func (f *fakeFlags) SetBool(_ context.Context, key string, v bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.values == nil {
		f.values = map[string]bool{}
	}
	f.values[key] = v
	return nil
}

type noPosition struct{}

func (noPosition) CurrentPosition(context.Context) (models.Coordinates, error) {
	return models.Coordinates{}, context.DeadlineExceeded
}

type noGeocoder struct{}

func (noGeocoder) ReverseGeocode(context.Context, float64, float64) (models.Place, error) {
	return models.Place{}, nil
}

type testApp struct {
	*App
	buf      *bytes.Buffer
	auth     *fakeAuth
	entries  *fakeEntries
	profiles *fakeProfiles
	media    *fakeMedia
	flags    *fakeFlags
}

func newTestApp(input string) *testApp {
	buf := &bytes.Buffer{}
	ta := &testApp{
		buf:      buf,
		auth:     &fakeAuth{},
		entries:  &fakeEntries{receipt: models.Receipt{Code: 0, EntryID: "e-1"}},
		profiles: &fakeProfiles{},
		media:    &fakeMedia{},
		flags:    &fakeFlags{},
	}
	ta.App = &App{
		config:       &config.Config{OnlineCheckInterval: time.Hour},
		log:          logging.Nop(),
		authService:  ta.auth,
		entryService: ta.entries,
		profiles:     ta.profiles,
		media:        ta.media,
		flags:        ta.flags,
		position:     noPosition{},
		geocoder:     noGeocoder{},
		reader:       bufio.NewReader(strings.NewReader(input)),
		out:          buf,
	}
	return ta
}

func (ta *testApp) loggedIn() *testApp {
	ta.profiles.profile = &models.Profile{Id: "u1", Username: "alice", Status: 200}
	return ta
}
