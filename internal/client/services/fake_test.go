package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/dmitrijs2005/diarykeeper/internal/client/client"
	"github.com/dmitrijs2005/diarykeeper/internal/client/models"
	"github.com/dmitrijs2005/diarykeeper/internal/logging"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func getMeta(t *testing.T, db *sql.DB, k string) []byte {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key=?`, k).Scan(&v)
	if err == sql.ErrNoRows {
		return nil
	}
	require.NoError(t, err)
	return v
}

func nopLog() logging.Logger { return logging.Nop() }

// ---- fake client ----

type fakeClient struct {
	mu sync.Mutex

	CloseErr    error
	RegisterErr error

	GetSaltRet []byte
	GetSaltErr error

	LoginRet *models.Profile
	LoginErr error

	PingErr error

	GetProfileRet *models.Profile
	GetProfileErr error

	UpdateProfileErr error

	CreateEntryRet *models.Receipt
	CreateEntryErr error

	PresignRet []client.PresignedUpload
	PresignErr error
	// PresignFn, when set, replaces PresignRet/PresignErr.
	PresignFn func(count int) ([]client.PresignedUpload, error)

	LastRegisterUser string
	LastRegisterSalt []byte
	LastRegisterKey  []byte

	LastLoginUser string
	LastLoginKey  []byte

	LastGetProfileID string

	LastUpdateUserID string
	LastUpdateStatus *int32
	LastUpdateSex    *int32

	LastSubmission *models.Submission

	PresignCalls   int
	LastPresignCnt int
	LastPresignCat string
	PresignCounts  []int
}

func (f *fakeClient) Close() error { return f.CloseErr }

func (f *fakeClient) Register(ctx context.Context, username string, salt []byte, key []byte) error {
	f.LastRegisterUser = username
	f.LastRegisterSalt = append([]byte(nil), salt...)
	f.LastRegisterKey = append([]byte(nil), key...)
	return f.RegisterErr
}

func (f *fakeClient) GetSalt(ctx context.Context, username string) ([]byte, error) {
	return append([]byte(nil), f.GetSaltRet...), f.GetSaltErr
}

func (f *fakeClient) Login(ctx context.Context, username string, key []byte) (*models.Profile, error) {
	f.LastLoginUser = username
	f.LastLoginKey = append([]byte(nil), key...)
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

func (f *fakeClient) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastGetProfileID = userID
	return f.GetProfileRet, f.GetProfileErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, userID string, status *int32, sex *int32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastUpdateUserID = userID
	f.LastUpdateStatus = status
	f.LastUpdateSex = sex
	return f.UpdateProfileErr
}

func (f *fakeClient) CreateEntry(ctx context.Context, sub models.Submission) (*models.Receipt, error) {
	f.LastSubmission = &sub
	return f.CreateEntryRet, f.CreateEntryErr
}

func (f *fakeClient) PresignUploads(ctx context.Context, count int, category string) ([]client.PresignedUpload, error) {
	f.PresignCalls++
	f.LastPresignCnt = count
	f.LastPresignCat = category
	f.PresignCounts = append(f.PresignCounts, count)
	if f.PresignFn != nil {
		return f.PresignFn(count)
	}
	return f.PresignRet, f.PresignErr
}
