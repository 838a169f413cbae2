package grpc

import (
	"context"

	"github.com/dmitrijs2005/diarykeeper/internal/logging"
	"github.com/dmitrijs2005/diarykeeper/internal/server/models"
	"github.com/dmitrijs2005/diarykeeper/internal/server/services"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// ---- fakes ----

type fakeUsers struct {
	regResp *models.User
	regErr  error

	saltResp []byte
	saltErr  error

	loginResp *services.LoginResult
	loginErr  error

	profile    *models.User
	profileErr error
	profileFor string

	updateErr   error
	updatedID   string
	updatedStat *int32
	updatedSex  *int32
}

func (f *fakeUsers) Register(context.Context, string, []byte, []byte) (*models.User, error) {
	return f.regResp, f.regErr
}
func (f *fakeUsers) GetSalt(context.Context, string) ([]byte, error) { return f.saltResp, f.saltErr }
func (f *fakeUsers) Login(context.Context, string, []byte) (*services.LoginResult, error) {
	return f.loginResp, f.loginErr
}
func (f *fakeUsers) GetProfile(_ context.Context, userID string) (*models.User, error) {
	f.profileFor = userID
	return f.profile, f.profileErr
}
func (f *fakeUsers) UpdateProfile(_ context.Context, userID string, status, sex *int32) error {
	f.updatedID, f.updatedStat, f.updatedSex = userID, status, sex
	return f.updateErr
}

type fakeEntries struct {
	res    *services.CreateResult
	err    error
	userID string
	got    *models.Entry
}

func (f *fakeEntries) Create(_ context.Context, userID string, e *models.Entry) (*services.CreateResult, error) {
	f.userID, f.got = userID, e
	return f.res, f.err
}

type fakeMedia struct {
	slots    []services.PresignedUpload
	err      error
	owner    string
	category string
	count    int
}

func (f *fakeMedia) Presign(_ context.Context, ownerID, category string, count int) ([]services.PresignedUpload, error) {
	f.owner, f.category, f.count = ownerID, category, count
	return f.slots, f.err
}

func newTestServer(secret string, u *fakeUsers, e *fakeEntries, m *fakeMedia) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", nopLogger{}, u, e, m, secret)
}
