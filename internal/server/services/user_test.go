package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/diarykeeper/internal/common"
	"github.com/dmitrijs2005/diarykeeper/internal/cryptox"
	"github.com/dmitrijs2005/diarykeeper/internal/server/auth"
	"github.com/dmitrijs2005/diarykeeper/internal/server/config"
	"github.com/dmitrijs2005/diarykeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(u *fakeUsersRepo) *UserService {
	cfg := &config.Config{SecretKey: "k", AccessTokenValidityDuration: time.Hour}
	return NewUserService(nil, &fakeRepoManager{u: u, e: &fakeEntriesRepo{}}, cfg)
}

func TestRegister_StartsIncomplete(t *testing.T) {
	repo := newFakeUsers()
	s := newUserService(repo)

	u, err := s.Register(context.Background(), "alice", []byte("salt"), []byte("ver"))
	require.NoError(t, err)
	assert.Equal(t, "u-alice", u.ID)
	assert.Equal(t, common.StatusProfileIncomplete, u.Status)
	assert.Equal(t, int32(0), u.Sex)
}

func TestRegister_Errors(t *testing.T) {
	repo := newFakeUsers(&models.User{ID: "u-alice", UserName: "alice"})
	s := newUserService(repo)

	_, err := s.Register(context.Background(), "alice", []byte("s"), []byte("v"))
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	_, err = s.Register(context.Background(), "", []byte("s"), []byte("v"))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	repo.err = errors.New("db down")
	_, err = s.Register(context.Background(), "bob", []byte("s"), []byte("v"))
	assert.ErrorContains(t, err, "error creating user")
}

func TestGetSalt(t *testing.T) {
	repo := newFakeUsers(&models.User{ID: "u-alice", UserName: "alice", Salt: []byte("alice-salt")})
	s := newUserService(repo)

	salt, err := s.GetSalt(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, []byte("alice-salt"), salt)

	random, err := s.GetSalt(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Len(t, random, cryptox.SaltSize)

	repo.err = errors.New("db down")
	_, err = s.GetSalt(context.Background(), "alice")
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestLogin(t *testing.T) {
	verifier := cryptox.VerifierFor([]byte("pw"), []byte("salt"))
	repo := newFakeUsers(&models.User{ID: "u-alice", UserName: "alice", Salt: []byte("salt"), Verifier: verifier, Status: 502})
	s := newUserService(repo)

	res, err := s.Login(context.Background(), "alice", cryptox.VerifierFor([]byte("pw"), []byte("salt")))
	require.NoError(t, err)
	assert.Equal(t, int32(502), res.User.Status)

	uid, err := auth.GetUserIDFromToken(res.AccessToken, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, "u-alice", uid)

	_, err = s.Login(context.Background(), "alice", []byte("wrong"))
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.Login(context.Background(), "ghost", verifier)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	repo.err = errors.New("db down")
	_, err = s.Login(context.Background(), "alice", verifier)
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestProfile_GetAndUpdate(t *testing.T) {
	repo := newFakeUsers(&models.User{ID: "u-alice", UserName: "alice", Status: 502})
	s := newUserService(repo)
	ctx := context.Background()

	status := common.StatusWroteFirstEntry
	require.NoError(t, s.UpdateProfile(ctx, "u-alice", &status, nil))

	u, err := s.GetProfile(ctx, "u-alice")
	require.NoError(t, err)
	assert.Equal(t, common.StatusWroteFirstEntry, u.Status)

	require.NoError(t, s.UpdateProfile(ctx, "u-alice", nil, nil))
	assert.Len(t, repo.updates, 1, "empty update must not reach storage")

	neg := int32(-1)
	assert.ErrorIs(t, s.UpdateProfile(ctx, "u-alice", nil, &neg), ErrInvalidArgument)

	assert.ErrorIs(t, s.UpdateProfile(ctx, "u-ghost", &status, nil), common.ErrorNotFound)
	_, err = s.GetProfile(ctx, "u-ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
