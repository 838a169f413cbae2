// Package services contains application services for the diarykeeper client.
// This file defines the authentication service: register, online login,
// liveness probe and the local session record.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/diarykeeper/internal/client/client"
	"github.com/dmitrijs2005/diarykeeper/internal/client/models"
	"github.com/dmitrijs2005/diarykeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/diarykeeper/internal/common"
	"github.com/dmitrijs2005/diarykeeper/internal/cryptox"
	"github.com/dmitrijs2005/diarykeeper/internal/dbx"
	"github.com/dmitrijs2005/diarykeeper/internal/logging"
)

// Session keys in the metadata store. Logout removes everything under
// sessionPrefix and leaves one-shot flags alone.
const (
	sessionPrefix      = "session."
	sessionUsernameKey = sessionPrefix + "username"
	sessionOwnerIDKey  = sessionPrefix + "owner_id"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create a new user on the server.
//   - OnlineLogin: authenticate, record the session locally and install the
//     caller profile into the ProfileService.
//   - Logout: forget the session and the cached profile.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) error
	OnlineLogin(ctx context.Context, username string, password []byte) (*models.Profile, error)
	CurrentUser(ctx context.Context) (string, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client   client.Client
	db       *sql.DB
	profiles *ProfileService
	log      logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and DB.
func NewAuthService(c client.Client, db *sql.DB, profiles *ProfileService, log logging.Logger) AuthService {
	return &authService{client: c, db: db, profiles: profiles, log: log.With("module", "auth")}
}

func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	salt := common.GenerateRandByteArray(cryptox.SaltSize)
	verifier := cryptox.VerifierFor(password, salt)

	if err := a.client.Register(ctx, username, salt, verifier); err != nil {
		return err
	}
	a.log.Info(ctx, "user registered", "username", username)
	return nil
}

// OnlineLogin derives the verifier from the server-provided salt, logs in and
// stores username and owner id in a single transaction.
func (a *authService) OnlineLogin(ctx context.Context, username string, password []byte) (*models.Profile, error) {
	salt, err := a.client.GetSalt(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get salt error: %w", err)
	}

	verifier := cryptox.VerifierFor(password, salt)

	profile, err := a.client.Login(ctx, username, verifier)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("login error: server returned no profile")
	}

	if err := a.saveSession(ctx, username, profile.Id); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	a.profiles.Set(profile)
	a.log.Info(ctx, "logged in", "username", username, "owner_id", profile.Id, "status", profile.Status)
	return profile, nil
}

func (a *authService) saveSession(ctx context.Context, username, ownerID string) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, sessionUsernameKey, []byte(username)); err != nil {
			return err
		}
		return repo.Set(ctx, sessionOwnerIDKey, []byte(ownerID))
	})
}

// CurrentUser returns the username of the recorded session, or
// client.ErrNotLoggedIn.
func (a *authService) CurrentUser(ctx context.Context) (string, error) {
	v, err := metadata.NewSQLiteRepository(a.db).Get(ctx, sessionUsernameKey)
	if err != nil {
		return "", err
	}
	if len(v) == 0 {
		return "", client.ErrNotLoggedIn
	}
	return string(v), nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.profiles.Clear()
	return metadata.NewSQLiteRepository(a.db).DeletePrefix(ctx, sessionPrefix)
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
