package services

import (
	"context"
	"database/sql"
	"sync"

	"github.com/dmitrijs2005/diarykeeper/internal/common"
	"github.com/dmitrijs2005/diarykeeper/internal/dbx"
	"github.com/dmitrijs2005/diarykeeper/internal/server/models"
	"github.com/dmitrijs2005/diarykeeper/internal/server/repositories/entries"
	"github.com/dmitrijs2005/diarykeeper/internal/server/repositories/users"
)

type fakeUsersRepo struct {
	mu      sync.Mutex
	byName  map[string]*models.User
	created []*models.User
	err     error

	updates []profileUpdate
}

type profileUpdate struct {
	id          string
	status, sex *int32
}

func newFakeUsers(us ...*models.User) *fakeUsersRepo {
	f := &fakeUsersRepo{byName: map[string]*models.User{}}
	for _, u := range us {
		f.byName[u.UserName] = u
	}
	return f
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.byName[u.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}
	u.ID = "u-" + u.UserName
	f.byName[u.UserName] = u
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeUsersRepo) GetUserByLogin(_ context.Context, login string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byName[login]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byName {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) UpdateProfile(_ context.Context, id string, status, sex *int32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.updates = append(f.updates, profileUpdate{id: id, status: status, sex: sex})
	for _, u := range f.byName {
		if u.ID == id {
			if status != nil {
				u.Status = *status
			}
			if sex != nil {
				u.Sex = *sex
			}
			return nil
		}
	}
	return common.ErrorNotFound
}

type fakeEntriesRepo struct {
	created []*models.Entry
	err     error
}

func (f *fakeEntriesRepo) Create(_ context.Context, e *models.Entry) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, e)
	return nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	e *fakeEntriesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository             { return m.u }
func (m *fakeRepoManager) Entries(dbx.DBTX) entries.Repository         { return m.e }
