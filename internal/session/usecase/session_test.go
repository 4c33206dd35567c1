package usecase

import (
	"context"
	"errors"
	"testing"

	"insight-srv/internal/model"
	"insight-srv/internal/session"
	"insight-srv/internal/session/repository"
	"insight-srv/pkg/backend"
	"insight-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	snaps  map[string]session.Snapshot
	getErr error
}

func (c *fakeCache) GetSnapshot(_ context.Context, userID string) (*session.Snapshot, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	s, ok := c.snaps[userID]
	if !ok {
		return nil, repository.ErrCacheMiss
	}
	return &s, nil
}

func (c *fakeCache) SaveSnapshot(_ context.Context, userID string, s session.Snapshot) error {
	c.snaps[userID] = s
	return nil
}

func (c *fakeCache) DeleteSnapshot(_ context.Context, userID string) error {
	delete(c.snaps, userID)
	return nil
}

type fakeBackend struct {
	backend.IBackend
	session  *backend.Session
	profile  *backend.User
	sessions int
}

func (b *fakeBackend) FetchSession(context.Context, string) (*backend.Session, error) {
	b.sessions++
	return b.session, nil
}

func (b *fakeBackend) FetchProfile(context.Context, string) (*backend.User, error) {
	return b.profile, nil
}

var caller = model.Scope{UserID: "u1"}

func TestGet(t *testing.T) {
	tcs := map[string]struct {
		session   *backend.Session
		profile   *backend.User
		lang      string
		wantName  string
		wantEmail string
		wantAuth  bool
	}{
		"profile name wins": {
			session:   &backend.Session{Usuario: backend.User{ID: "u1", Nome: "Sessão", Email: "s@example.com"}},
			profile:   &backend.User{ID: "u1", Nome: "Ana", Email: "ana@example.com"},
			wantName:  "Ana",
			wantEmail: "ana@example.com",
			wantAuth:  true,
		},
		"profile email before session name": {
			session:   &backend.Session{Usuario: backend.User{ID: "u1", Nome: "Sessão"}},
			profile:   &backend.User{ID: "u1", Email: "ana@example.com"},
			wantName:  "ana@example.com",
			wantEmail: "ana@example.com",
			wantAuth:  true,
		},
		"session only": {
			session:   &backend.Session{Usuario: backend.User{ID: "u1", Email: "s@example.com"}},
			wantName:  "s@example.com",
			wantEmail: "s@example.com",
			wantAuth:  true,
		},
		"blank names": {
			session:  &backend.Session{Usuario: backend.User{ID: "u1", Nome: "  "}},
			profile:  &backend.User{ID: "u1"},
			wantName: "Utilizador",
			wantAuth: true,
		},
		"no session": {
			wantName: "Utilizador",
		},
		"no session in english": {
			lang:     "en-US",
			wantName: "User",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc := New(log.NewNop(), &fakeCache{snaps: map[string]session.Snapshot{}}, &fakeBackend{session: tc.session, profile: tc.profile})

			out, err := uc.Get(context.Background(), caller, session.GetInput{Token: "tok", Lang: tc.lang})
			require.NoError(t, err)

			assert.Equal(t, tc.wantAuth, out.Authenticated)
			assert.Equal(t, tc.wantName, out.DisplayName)
			assert.Equal(t, tc.wantEmail, out.DisplayEmail)
			if tc.wantAuth {
				require.NotNil(t, out.User)
				assert.Equal(t, "u1", out.User.ID)
			} else {
				assert.Nil(t, out.User)
			}
		})
	}
}

func TestGetUsesCache(t *testing.T) {
	cache := &fakeCache{snaps: map[string]session.Snapshot{}}
	be := &fakeBackend{session: &backend.Session{Usuario: backend.User{ID: "u1", Nome: "Ana"}}}
	uc := New(log.NewNop(), cache, be)

	for i := 0; i < 3; i++ {
		out, err := uc.Get(context.Background(), caller, session.GetInput{Token: "tok"})
		require.NoError(t, err)
		assert.Equal(t, "Ana", out.DisplayName)
	}
	assert.Equal(t, 1, be.sessions)

	require.NoError(t, uc.Logout(context.Background(), caller))
	_, err := uc.Get(context.Background(), caller, session.GetInput{Token: "tok"})
	require.NoError(t, err)
	assert.Equal(t, 2, be.sessions)
}

func TestGetWithBrokenCache(t *testing.T) {
	cache := &fakeCache{snaps: map[string]session.Snapshot{}, getErr: errors.New("redis down")}
	uc := New(log.NewNop(), cache, &fakeBackend{session: &backend.Session{Usuario: backend.User{ID: "u1", Nome: "Ana"}}})

	out, err := uc.Get(context.Background(), caller, session.GetInput{Token: "tok"})
	require.NoError(t, err)
	assert.True(t, out.Authenticated)
}

func TestGetRequiresToken(t *testing.T) {
	uc := New(log.NewNop(), &fakeCache{snaps: map[string]session.Snapshot{}}, &fakeBackend{})
	_, err := uc.Get(context.Background(), caller, session.GetInput{})
	assert.ErrorIs(t, err, session.ErrTokenRequired)
}
