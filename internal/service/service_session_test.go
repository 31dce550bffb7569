package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/brand-showcase/internal/config"
	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/internal/mock"
	"github.com/MKhiriev/brand-showcase/internal/store"
	"github.com/MKhiriev/brand-showcase/internal/utils"
	"github.com/MKhiriev/brand-showcase/models"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type sessionFixture struct {
	svc      *sessionService
	sessions *mock.MockSessionRepository
	users    *mock.MockUserRepository
	clock    *time.Time
}

func newSessionFixture(t *testing.T) sessionFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockSessionRepository(ctrl)
	users := mock.NewMockUserRepository(ctrl)

	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewSessionService(sessions, users, config.Auth{
		SessionSecret: testSecret,
		SessionIssuer: "brand-showcase",
		SessionTTL:    8 * time.Hour,
	}, logger.Nop()).(*sessionService)
	svc.now = func() time.Time { return clock }

	return sessionFixture{svc: svc, sessions: sessions, users: users, clock: &clock}
}

// establish creates a session through the service and returns it together
// with the row the repository received.
func (f sessionFixture) establish(t *testing.T, user models.User) models.Session {
	t.Helper()
	var stored models.Session
	f.sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.Session) error {
			stored = s
			return nil
		})

	session, err := f.svc.Establish(context.Background(), user)
	require.NoError(t, err)
	require.Equal(t, stored.Digest, session.Digest)
	return session
}

func TestEstablish(t *testing.T) {
	f := newSessionFixture(t)
	session := f.establish(t, storedAdmin)

	assert.Len(t, session.ID, 43, "32 bytes, base64 without padding")
	assert.Equal(t, utils.HashString(session.ID, testSecret), session.Digest)
	assert.NotContains(t, session.Token, session.ID, "raw id only travels inside the signed ticket")
	assert.Equal(t, int64(1), session.UserID)
	assert.Equal(t, *f.clock, session.CreatedAt)
	assert.Equal(t, f.clock.Add(8*time.Hour), session.ExpiresAt)
}

func TestEstablish_UniqueIDs(t *testing.T) {
	f := newSessionFixture(t)
	a := f.establish(t, storedAdmin)
	b := f.establish(t, storedAdmin)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.Token, b.Token)
}

func TestEstablish_StorageError(t *testing.T) {
	f := newSessionFixture(t)
	f.sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	_, err := f.svc.Establish(context.Background(), storedAdmin)
	assert.ErrorIs(t, err, ErrStorage)
}

func TestEstablish_RandomSourceFailure(t *testing.T) {
	f := newSessionFixture(t)
	f.svc.random = bytes.NewReader(nil)

	_, err := f.svc.Establish(context.Background(), storedAdmin)
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	f := newSessionFixture(t)
	session := f.establish(t, storedAdmin)
	ctx := context.Background()

	f.sessions.EXPECT().FindSession(ctx, session.Digest).Return(session, nil)
	f.users.EXPECT().FindUserByID(ctx, int64(1)).Return(storedAdmin, nil)

	user, err := f.svc.Resolve(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, storedAdmin, user)
}

func TestResolve_Invalid(t *testing.T) {
	inactive := storedAdmin
	inactive.IsActive = false

	tests := []struct {
		name  string
		setup func(f sessionFixture, s models.Session) string
	}{
		{
			name:  "empty token",
			setup: func(sessionFixture, models.Session) string { return "" },
		},
		{
			name:  "garbage token",
			setup: func(sessionFixture, models.Session) string { return "not-a-ticket" },
		},
		{
			name: "tampered token",
			setup: func(_ sessionFixture, s models.Session) string {
				return s.Token[:len(s.Token)-2] + "xx"
			},
		},
		{
			name: "signed with another secret",
			setup: func(_ sessionFixture, s models.Session) string {
				tok, _ := utils.GenerateSessionTicket("brand-showcase", s.ID, s.CreatedAt, s.ExpiresAt, "another-secret-another-secret-00")
				return tok
			},
		},
		{
			name: "ticket past expiry",
			setup: func(f sessionFixture, s models.Session) string {
				*f.clock = f.clock.Add(8 * time.Hour)
				return s.Token
			},
		},
		{
			name: "row deleted",
			setup: func(f sessionFixture, s models.Session) string {
				f.sessions.EXPECT().FindSession(gomock.Any(), s.Digest).Return(models.Session{}, store.ErrSessionNotFound)
				return s.Token
			},
		},
		{
			name: "row expired",
			setup: func(f sessionFixture, s models.Session) string {
				s.ExpiresAt = *f.clock
				f.sessions.EXPECT().FindSession(gomock.Any(), s.Digest).Return(s, nil)
				return s.Token
			},
		},
		{
			name: "user removed",
			setup: func(f sessionFixture, s models.Session) string {
				f.sessions.EXPECT().FindSession(gomock.Any(), s.Digest).Return(s, nil)
				f.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{}, store.ErrNoUserWasFound)
				return s.Token
			},
		},
		{
			name: "user deactivated",
			setup: func(f sessionFixture, s models.Session) string {
				f.sessions.EXPECT().FindSession(gomock.Any(), s.Digest).Return(s, nil)
				f.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(inactive, nil)
				return s.Token
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSessionFixture(t)
			session := f.establish(t, storedAdmin)
			token := tt.setup(f, session)

			_, err := f.svc.Resolve(context.Background(), token)
			assert.ErrorIs(t, err, ErrSessionInvalid)
			assert.NotErrorIs(t, err, ErrStorage)
		})
	}
}

func TestResolve_StorageErrors(t *testing.T) {
	t.Run("session lookup", func(t *testing.T) {
		f := newSessionFixture(t)
		session := f.establish(t, storedAdmin)
		f.sessions.EXPECT().FindSession(gomock.Any(), session.Digest).Return(models.Session{}, errors.New("timeout"))

		_, err := f.svc.Resolve(context.Background(), session.Token)
		assert.ErrorIs(t, err, ErrStorage)
	})

	t.Run("user lookup", func(t *testing.T) {
		f := newSessionFixture(t)
		session := f.establish(t, storedAdmin)
		f.sessions.EXPECT().FindSession(gomock.Any(), session.Digest).Return(session, nil)
		f.users.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{}, errors.New("timeout"))

		_, err := f.svc.Resolve(context.Background(), session.Token)
		assert.ErrorIs(t, err, ErrStorage)
	})
}

func TestDestroy(t *testing.T) {
	f := newSessionFixture(t)
	session := f.establish(t, storedAdmin)
	ctx := context.Background()

	f.sessions.EXPECT().DeleteSession(ctx, session.Digest).Return(nil)
	require.NoError(t, f.svc.Destroy(ctx, session.Token))

	f.sessions.EXPECT().FindSession(ctx, session.Digest).Return(models.Session{}, store.ErrSessionNotFound)
	_, err := f.svc.Resolve(ctx, session.Token)
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestDestroy_IgnoresUnknownTokens(t *testing.T) {
	f := newSessionFixture(t)
	// no repository call expected
	assert.NoError(t, f.svc.Destroy(context.Background(), ""))
	assert.NoError(t, f.svc.Destroy(context.Background(), "junk"))
}

func TestDestroy_StorageError(t *testing.T) {
	f := newSessionFixture(t)
	session := f.establish(t, storedAdmin)
	f.sessions.EXPECT().DeleteSession(gomock.Any(), session.Digest).Return(errors.New("locked"))

	assert.ErrorIs(t, f.svc.Destroy(context.Background(), session.Token), ErrStorage)
}

func TestPurgeExpired(t *testing.T) {
	f := newSessionFixture(t)
	f.sessions.EXPECT().DeleteExpiredSessions(gomock.Any(), *f.clock).Return(int64(3), nil)

	n, err := f.svc.PurgeExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	f.sessions.EXPECT().DeleteExpiredSessions(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("boom"))
	_, err = f.svc.PurgeExpired(context.Background())
	assert.ErrorIs(t, err, ErrStorage)
}
