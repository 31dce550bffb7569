// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/brand-showcase/internal/config"
	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/internal/store"
	"github.com/MKhiriev/brand-showcase/internal/utils"
	"github.com/MKhiriev/brand-showcase/models"
)

// sessionIDLength is the number of random bytes in a session id.
const sessionIDLength = 32

// sessionService implements SessionService.
//
// A session id is 32 random bytes. The client receives it only inside an
// HS256-signed ticket (the cookie value); the database stores
// HMAC-SHA256(id) so a leaked sessions table cannot be replayed.
type sessionService struct {
	sessionRepository store.SessionRepository
	userRepository    store.UserRepository

	secret string
	issuer string
	ttl    time.Duration

	now    func() time.Time
	random io.Reader

	logger *logger.Logger
}

// NewSessionService constructs a SessionService from the auth settings.
func NewSessionService(sessions store.SessionRepository, users store.UserRepository, cfg config.Auth, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessions,
		userRepository:    users,
		secret:            cfg.SessionSecret,
		issuer:            cfg.SessionIssuer,
		ttl:               cfg.SessionTTL,
		now:               time.Now,
		random:            rand.Reader,
		logger:            logger,
	}
}

func (s *sessionService) Establish(ctx context.Context, user models.User) (models.Session, error) {
	log := logger.FromContext(ctx)

	id, err := s.newSessionID()
	if err != nil {
		log.Err(err).Str("func", "*sessionService.Establish").Msg("error generating session id")
		return models.Session{}, fmt.Errorf("error generating session id: %w", err)
	}

	now := s.now().UTC()
	session := models.Session{
		ID:        id,
		Digest:    utils.HashString(id, s.secret),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	session.Token, err = utils.GenerateSessionTicket(s.issuer, id, session.CreatedAt, session.ExpiresAt, s.secret)
	if err != nil {
		log.Err(err).Str("func", "*sessionService.Establish").Msg("error signing session ticket")
		return models.Session{}, fmt.Errorf("error signing session ticket: %w", err)
	}

	if err = s.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Str("func", "*sessionService.Establish").Int64("user_id", user.ID).Msg("error persisting session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return session, nil
}

// Resolve never reports an unauthenticated request as a storage failure:
// only errors talking to the stores come back as [ErrStorage].
func (s *sessionService) Resolve(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.User{}, ErrSessionInvalid
	}

	id, err := utils.ParseSessionTicket(token, s.secret, s.issuer, s.now)
	if err != nil {
		log.Debug().Err(err).Str("func", "*sessionService.Resolve").Msg("rejected session ticket")
		return models.User{}, ErrSessionInvalid
	}

	session, err := s.sessionRepository.FindSession(ctx, utils.HashString(id, s.secret))
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.User{}, ErrSessionInvalid
	}
	if err != nil {
		log.Err(err).Str("func", "*sessionService.Resolve").Msg("error loading session")
		return models.User{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	// the row may outlive its expiry until swept
	if session.IsExpired(s.now()) {
		return models.User{}, ErrSessionInvalid
	}

	user, err := s.userRepository.FindUserByID(ctx, session.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrSessionInvalid
	}
	if err != nil {
		log.Err(err).Str("func", "*sessionService.Resolve").Msg("error loading session user")
		return models.User{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	if !user.IsActive {
		log.Warn().Str("func", "*sessionService.Resolve").Int64("user_id", user.ID).Msg("session of inactive user")
		return models.User{}, ErrSessionInvalid
	}

	return user, nil
}

func (s *sessionService) Destroy(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if token == "" {
		return nil
	}

	id, err := utils.ParseSessionTicket(token, s.secret, s.issuer, s.now)
	if err != nil {
		// nothing we issued, or already expired
		return nil
	}

	if err = s.sessionRepository.DeleteSession(ctx, utils.HashString(id, s.secret)); err != nil {
		log.Err(err).Str("func", "*sessionService.Destroy").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}

func (s *sessionService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.sessionRepository.DeleteExpiredSessions(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return n, nil
}

func (s *sessionService) newSessionID() (string, error) {
	b := make([]byte, sessionIDLength)
	if _, err := io.ReadFull(s.random, b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
