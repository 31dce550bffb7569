package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/brand-showcase/internal/crypto"
	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/internal/store"
	"github.com/MKhiriev/brand-showcase/internal/throttle"
	"github.com/MKhiriev/brand-showcase/models"
)

// authService is the concrete implementation of AuthService.
//
// A login attempt moves through four gates and stops at the first one that
// rejects it:
//
//	throttle check → credential lookup → password verification → session
//
// The throttle is consulted for two independent keys, the client address
// and the submitted username. Unknown users, wrong passwords and inactive
// accounts all end in the same LoginRejected outcome; only the logged
// reason tells them apart.
type authService struct {
	// userRepository looks up and creates accounts.
	userRepository store.UserRepository

	// sessionService establishes the session of a successful login.
	sessionService SessionService

	// hasher derives and verifies password hashes.
	hasher crypto.PasswordHasher

	// throttle counts failed attempts per identity key.
	throttle throttle.LoginThrottle

	// registrationDisabled turns Register into ErrRegistrationDisabled.
	registrationDisabled bool

	logger *logger.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(
	userRepository store.UserRepository,
	sessionService SessionService,
	hasher crypto.PasswordHasher,
	loginThrottle throttle.LoginThrottle,
	registrationDisabled bool,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:       userRepository,
		sessionService:       sessionService,
		hasher:               hasher,
		throttle:             loginThrottle,
		registrationDisabled: registrationDisabled,
		logger:               logger,
	}
}

func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	log := logger.FromContext(ctx)
	keys := throttleKeys(req)

	// gate 1: throttle. A locked key stops the attempt before any lookup.
	if retryAfter, locked := a.lockedFor(keys); locked {
		log.Warn().
			Str("func", "*authService.Login").
			Str("client", req.ClientAddress).
			Str("username", req.Username).
			Dur("retry_after", retryAfter).
			Msg("login attempt throttled")
		return models.LoginResult{Outcome: models.LoginRateLimited, RetryAfter: retryAfter}, nil
	}

	// gate 2: lookup
	user, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	found := err == nil
	if err != nil && !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("func", "*authService.Login").Msg("user lookup failed")
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	// gate 3: verification. Unknown users are verified against a decoy
	// hash so they take as long as a wrong password.
	encoded := crypto.DecoyHash
	if found {
		encoded = user.PasswordHash
	}
	ok, err := a.hasher.Verify(req.Password, encoded)
	if err != nil {
		log.Error().Err(err).Str("func", "*authService.Login").Int64("user_id", user.ID).Msg("stored password hash is malformed")
		ok = false
	}

	reason := models.RejectNone
	switch {
	case !found:
		reason = models.RejectUnknownUser
	case !ok:
		reason = models.RejectWrongPassword
	case !user.IsActive:
		reason = models.RejectInactive
	}

	if reason != models.RejectNone {
		for _, key := range keys {
			a.throttle.RecordFailure(key)
		}
		log.Warn().
			Str("func", "*authService.Login").
			Str("client", req.ClientAddress).
			Str("username", req.Username).
			Str("reason", string(reason)).
			Msg("login rejected")
		return models.LoginResult{Outcome: models.LoginRejected, Reason: reason}, nil
	}

	// gate 4: success
	for _, key := range keys {
		a.throttle.Clear(key)
	}

	session, err := a.sessionService.Establish(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Int64("user_id", user.ID).Msg("session establishment failed")
		return models.LoginResult{}, err
	}

	log.Info().Str("func", "*authService.Login").Int64("user_id", user.ID).Msg("user logged in")
	return models.LoginResult{
		Outcome: models.LoginSucceeded,
		User:    user.Public(),
		Session: session,
	}, nil
}

// Register creates an active admin account with a freshly hashed password
// and establishes its first session.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.User, models.Session, error) {
	log := logger.FromContext(ctx)

	if a.registrationDisabled {
		return models.User{}, models.Session{}, ErrRegistrationDisabled
	}

	if creds.Username == "" || creds.Password == "" {
		return models.User{}, models.Session{}, ErrInvalidDataProvided
	}

	hash, err := a.hasher.Hash(creds.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.User{}, models.Session{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     creds.Username,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsActive:     true,
	})
	if errors.Is(err, store.ErrLoginAlreadyExists) {
		return models.User{}, models.Session{}, ErrUsernameTaken
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("user creation failed")
		return models.User{}, models.Session{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	session, err := a.sessionService.Establish(ctx, user)
	if err != nil {
		return models.User{}, models.Session{}, err
	}

	log.Info().Str("func", "*authService.Register").Int64("user_id", user.ID).Msg("user registered")
	return user, session, nil
}

// lockedFor reports whether any key is locked and the longest wait among
// the locked ones.
func (a *authService) lockedFor(keys []string) (time.Duration, bool) {
	var (
		locked     bool
		retryAfter time.Duration
	)
	for _, key := range keys {
		if a.throttle.MayAttempt(key) {
			continue
		}
		locked = true
		retryAfter = max(retryAfter, a.throttle.RetryAfter(key))
	}
	return retryAfter, locked
}

func throttleKeys(req models.LoginRequest) []string {
	keys := []string{throttle.AddressKey(req.ClientAddress)}
	if req.Username != "" {
		keys = append(keys, throttle.UsernameKey(req.Username))
	}
	return keys
}
