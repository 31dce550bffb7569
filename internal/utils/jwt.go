package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTicket is returned when a session ticket fails signature,
// issuer, expiry or shape checks.
var ErrInvalidTicket = errors.New("invalid session ticket")

// GenerateSessionTicket wraps a session identifier into a signed
// HMAC-SHA256 JWT that is used as the session cookie value.
//
// The token carries the following registered claims:
//   - Issuer    (iss): identifies the service that issued the ticket
//   - ID        (jti): the opaque session identifier
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): expiresAt
//
// The ticket only proves the cookie was minted by this server; the session
// row remains the authority on whether it is still valid.
func GenerateSessionTicket(issuer, sessionID string, issuedAt, expiresAt time.Time, signKey string) (string, error) {
	if issuer == "" || sessionID == "" || signKey == "" || !expiresAt.After(issuedAt) {
		return "", errors.New("invalid params for generating session ticket")
	}

	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		ID:        sessionID,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing session ticket: %w", err)
	}

	return signed, nil
}

// ParseSessionTicket validates a ticket produced by GenerateSessionTicket
// and returns the session identifier it carries. now is used as the clock
// for the expiry check.
//
// Any failure is reported as ErrInvalidTicket wrapping the parser error.
func ParseSessionTicket(ticket, signKey, issuer string, now func() time.Time) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if now != nil {
		opts = append(opts, jwt.WithTimeFunc(now))
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(ticket, claims, func(*jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidTicket, err)
	}

	if claims.ID == "" {
		return "", fmt.Errorf("%w: empty session id", ErrInvalidTicket)
	}

	return claims.ID, nil
}
