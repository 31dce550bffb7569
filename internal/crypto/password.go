// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	// scrypt cost parameters. They match the defaults the site's accounts
	// were originally hashed with, so existing rows keep verifying.
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64

	saltLength    = 16
	hashSeparator = "."
)

// DecoyHash is a well-formed encoded hash that matches no password. Verifying
// against it costs the same as a real verification, which keeps unknown
// usernames from answering faster than wrong passwords.
const DecoyHash = "43c60c66bd1a79d5431f17b6b654391870fc1bc8841d0db2a05bc7532ddea8db" +
	"781f50f60a1d7eb7005f3dfeed70e916b9d3b8246716454ee225233eebcfcf1f" +
	hashSeparator + "06eeaaf2965639c97e483d3dcd2b86c2"

// scryptHasher is the scrypt-backed implementation of [PasswordHasher].
type scryptHasher struct {
	n, r, p int
	keyLen  int
	random  io.Reader
}

// NewPasswordHasher returns a [PasswordHasher] using scrypt with
// N=16384, r=8, p=1 and a 64-byte derived key.
func NewPasswordHasher() PasswordHasher {
	return &scryptHasher{
		n:      scryptN,
		r:      scryptR,
		p:      scryptP,
		keyLen: scryptKeyLen,
		random: rand.Reader,
	}
}

// Hash implements [PasswordHasher].
//
// The salt is 16 random bytes, hex encoded. The hex text itself is fed to
// the KDF as the salt, which is how the existing records were produced.
func (h *scryptHasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return "", fmt.Errorf("%w: %w", ErrSaltGeneration, err)
	}
	saltHex := hex.EncodeToString(salt)

	key, err := h.derive(password, saltHex)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(key) + hashSeparator + saltHex, nil
}

// Verify implements [PasswordHasher]. The derived key is compared in
// constant time.
func (h *scryptHasher) Verify(password, encodedHash string) (bool, error) {
	keyHex, saltHex, ok := strings.Cut(encodedHash, hashSeparator)
	if !ok || keyHex == "" || saltHex == "" || strings.Contains(saltHex, hashSeparator) {
		return false, ErrMalformedHash
	}

	stored, err := hex.DecodeString(keyHex)
	if err != nil || len(stored) != h.keyLen {
		return false, ErrMalformedHash
	}
	if _, err = hex.DecodeString(saltHex); err != nil {
		return false, ErrMalformedHash
	}

	candidate, err := h.derive(password, saltHex)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(stored, candidate) == 1, nil
}

func (h *scryptHasher) derive(password, saltHex string) ([]byte, error) {
	key, err := scrypt.Key([]byte(password), []byte(saltHex), h.n, h.r, h.p, h.keyLen)
	if err != nil {
		return nil, fmt.Errorf("scrypt key derivation failed: %w", err)
	}
	return key, nil
}
