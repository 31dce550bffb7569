// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

const testHashKey = "test-secret-key"

func TestHashString_MatchesHMAC(t *testing.T) {
	got := HashString("session-id", testHashKey)

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write([]byte("session-id"))
	want := hex.EncodeToString(mac.Sum(nil))

	if got != want {
		t.Errorf("HashString mismatch:\n  got:  %s\n  want: %s", got, want)
	}
}

func TestHashString_Deterministic(t *testing.T) {
	if HashString("abc", testHashKey) != HashString("abc", testHashKey) {
		t.Error("same input must produce same digest")
	}
}

func TestHashString_DifferentKeys(t *testing.T) {
	if HashString("abc", "key-one") == HashString("abc", "key-two") {
		t.Error("different keys must produce different digests")
	}
}

func TestHashString_DifferentData(t *testing.T) {
	if HashString("abc", testHashKey) == HashString("abd", testHashKey) {
		t.Error("different data must produce different digests")
	}
}

func TestHashString_Length(t *testing.T) {
	if got := len(HashString("", testHashKey)); got != sha256.Size*2 {
		t.Errorf("expected %d hex chars, got %d", sha256.Size*2, got)
	}
}
