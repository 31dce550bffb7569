package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString returns the hex-encoded HMAC-SHA256 of data keyed by hashKey.
//
// Session identifiers are never stored as-is: the sessions table is keyed
// by HashString(sessionID, secret), so a leaked table cannot be replayed
// as cookies.
func HashString(data, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
