package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// WriteJSON encodes data and writes it with the given status. HTML
// characters in strings are left unescaped, since about-page content and
// copyright text routinely contain them.
//
// Nothing is written to w until encoding succeeds; on failure the client
// gets a plain 500 and the returned error says why.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("encode response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}

// ClientAddress returns the host part of r.RemoteAddr. When the server runs
// behind a trusted proxy, chi's RealIP middleware has already rewritten
// RemoteAddr from X-Forwarded-For / X-Real-IP before this is called.
//
// An address without a port is returned unchanged; an empty address
// becomes "unknown" so throttle keys are never blank.
func ClientAddress(r *http.Request) string {
	addr := strings.TrimSpace(r.RemoteAddr)
	if addr == "" {
		return "unknown"
	}
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
