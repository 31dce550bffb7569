// Package http implements the HTTP transport layer of the site backend.
//
// It wires the chi router, the session cookie handling, the route guards
// that protect the admin API, and the middleware that traces, logs and
// compresses requests before they are delegated to the service layer.
package http
