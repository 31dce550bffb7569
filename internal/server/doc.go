// Package server runs the HTTP transport together with the background
// workers.
//
// It owns startup, signal handling and graceful shutdown: a stop signal
// drains in-flight requests within the configured shutdown timeout and then
// waits for every worker to return.
package server
