package handler

import "errors"

// ErrNoListenAddress is returned by NewHandlers when the server has no HTTP
// listen address and would have nothing to serve.
var ErrNoListenAddress = errors.New("handler: http listen address is not configured")
