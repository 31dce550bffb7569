// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoHTTPServer is returned by NewServer when no listen address or HTTP
// handler is configured.
var errNoHTTPServer = errors.New("http server is not configured")
