// Package workers runs the background jobs of the server next to the HTTP
// transport. Every worker stops when the context passed to Run is
// cancelled.
package workers

import "context"

// Worker is a long-running background job. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
