// Package lifecycle holds the shared start and stop budgets of fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook and the HTTP server shutdown.
const DefaultTimeout = 15 * time.Second
