package session

import "go.uber.org/fx"

// Module provides the per-session entity store. The service runs one
// dashboard session per process, so the store lives for the process.
var Module = fx.Provide(NewStore)
