package backend

import "context"

type teardownKey struct{}

// WithTeardown attaches the session-teardown hook for the request. The
// client invokes it when the remote API answers 401 on anything except a
// constraint-guarded delete, so an expired token takes its session down
// no matter which call exposed it.
func WithTeardown(ctx context.Context, fn func()) context.Context {
	return context.WithValue(ctx, teardownKey{}, fn)
}

func teardownFrom(ctx context.Context) func() {
	fn, _ := ctx.Value(teardownKey{}).(func())
	return fn
}
