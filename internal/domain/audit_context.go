package domain

import "context"

type unlockRequestIDKey struct{}

// WithUnlockRequestID marks the request context with the unlock
// request that authorized a locked mutation. The value travels
// gate -> handler -> audit writer as an explicit argument, never as
// process-wide state, so concurrent requests cannot leak into each
// other's audit trail.
func WithUnlockRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, unlockRequestIDKey{}, id)
}

func UnlockRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(unlockRequestIDKey{}).(string)
	return id, ok
}
