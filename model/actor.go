// model/actor.go
package model

import "context"

type actorKey struct{}

// WithActor records the id of the user performing the request.
func WithActor(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, actorKey{}, userID)
}

// ActorFromContext returns the acting user id, or "" for system writes.
func ActorFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(actorKey{}).(string); ok {
		return id
	}
	return ""
}
