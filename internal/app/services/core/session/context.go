package session

import (
	"context"
	"spectrumconnect-service/internal/pkg/constvars"
)

func WithStore(ctx context.Context, store *Store) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_SESSION_STORE_KEY, store)
}

// FromContext panics when no store is attached. Reading the session outside
// the session middleware is a programming error.
func FromContext(ctx context.Context) *Store {
	store, ok := ctx.Value(constvars.CONTEXT_SESSION_STORE_KEY).(*Store)
	if !ok || store == nil {
		panic("session: FromContext used outside of the session middleware")
	}
	return store
}
