package contracts

import (
	"context"
	"io"
	"net/url"
)

// TokenSource hands the backend client the bearer token of the current session.
type TokenSource interface {
	AccessToken(ctx context.Context) (tokenType, token string)
	InvalidateToken(ctx context.Context) error
}

type BackendClient interface {
	Get(ctx context.Context, path string, query url.Values, out interface{}) error
	Post(ctx context.Context, path string, body, out interface{}) error
	Put(ctx context.Context, path string, body, out interface{}) error
	PostMultipart(ctx context.Context, path, fieldName, fileName string, file io.Reader, out interface{}) error
}
