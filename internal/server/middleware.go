package server

import (
	"context"
	"crypto/subtle"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/transport"
)

// APIKeyMiddleware returns a middleware that validates the X-API-Key header
// on every routed request. An empty key disables authentication
// (pass-through). The healthz probe stays open because it is registered
// directly on the server mux, outside the middleware chain.
func APIKeyMiddleware(key string) middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req any) (any, error) {
			if key == "" {
				return handler(ctx, req)
			}

			tr, ok := transport.FromServerContext(ctx)
			if !ok {
				return nil, errors.InternalServer("NO_TRANSPORT", "no transport in context")
			}

			got := tr.RequestHeader().Get("X-API-Key")
			if got == "" {
				return nil, errors.Unauthorized("MISSING_API_KEY", "missing X-API-Key header")
			}

			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				return nil, errors.Unauthorized("INVALID_API_KEY", "invalid X-API-Key")
			}

			return handler(ctx, req)
		}
	}
}
