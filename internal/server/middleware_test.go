package server

import (
	"context"
	"net/http"
	"testing"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type headerCarrier http.Header

func (hc headerCarrier) Get(key string) string      { return http.Header(hc).Get(key) }
func (hc headerCarrier) Set(key, value string)      { http.Header(hc).Set(key, value) }
func (hc headerCarrier) Add(key, value string)      { http.Header(hc).Add(key, value) }
func (hc headerCarrier) Values(key string) []string { return http.Header(hc).Values(key) }

func (hc headerCarrier) Keys() []string {
	keys := make([]string, 0, len(hc))
	for k := range hc {
		keys = append(keys, k)
	}
	return keys
}

type testTransport struct {
	header headerCarrier
}

func (t *testTransport) Kind() transport.Kind            { return transport.KindHTTP }
func (t *testTransport) Endpoint() string                { return "" }
func (t *testTransport) Operation() string               { return "" }
func (t *testTransport) RequestHeader() transport.Header { return t.header }
func (t *testTransport) ReplyHeader() transport.Header   { return t.header }

func callWithKey(t *testing.T, configured, presented string) error {
	t.Helper()

	hdr := headerCarrier{}
	if presented != "" {
		hdr.Set("X-API-Key", presented)
	}
	ctx := transport.NewServerContext(context.Background(), &testTransport{header: hdr})

	next := func(ctx context.Context, req any) (any, error) { return "ok", nil }
	_, err := APIKeyMiddleware(configured)(next)(ctx, nil)
	return err
}

func TestAPIKeyMiddleware(t *testing.T) {
	t.Run("test empty key passes through", func(t *testing.T) {
		assert.NoError(t, callWithKey(t, "", ""))
	})

	t.Run("test matching key accepted", func(t *testing.T) {
		assert.NoError(t, callWithKey(t, "s3cret", "s3cret"))
	})

	t.Run("test missing key rejected", func(t *testing.T) {
		err := callWithKey(t, "s3cret", "")
		require.Error(t, err)
		assert.True(t, kerrors.IsUnauthorized(err))
	})

	t.Run("test wrong key rejected", func(t *testing.T) {
		err := callWithKey(t, "s3cret", "nope")
		require.Error(t, err)
		assert.True(t, kerrors.IsUnauthorized(err))
	})

	t.Run("test no transport in context", func(t *testing.T) {
		next := func(ctx context.Context, req any) (any, error) { return "ok", nil }
		_, err := APIKeyMiddleware("s3cret")(next)(context.Background(), nil)
		assert.Error(t, err)
	})
}
