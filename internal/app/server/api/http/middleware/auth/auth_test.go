package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

type pingOutput struct {
	Body struct {
		OK bool `json:"ok"`
	}
}

func newTestAPI(t *testing.T, apiKey string) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)

	mw := New(apiKey, slog.Default())
	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Middlewares: huma.Middlewares{mw.Middleware()},
	}, func(ctx context.Context, _ *struct{}) (*pingOutput, error) {
		out := &pingOutput{}
		out.Body.OK = true
		return out, nil
	})
	return api
}

func TestAuth_Middleware(t *testing.T) {
	tests := []struct {
		name     string
		apiKey   string
		header   []any
		wantCode int
		wantBody string
	}{
		{
			name:     "disabled without key",
			wantCode: http.StatusOK,
		},
		{
			name:     "valid key",
			apiKey:   "k1",
			header:   []any{"x-api-key: k1"},
			wantCode: http.StatusOK,
		},
		{
			name:     "missing key",
			apiKey:   "k1",
			wantCode: http.StatusUnauthorized,
			wantBody: "Missing API key.",
		},
		{
			name:     "wrong key",
			apiKey:   "k1",
			header:   []any{"x-api-key: k2"},
			wantCode: http.StatusUnauthorized,
			wantBody: "Invalid API key.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t, tt.apiKey)

			resp := api.Get("/ping", tt.header...)

			assert.Equal(t, tt.wantCode, resp.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, `{"error":"`+tt.wantBody+`"}`, resp.Body.String())
			}
		})
	}
}
