package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/ai-one-api/internal/logger"
	"github.com/MKhiriev/ai-one-api/internal/utils"
)

func newBareHandler(log *logger.Logger) *Handler {
	return &Handler{
		cfg:      testServerConfig(),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   log,
	}
}

// ─────────────────────────────────────────────
// Trace id
// ─────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		keepSent bool
	}{
		{name: "client id is kept", header: "req-123", keepSent: true},
		{name: "missing id is generated", header: ""},
		{name: "id with spaces is replaced", header: "a b"},
		{name: "overlong id is replaced", header: strings.Repeat("x", maxTraceIDLen+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newBareHandler(logger.Nop())

			var ctxTraceID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, ok := utils.GetTraceIDFromContext(r.Context())
				require.True(t, ok)
				ctxTraceID = id
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(traceIDHeader, tt.header)
			}
			rr := serve(h.withTraceID(next), req)

			got := rr.Header().Get(traceIDHeader)
			assert.Equal(t, ctxTraceID, got)
			if tt.keepSent {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
				assert.Len(t, got, 36)
			}
		})
	}
}

func TestWithTraceID_AddsFieldToRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	h := newBareHandler(&logger.Logger{Logger: zerolog.New(&buf)})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-abc")
	serve(h.withTraceID(next), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "trace-abc", entry["trace_id"])
}

func TestIsValidTraceID(t *testing.T) {
	assert.True(t, isValidTraceID("0191e0b8-8c4e-7c9a-9f00-8c1f5b6b2a10"))
	assert.True(t, isValidTraceID(strings.Repeat("z", maxTraceIDLen)))
	assert.False(t, isValidTraceID(""))
	assert.False(t, isValidTraceID("tab\there"))
	assert.False(t, isValidTraceID("ünïcode"))
}

// ─────────────────────────────────────────────
// Logging
// ─────────────────────────────────────────────

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus float64
		wantSize   float64
	}{
		{
			name: "explicit status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
				_, _ = w.Write([]byte("short"))
			},
			wantStatus: http.StatusTeapot,
			wantSize:   5,
		},
		{
			name:       "nothing written",
			handler:    func(w http.ResponseWriter, r *http.Request) {},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reqLog := zerolog.New(&buf)
			h := newBareHandler(logger.Nop())

			req := httptest.NewRequest(http.MethodPost, "/notes/?skip=1", nil)
			req = req.WithContext(reqLog.WithContext(req.Context()))
			serve(h.withLogging(tt.handler), req)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "/notes/?skip=1", entry["uri"])
			assert.Equal(t, http.MethodPost, entry["method"])
			assert.Equal(t, req.RemoteAddr, entry["remote_addr"])
			assert.Equal(t, tt.wantStatus, entry["status"])
			assert.Equal(t, tt.wantSize, entry["size"])
			assert.Contains(t, entry, "duration")
		})
	}
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	w.WriteHeader(http.StatusInternalServerError)
	_, err = w.Write([]byte("de"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Same(t, rec, w.Unwrap())
}

// ─────────────────────────────────────────────
// Gzip
// ─────────────────────────────────────────────

func gunzip(t *testing.T, b []byte) string {
	t.Helper()
	r, err := gzip.NewReader(bytes.NewReader(b))
	require.NoError(t, err)
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestWithGZip_CompressesJSON(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, messageResponse{Message: "hi"}, http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rr := serve(withGZip(next), req)

	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
	assert.JSONEq(t, `{"message":"hi"}`, gunzip(t, rr.Body.Bytes()))
}

func TestWithGZip_PassThrough(t *testing.T) {
	tests := []struct {
		name    string
		accept  string
		handler http.HandlerFunc
		want    string
	}{
		{
			name:   "client does not accept gzip",
			accept: "",
			handler: func(w http.ResponseWriter, r *http.Request) {
				utils.WriteJSON(w, messageResponse{Message: "hi"}, http.StatusOK)
			},
			want: `{"message":"hi"}`,
		},
		{
			name:   "no content",
			accept: "gzip",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			want: "",
		},
		{
			name:   "binary content",
			accept: "gzip",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "image/png")
				_, _ = w.Write([]byte("png"))
			},
			want: "png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.accept != "" {
				req.Header.Set("Accept-Encoding", tt.accept)
			}
			rr := serve(withGZip(tt.handler), req)

			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.want, strings.TrimSpace(rr.Body.String()))
		})
	}
}

func TestWithGZip_DecompressesRequestBody(t *testing.T) {
	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	_, err := zw.Write([]byte(`{"title":"zipped"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got = string(b)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	})

	req := httptest.NewRequest(http.MethodPost, "/notes/", &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	serve(withGZip(next), req)

	assert.Equal(t, `{"title":"zipped"}`, got)
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not be called")
	})

	req := httptest.NewRequest(http.MethodPost, "/notes/", strings.NewReader("plain text"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := serve(withGZip(next), req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ─────────────────────────────────────────────
// Rate limiting
// ─────────────────────────────────────────────

func TestRateLimiter_Disabled(t *testing.T) {
	var nilLimiter *RateLimiter
	assert.True(t, nilLimiter.Allow("1.2.3.4"))

	l := NewRateLimiter(0, 1, logger.Nop())
	for i := 0; i < 100; i++ {
		require.True(t, l.Allow("1.2.3.4"))
	}
}

func TestRateLimiter_PerClient(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewRateLimiter(1, 2, logger.Nop())
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"), "other clients have their own bucket")

	now = now.Add(time.Second)
	assert.True(t, l.Allow("a"), "one token is refilled after a second")
	assert.False(t, l.Allow("a"))
}

func TestRateLimiter_RetryAfter(t *testing.T) {
	assert.Equal(t, 1, NewRateLimiter(10, 1, logger.Nop()).retryAfter())
	assert.Equal(t, 1, NewRateLimiter(1, 1, logger.Nop()).retryAfter())
	assert.Equal(t, 4, NewRateLimiter(0.25, 1, logger.Nop()).retryAfter())
}

func TestRateLimiter_Cleanup(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewRateLimiter(5, 5, logger.Nop())
	l.now = func() time.Time { return now }

	l.Allow("idle")
	now = now.Add(2 * time.Minute)
	l.Allow("active")

	now = now.Add(90 * time.Second)
	assert.Equal(t, 1, l.cleanup())

	_, idle := l.visitors.Load("idle")
	_, active := l.visitors.Load("active")
	assert.False(t, idle)
	assert.True(t, active)
}

func TestRateLimiter_RunStopsWithContext(t *testing.T) {
	l := NewRateLimiter(5, 5, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	l.Run(ctx)
	cancel()

	// a disabled limiter starts nothing
	NewRateLimiter(0, 1, logger.Nop()).Run(context.Background())
}

func TestWithRateLimit(t *testing.T) {
	l := NewRateLimiter(0.5, 1, logger.Nop())
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := l.withRateLimit(next)

	newReq := func(addr string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		return req
	}

	assert.Equal(t, http.StatusOK, serve(handler, newReq("10.0.0.1:5000")).Code)

	rr := serve(handler, newReq("10.0.0.1:5001"))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "2", rr.Header().Get("Retry-After"))
	assert.Equal(t, rateLimitDetail, decodeResponse[errorResponse](t, rr).Detail)

	assert.Equal(t, http.StatusOK, serve(handler, newReq("10.0.0.2:5000")).Code)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	req.RemoteAddr = "192.0.2.7:4312"
	assert.Equal(t, "192.0.2.7", clientIP(req))

	req.RemoteAddr = "[2001:db8::1]:443"
	assert.Equal(t, "2001:db8::1", clientIP(req))

	req.RemoteAddr = "203.0.113.9"
	assert.Equal(t, "203.0.113.9", clientIP(req))
}
