package httpx

import (
	"bytes"
	stdjson "encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string  `json:"name" validate:"required,min=1"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Year  *int    `json:"year,omitempty" validate:"omitempty,gte=1000,notfuture"`
}

func ptr[T any](v T) *T { return &v }

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		in     sample
		fields []string
	}{
		{"valid", sample{Name: "x"}, nil},
		{"missing name", sample{}, []string{"name"}},
		{"empty pointer string is checked", sample{Name: "x", Email: ptr("")}, []string{"email"}},
		{"bad email", sample{Name: "x", Email: ptr("nope")}, []string{"email"}},
		{"future year", sample{Name: "x", Year: ptr(time.Now().Year() + 1)}, []string{"year"}},
		{"current year", sample{Name: "x", Year: ptr(time.Now().Year())}, nil},
		{"ancient year", sample{Name: "x", Year: ptr(999)}, []string{"year"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := Validate(tt.in)
			var fields []string
			for _, d := range details {
				fields = append(fields, d.Field)
				assert.NotEmpty(t, d.Message)
			}
			assert.Equal(t, tt.fields, fields)
		})
	}
}

func TestDecodeValid(t *testing.T) {
	t.Run("unknown fields are ignored", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x","id":"y"}`))
		w := httptest.NewRecorder()
		var s sample

		require.True(t, DecodeValid(w, r, &s))
		assert.Equal(t, "x", s.Name)
	})

	t.Run("empty body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
		w := httptest.NewRecorder()
		var s sample

		assert.False(t, DecodeValid(w, r, &s))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("validation failure envelope", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":""}`))
		w := httptest.NewRecorder()
		var s sample

		require.False(t, DecodeValid(w, r, &s))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body ErrorResponse
		require.NoError(t, stdjson.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		require.Len(t, body.Error.Details, 1)
		assert.Equal(t, "name", body.Error.Details[0].Field)
	})

	t.Run("oversized body", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"`+strings.Repeat("x", 100)+`"}`))
		r.ContentLength = -1
		r.Body = http.MaxBytesReader(w, r.Body, 10)
		var s sample

		assert.False(t, DecodeValid(w, r, &s))
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

func TestPathID(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, ok := PathID(w, r)
		if !ok {
			return
		}
		JSON(w, http.StatusOK, map[string]string{"id": id})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/0b7e1c62-8c3a-4d4e-9a3b-2a1f0e6c9d11", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/42", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)
	defer rl.Stop()
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	request := func(addr string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = addr
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w
	}

	assert.Equal(t, http.StatusNoContent, request("10.0.0.1:1111").Code)
	assert.Equal(t, http.StatusTooManyRequests, request("10.0.0.1:2222").Code, "port does not matter")
	assert.Equal(t, http.StatusNoContent, request("10.0.0.2:1111").Code, "clients are independent")
}

func TestRateLimiterEvictsIdleClients(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.Stop()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.allow("a")
	now = now.Add(rl.idle + time.Second)
	rl.allow("b")
	rl.evictIdle()

	assert.NotContains(t, rl.limiters, "a")
	assert.Contains(t, rl.limiters, "b")
}

func TestMiddlewareChain(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	r := chi.NewRouter()
	r.Use(middleware.RequestID, EchoRequestID, Recover(logger), AccessLog(logger))
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })
	r.Get("/ok", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	assert.Contains(t, logs.String(), "panic recovered")

	logs.Reset()
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var line map[string]any
	require.NoError(t, stdjson.Unmarshal(logs.Bytes(), &line))
	assert.Equal(t, "access", line["msg"])
	assert.Equal(t, "/ok", line["path"])
	assert.EqualValues(t, 200, line["status"])
}

func TestMetrics(t *testing.T) {
	m := NewMetrics()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/items/{id}", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
	r.Handle("/metrics", m.Handler())

	for i := 0; i < 3; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/"+strconv.Itoa(i), nil))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `elibrary_http_requests_total{method="GET",route="/items/{id}",status="418"} 3`)
}
