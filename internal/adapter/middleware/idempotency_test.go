package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"advising-backend/pkg/id"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func newMiniredisClient(t *testing.T) *redis.Client {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func setupEcho(t *testing.T) (*echo.Echo, *int) {
	t.Helper()
	rdb := newMiniredisClient(t)

	e := echo.New()
	e.Use(Idempotency(rdb, time.Hour, zerolog.Nop()))

	calls := 0
	e.POST("/records/create-entry", func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusCreated, map[string]string{
			"message": "Entry created successfully",
			"call":    strconv.Itoa(calls),
		})
	})
	e.GET("/records", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []string{})
	})
	return e, &calls
}

type reqOpts struct {
	reqID  string
	reqAt  string
	email  string
	body   string
	method string
	path   string
}

func doReq(e *echo.Echo, o reqOpts) *httptest.ResponseRecorder {
	if o.method == "" {
		o.method = http.MethodPost
	}
	if o.path == "" {
		o.path = "/records/create-entry"
	}
	req := httptest.NewRequest(o.method, o.path, strings.NewReader(o.body))
	req.Header.Set("Content-Type", "application/json")
	if o.reqID != "" {
		req.Header.Set("X-Request-Id", o.reqID)
	}
	if o.reqAt != "" {
		req.Header.Set("X-Request-At", o.reqAt)
	}
	if o.email != "" {
		req.Header.Set("X-Student-Email", o.email)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func nowEpoch() string {
	return strconv.FormatInt(time.Now().Unix(), 10)
}

func TestIdempotency_GETBypassesChecks(t *testing.T) {
	e, _ := setupEcho(t)

	rec := doReq(e, reqOpts{method: http.MethodGet, path: "/records"})
	if rec.Code != http.StatusOK {
		t.Fatalf("GET must bypass idempotency headers, got %d", rec.Code)
	}
}

func TestIdempotency_MissingHeaders(t *testing.T) {
	e, _ := setupEcho(t)

	cases := []struct {
		name string
		o    reqOpts
		want string
	}{
		{"no request id", reqOpts{reqAt: nowEpoch(), email: "s@uni.edu"}, "missing X-Request-Id"},
		{"bad request id", reqOpts{reqID: "nope", reqAt: nowEpoch(), email: "s@uni.edu"}, "invalid X-Request-Id"},
		{"no request at", reqOpts{reqID: id.NewID32(), email: "s@uni.edu"}, "missing X-Request-At"},
		{"naive request at", reqOpts{reqID: id.NewID32(), reqAt: "2026-08-28T10:00:00", email: "s@uni.edu"}, "X-Request-At"},
		{"no email", reqOpts{reqID: id.NewID32(), reqAt: nowEpoch()}, "missing X-Student-Email"},
		{"bad email", reqOpts{reqID: id.NewID32(), reqAt: nowEpoch(), email: "not-an-email"}, "invalid X-Student-Email"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doReq(e, tc.o)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("code = %d, want 400", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tc.want) {
				t.Fatalf("body = %s, want mention of %q", rec.Body.String(), tc.want)
			}
		})
	}
}

func TestIdempotency_SkewedTimestampRejected(t *testing.T) {
	e, _ := setupEcho(t)

	old := strconv.FormatInt(time.Now().Add(-time.Hour).Unix(), 10)
	rec := doReq(e, reqOpts{reqID: id.NewID32(), reqAt: old, email: "s@uni.edu"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "skewed") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestIdempotency_AcceptsEpochMillisAndRFC3339(t *testing.T) {
	e, _ := setupEcho(t)

	ms := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if rec := doReq(e, reqOpts{reqID: id.NewID32(), reqAt: ms, email: "s@uni.edu", body: `{}`}); rec.Code != http.StatusCreated {
		t.Fatalf("epoch ms rejected: %d %s", rec.Code, rec.Body.String())
	}

	rfc := time.Now().UTC().Format(time.RFC3339)
	if rec := doReq(e, reqOpts{reqID: id.NewID32(), reqAt: rfc, email: "s@uni.edu", body: `{}`}); rec.Code != http.StatusCreated {
		t.Fatalf("RFC3339 rejected: %d %s", rec.Code, rec.Body.String())
	}
}

func TestIdempotency_ReplayReturnsCachedResponse(t *testing.T) {
	e, calls := setupEcho(t)

	o := reqOpts{reqID: id.NewID32(), reqAt: nowEpoch(), email: "s@uni.edu", body: `{"email":"s@uni.edu"}`}
	first := doReq(e, o)
	if first.Code != http.StatusCreated {
		t.Fatalf("first code = %d", first.Code)
	}
	second := doReq(e, o)
	if second.Code != http.StatusCreated {
		t.Fatalf("replay code = %d", second.Code)
	}
	if *calls != 1 {
		t.Fatalf("handler ran %d times, want 1", *calls)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("replay body differs:\n%s\n%s", first.Body.String(), second.Body.String())
	}
}

func TestIdempotency_SameIDDifferentBodyConflicts(t *testing.T) {
	e, calls := setupEcho(t)

	reqID := id.NewID32()
	first := doReq(e, reqOpts{reqID: reqID, reqAt: nowEpoch(), email: "s@uni.edu", body: `{"a":1}`})
	if first.Code != http.StatusCreated {
		t.Fatalf("first code = %d", first.Code)
	}
	second := doReq(e, reqOpts{reqID: reqID, reqAt: nowEpoch(), email: "s@uni.edu", body: `{"a":2}`})
	if second.Code != http.StatusConflict {
		t.Fatalf("mismatched body code = %d, want 409", second.Code)
	}
	if *calls != 1 {
		t.Fatalf("handler ran %d times, want 1", *calls)
	}
}

func TestIdempotency_DifferentStudentsDoNotCollide(t *testing.T) {
	e, calls := setupEcho(t)

	reqID := id.NewID32()
	a := doReq(e, reqOpts{reqID: reqID, reqAt: nowEpoch(), email: "a@uni.edu", body: `{}`})
	b := doReq(e, reqOpts{reqID: reqID, reqAt: nowEpoch(), email: "b@uni.edu", body: `{}`})
	if a.Code != http.StatusCreated || b.Code != http.StatusCreated {
		t.Fatalf("codes = %d %d", a.Code, b.Code)
	}
	if *calls != 2 {
		t.Fatalf("handler ran %d times, want 2", *calls)
	}
}

func TestIdempotency_UUIDRequestIDAccepted(t *testing.T) {
	e, _ := setupEcho(t)

	rec := doReq(e, reqOpts{
		reqID: "9f1b2c3d-4e5f-4a6b-8c7d-0123456789ab",
		reqAt: nowEpoch(),
		email: "s@uni.edu",
		body:  `{}`,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("uuid request id rejected: %d %s", rec.Code, rec.Body.String())
	}
}
