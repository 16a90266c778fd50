package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"wedding-assistant/config"
	"wedding-assistant/pkg/log"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                   {}
func (nopLogger) Debugf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Info(ctx context.Context, args ...any)                    {}
func (nopLogger) Infof(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, args ...any)                    {}
func (nopLogger) Warnf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, args ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                   {}
func (nopLogger) Fatalf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                   {}
func (nopLogger) Panicf(ctx context.Context, template string, args ...any) {}

var _ log.Logger = nopLogger{}

func newTestRouter(t *testing.T, requestsPerMin int) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.RateLimit.RequestsPerMin = requestsPerMin

	mw := New(nopLogger{}, cfg)

	r := gin.New()
	r.POST("/chat", mw.RateLimit(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doChat(r *gin.Engine, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/chat", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitAllowsWithinBurst(t *testing.T) {
	// 60 req/min gives a burst of 6.
	r := newTestRouter(t, 60)

	for i := 0; i < 6; i++ {
		if w := doChat(r, "u1"); w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want %d", i+1, w.Code, http.StatusOK)
		}
	}
}

func TestRateLimitRejectsBeyondBurst(t *testing.T) {
	r := newTestRouter(t, 10)

	// burst is clamped to 1, so the second immediate request must fail.
	if w := doChat(r, "u1"); w.Code != http.StatusOK {
		t.Fatalf("first request: status = %d, want %d", w.Code, http.StatusOK)
	}
	if w := doChat(r, "u1"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: status = %d, want %d", w.Code, http.StatusTooManyRequests)
	}
}

func TestRateLimitIsolatesUsers(t *testing.T) {
	r := newTestRouter(t, 10)

	if w := doChat(r, "u1"); w.Code != http.StatusOK {
		t.Fatalf("u1 first request: status = %d", w.Code)
	}
	if w := doChat(r, "u1"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("u1 second request: status = %d, want 429", w.Code)
	}
	// A different user gets a fresh limiter.
	if w := doChat(r, "u2"); w.Code != http.StatusOK {
		t.Fatalf("u2 first request: status = %d, want 200", w.Code)
	}
}

func TestClientKeyPrecedence(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{
			name:    "user id wins",
			headers: map[string]string{"X-User-Id": "u1", "X-Forwarded-For": "1.2.3.4"},
			remote:  "10.0.0.1:1234",
			want:    "u1",
		},
		{
			name:    "forwarded-for first hop",
			headers: map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"},
			remote:  "10.0.0.1:1234",
			want:    "1.2.3.4",
		},
		{
			name:    "real ip",
			headers: map[string]string{"X-Real-IP": "9.9.9.9"},
			remote:  "10.0.0.1:1234",
			want:    "9.9.9.9",
		},
		{
			name:   "remote addr host",
			remote: "10.0.0.1:1234",
			want:   "10.0.0.1",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodPost, "/chat", nil)
			c.Request.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				c.Request.Header.Set(k, v)
			}
			if got := clientKey(c); got != tc.want {
				t.Errorf("clientKey() = %q, want %q", got, tc.want)
			}
		})
	}
}
