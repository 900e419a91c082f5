package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akolanti/StudyAPI/internal/api"
	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/time/rate"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func validClaims(sub string) jwt.MapClaims {
	return jwt.MapClaims{"sub": sub, "exp": time.Now().Add(time.Hour).Unix()}
}

// withAuthConfig swaps the package globals the middleware reads and restores them after the test.
func withAuthConfig(t *testing.T, bypass bool, limiter *IPRateLimiter) {
	t.Helper()
	oldBypass, oldSecret, oldLimiter := config.AuthBypass, config.AuthJWTSecret, limiterInstance
	config.AuthBypass = bypass
	config.AuthJWTSecret = testSecret
	limiterInstance = limiter
	t.Cleanup(func() {
		config.AuthBypass, config.AuthJWTSecret, limiterInstance = oldBypass, oldSecret, oldLimiter
	})
}

// echoUser reports the user and trace the middleware put on the context.
func echoUser(w http.ResponseWriter, r *http.Request) {
	user, _ := r.Context().Value(config.USER_ID_KEY).(string)
	trace, _ := r.Context().Value(config.TRACE_ID_KEY).(string)
	w.Header().Set("X-Seen-User", user)
	w.Header().Set("X-Seen-Trace", trace)
	w.WriteHeader(http.StatusOK)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		secret  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, validClaims("u1")), testSecret, "u1", false},
		{"wrong secret", "Bearer " + signToken(t, jwt.SigningMethodHS256, "other", validClaims("u1")), testSecret, "", true},
		{"expired", "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(-time.Hour).Unix()}), testSecret, "", true},
		{"no expiry", "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"sub": "u1"}), testSecret, "", true},
		{"no subject", "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}), testSecret, "", true},
		{"other algorithm", "Bearer " + signToken(t, jwt.SigningMethodHS512, testSecret, validClaims("u1")), testSecret, "", true},
		{"not bearer", "Basic abc", testSecret, "", true},
		{"empty header", "", testSecret, "", true},
		{"no secret configured", "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, validClaims("u1")), "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header, tt.secret)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBearerToken() error = %v; wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseBearerToken() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestWrap_AuthenticatedRequestReachesHandler(t *testing.T) {
	withAuthConfig(t, false, NewIPRateLimiter(rate.Inf, 1))

	req := httptest.NewRequest(http.MethodGet, "/notes/1", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, testSecret, validClaims("student-7")))
	req.Header.Set("X-Trace-Id", "trace-abc")
	rr := httptest.NewRecorder()

	Wrap(echoUser)(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rr.Code)
	}
	if got := rr.Header().Get("X-Seen-User"); got != "student-7" {
		t.Errorf("user on context = %q", got)
	}
	if got := rr.Header().Get("X-Seen-Trace"); got != "trace-abc" {
		t.Errorf("trace on context = %q", got)
	}
}

func TestWrap_RejectsMissingToken(t *testing.T) {
	withAuthConfig(t, false, NewIPRateLimiter(rate.Inf, 1))

	called := false
	rr := httptest.NewRecorder()
	Wrap(func(w http.ResponseWriter, r *http.Request) { called = true })(rr, httptest.NewRequest(http.MethodGet, "/decks/1", nil))

	if called {
		t.Fatal("handler ran without a token")
	}
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d; want 401", rr.Code)
	}
	var resp api.JobResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("body is not a single json envelope: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != http.StatusUnauthorized {
		t.Errorf("error = %+v", resp.Error)
	}
}

func TestWrap_BypassUsesUserHeader(t *testing.T) {
	withAuthConfig(t, true, NewIPRateLimiter(rate.Inf, 1))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(bypassUserHeader, "alice")
	rr := httptest.NewRecorder()
	Wrap(echoUser)(rr, req)
	if got := rr.Header().Get("X-Seen-User"); got != "alice" {
		t.Errorf("user = %q; want alice", got)
	}

	rr = httptest.NewRecorder()
	Wrap(echoUser)(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if got := rr.Header().Get("X-Seen-User"); got != bypassUser {
		t.Errorf("user = %q; want %q", got, bypassUser)
	}
}

func TestWrap_RateLimitPerIP(t *testing.T) {
	withAuthConfig(t, true, NewIPRateLimiter(rate.Every(time.Hour), 1))

	send := func(remote string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remote
		rr := httptest.NewRecorder()
		Wrap(echoUser)(rr, req)
		return rr.Code
	}

	if code := send("10.0.0.1:5000"); code != http.StatusOK {
		t.Fatalf("first request = %d", code)
	}
	if code := send("10.0.0.1:5001"); code != http.StatusTooManyRequests {
		t.Errorf("second request from the same ip = %d; want 429", code)
	}
	if code := send("10.0.0.2:5000"); code != http.StatusOK {
		t.Errorf("other ip = %d; want 200", code)
	}
}

func TestWrap_RateLimitIgnoresForwardedHeaders(t *testing.T) {
	withAuthConfig(t, true, NewIPRateLimiter(rate.Every(time.Hour), 1))

	tests := []struct {
		name   string
		header string
		value  string
		want   int
	}{
		{"first request", "X-Forwarded-For", "203.0.113.1", http.StatusOK},
		{"rotated forwarded for", "X-Forwarded-For", "203.0.113.2", http.StatusTooManyRequests},
		{"rotated real ip", "X-Real-IP", "203.0.113.3", http.StatusTooManyRequests},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.9:5000"
		req.Header.Set(tt.header, tt.value)
		rr := httptest.NewRecorder()
		Wrap(echoUser)(rr, req)
		if rr.Code != tt.want {
			t.Errorf("%s: status = %d; want %d", tt.name, rr.Code, tt.want)
		}
	}
}

func TestIPRateLimiter_ReusesLimiter(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(1), 1)
	if limiter.GetLimiter("1.2.3.4") != limiter.GetLimiter("1.2.3.4") {
		t.Error("limiter for the same ip should be reused")
	}
	if limiter.GetLimiter("1.2.3.4") == limiter.GetLimiter("5.6.7.8") {
		t.Error("limiters for different ips should differ")
	}
}

func TestIPRateLimiter_EvictsIdleLimiters(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(1), 1)
	limiter.maxTracked = 2
	limiter.idleAfter = 0

	limiter.GetLimiter("1.1.1.1")
	limiter.GetLimiter("2.2.2.2")
	time.Sleep(time.Millisecond)
	limiter.GetLimiter("3.3.3.3")

	if _, kept := limiter.ips["1.1.1.1"]; kept {
		t.Error("idle limiter should have been evicted")
	}
	if _, kept := limiter.ips["3.3.3.3"]; !kept {
		t.Error("new limiter missing")
	}
}
