package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"janamat/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func identityRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))
	r.Use(ResolveIdentity())
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, CurrentIdentity(c).VoterKey())
	})
	return r
}

func TestVoterKey(t *testing.T) {
	authenticated := Identity{Kind: IdentityAuthenticated, User: &models.User{ID: 42, Username: "asha"}}
	if got := authenticated.VoterKey(); got != "user:42" {
		t.Errorf("Expected user:42, got %q", got)
	}
	if got := authenticated.DisplayName(); got != "asha" {
		t.Errorf("Expected asha, got %q", got)
	}

	anonymous := Identity{Kind: IdentityAnonymous, Fingerprint: "abc"}
	if got := anonymous.VoterKey(); got != "anon:abc" {
		t.Errorf("Expected anon:abc, got %q", got)
	}
	if got := anonymous.DisplayName(); got != "" {
		t.Errorf("Expected empty display name for anonymous, got %q", got)
	}
}

func TestResolveIdentityFingerprintHeader(t *testing.T) {
	r := identityRouter()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-Voter-Fingerprint", "device-123")
	req.Header.Set("User-Agent", "test-agent")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// The explicit header wins over the User-Agent.
	if w.Body.String() != "anon:device-123" {
		t.Errorf("Expected anon:device-123, got %q", w.Body.String())
	}
}

func TestResolveIdentityUserAgentFallback(t *testing.T) {
	r := identityRouter()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("User-Agent", "some-browser/1.0")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Body.String() != "anon:some-browser/1.0" {
		t.Errorf("Expected anon:some-browser/1.0, got %q", w.Body.String())
	}
}

func TestResolveIdentitySessionFallback(t *testing.T) {
	r := identityRouter()

	// No fingerprint and no User-Agent: a uuid is minted and pinned to
	// the session cookie.
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	first := w.Body.String()
	if !strings.HasPrefix(first, "anon:") || len(first) <= len("anon:") {
		t.Fatalf("Expected a minted anonymous key, got %q", first)
	}

	// Replaying the session cookie keeps the same fingerprint.
	req2 := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for _, c := range w.Result().Cookies() {
		req2.AddCookie(c)
	}
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)

	if w2.Body.String() != first {
		t.Errorf("Expected stable fingerprint across requests, got %q then %q", first, w2.Body.String())
	}
}
