package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type fakeSession struct {
	mu        sync.Mutex
	token     string
	loggedOut bool
}

func (s *fakeSession) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *fakeSession) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.loggedOut = true
}

func (s *fakeSession) wasLoggedOut() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedOut
}

func newTestBackend(t *testing.T, register func(r *gin.Engine)) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	register(router)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth, gotRequestID string
	srv := newTestBackend(t, func(r *gin.Engine) {
		r.GET("/bookings/slots", func(c *gin.Context) {
			gotAuth = c.GetHeader("Authorization")
			gotRequestID = c.GetHeader("X-Request-ID")
			c.JSON(http.StatusOK, models.AvailableSlotsResponse{Slots: []string{"09:00"}})
		})
	})

	session := &fakeSession{token: "tok-123"}
	client := NewClient(srv.URL, session, 5*time.Second, zap.NewNop())

	slots, err := client.FetchAvailableSlots(context.Background(), "svc-1", "2026-09-01")
	if err != nil {
		t.Fatalf("FetchAvailableSlots() error: %v", err)
	}
	if len(slots) != 1 || slots[0] != "09:00" {
		t.Fatalf("unexpected slots: %v", slots)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Fatalf("expected a request id header")
	}
}

func TestNoBearerWhenSignedOut(t *testing.T) {
	var gotAuth string
	srv := newTestBackend(t, func(r *gin.Engine) {
		r.POST("/auth/login", func(c *gin.Context) {
			gotAuth = c.GetHeader("Authorization")
			c.JSON(http.StatusOK, models.AuthResponse{Token: "fresh"})
		})
	})

	client := NewClient(srv.URL, &fakeSession{}, 5*time.Second, zap.NewNop())
	token, err := client.Authenticate(context.Background(), models.Credentials{Email: "a@b.com", Password: "password1"})
	if err != nil {
		t.Fatalf("Authenticate() error: %v", err)
	}
	if token != "fresh" {
		t.Fatalf("expected fresh token, got %q", token)
	}
	if gotAuth != "" {
		t.Fatalf("signed-out request must carry no bearer, got %q", gotAuth)
	}
}

func TestUnauthorizedDropsSessionBeforeErrorReachesCaller(t *testing.T) {
	srv := newTestBackend(t, func(r *gin.Engine) {
		r.GET("/users/me", func(c *gin.Context) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Token expired"})
		})
	})

	session := &fakeSession{token: "stale"}
	client := NewClient(srv.URL, session, 5*time.Second, zap.NewNop())

	_, err := client.FetchCurrentUserProfile(context.Background())
	if err == nil {
		t.Fatalf("expected error from 401")
	}
	if !session.wasLoggedOut() {
		t.Fatalf("401 must invalidate the session before the caller sees the error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", apiErr.StatusCode)
	}
}

func TestUserMessagePrefersBackendPayload(t *testing.T) {
	srv := newTestBackend(t, func(r *gin.Engine) {
		r.POST("/appointments", func(c *gin.Context) {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Message: "That slot was just taken.",
				Details: "pick another time",
			})
		})
	})

	client := NewClient(srv.URL, &fakeSession{token: "tok"}, 5*time.Second, zap.NewNop())
	_, err := client.CreateBooking(context.Background(), models.BookingInput{ServiceID: "svc-1", StartTime: time.Now()})
	if err == nil {
		t.Fatalf("expected conflict error")
	}
	if msg := UserMessage(err); msg != "That slot was just taken." {
		t.Fatalf("expected backend message, got %q", msg)
	}
}

func TestUserMessageFallsBackWhenPayloadUnusable(t *testing.T) {
	srv := newTestBackend(t, func(r *gin.Engine) {
		r.GET("/services", func(c *gin.Context) {
			c.String(http.StatusInternalServerError, "<html>boom</html>")
		})
	})

	client := NewClient(srv.URL, &fakeSession{}, 5*time.Second, zap.NewNop())
	_, err := client.ListServices(context.Background())
	if err == nil {
		t.Fatalf("expected server error")
	}
	if msg := UserMessage(err); msg != GenericFailureMessage {
		t.Fatalf("expected generic fallback, got %q", msg)
	}
}

func TestUserMessageForTransportError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", &fakeSession{}, 500*time.Millisecond, zap.NewNop())
	_, err := client.ListServices(context.Background())
	if err == nil {
		t.Fatalf("expected transport error")
	}
	if msg := UserMessage(err); msg != GenericFailureMessage {
		t.Fatalf("expected generic fallback for transport failures, got %q", msg)
	}
}
