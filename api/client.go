package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/models"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenericFailureMessage is shown when the backend gives us nothing usable.
const GenericFailureMessage = "Something went wrong. Please try again."

// APIError is a non-2xx answer from the backend, carrying its error payload
// when one was supplied.
type APIError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("backend returned %d: %s (%s)", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// UserMessage extracts the text to surface for a failed call: the backend's
// own message when present, a generic fallback otherwise. Never empty.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return GenericFailureMessage
}

// SessionSource is the slice of the session the HTTP layer needs: the current
// token to attach, and invalidation when the backend says 401.
type SessionSource interface {
	Token() string
	Logout()
}

// Client is the one shared HTTP client for the backend. Every outgoing
// request picks up the bearer token (when one exists) and a request id; every
// 401 response drops the local session before the error reaches the caller.
// Navigation after a 401 stays the caller's responsibility.
type Client struct {
	rc     *resty.Client
	logger *zap.Logger
}

func NewClient(baseURL string, session SessionSource, timeout time.Duration, logger *zap.Logger) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	rc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if token := session.Token(); token != "" {
			req.SetAuthToken(token)
		}
		req.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})

	rc.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if !resp.IsError() {
			return nil
		}
		if resp.StatusCode() == http.StatusUnauthorized {
			// The token is no longer trustworthy; drop it before the
			// caller sees the failure.
			logger.Info("api: backend returned 401, invalidating session")
			session.Logout()
		}
		return errorFromResponse(resp)
	})

	return &Client{rc: rc, logger: logger}
}

// errorFromResponse builds an APIError from the backend's payload, tolerating
// bodies that are not the standard error shape.
func errorFromResponse(resp *resty.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode()}

	var payload models.ErrorResponse
	if body := resp.Body(); len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err == nil {
			apiErr.Message = payload.Message
			apiErr.Details = payload.Details
		}
	}
	return apiErr
}

// R opens a request on the shared client.
func (c *Client) R() *resty.Request {
	return c.rc.R()
}
