package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/eventbook/eventbook/pkg/api"
)

// Error is a non-2xx response from the server. The status code lets
// callers decide on user messaging; the body is kept for diagnostics only
// and is never shown to the user.
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Body)
}

// Client is the HTTP client for the remote event-booking API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new API client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Carry the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.UserResponse, error) {
	var resp api.UserResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/Accounts/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// EmailExists reports whether an account with the given email is already
// registered.
func (c *Client) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	path := "/api/Accounts/EmailExist?Email=" + url.QueryEscape(email)
	if err := c.doRequest(ctx, http.MethodGet, path, "", nil, &exists); err != nil {
		return false, fmt.Errorf("email exist request failed: %w", err)
	}
	return exists, nil
}

// Register creates a new account. The response body is unused.
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/Accounts/Register", "", req, nil); err != nil {
		return fmt.Errorf("register request failed: %w", err)
	}
	return nil
}

// ListEvents fetches all event listings.
func (c *Client) ListEvents(ctx context.Context) ([]api.Event, error) {
	var events []api.Event
	if err := c.doRequest(ctx, http.MethodGet, "/api/Events", "", nil, &events); err != nil {
		return nil, fmt.Errorf("list events request failed: %w", err)
	}
	return events, nil
}

// GetEvent fetches a single event by id.
func (c *Client) GetEvent(ctx context.Context, id int64) (*api.Event, error) {
	var event api.Event
	path := fmt.Sprintf("/api/Events/%d", id)
	if err := c.doRequest(ctx, http.MethodGet, path, "", nil, &event); err != nil {
		return nil, fmt.Errorf("get event request failed: %w", err)
	}
	return &event, nil
}

// UpdateEventStatus sets the status of an event. Requires a bearer token.
func (c *Client) UpdateEventStatus(ctx context.Context, token string, id int64, status string) error {
	path := fmt.Sprintf("/api/Events/%d", id)
	req := api.UpdateEventRequest{Status: status}
	if err := c.doRequest(ctx, http.MethodPut, path, token, req, nil); err != nil {
		return fmt.Errorf("update event request failed: %w", err)
	}
	return nil
}

// DeleteEvent removes an event. Requires a bearer token.
func (c *Client) DeleteEvent(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/api/Events/%d", id)
	if err := c.doRequest(ctx, http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("delete event request failed: %w", err)
	}
	return nil
}

// CreateBooking books seats on an event for a user. Requires a bearer
// token.
func (c *Client) CreateBooking(ctx context.Context, token string, req api.CreateBookingRequest) (*api.Booking, error) {
	var booking api.Booking
	if err := c.doRequest(ctx, http.MethodPost, "/api/Bookings/CreateBooking", token, req, &booking); err != nil {
		return nil, fmt.Errorf("create booking request failed: %w", err)
	}
	return &booking, nil
}

// GetBooking fetches a single booking by id.
func (c *Client) GetBooking(ctx context.Context, id int64) (*api.Booking, error) {
	var booking api.Booking
	path := fmt.Sprintf("/api/Bookings/GetBooking/%d", id)
	if err := c.doRequest(ctx, http.MethodGet, path, "", nil, &booking); err != nil {
		return nil, fmt.Errorf("get booking request failed: %w", err)
	}
	return &booking, nil
}

// doRequest performs an HTTP request. The Authorization header is attached
// only when a token is supplied; the server rejects unauthenticated calls
// on its own.
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	// Correlation id for matching client failures against server logs
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
