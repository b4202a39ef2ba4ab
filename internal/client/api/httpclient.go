package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
)

// HTTPClient talks JSON over HTTP to the backend. It keeps the current
// token pair in memory and retries a request once after refreshing when the
// backend answers 401 and a refresh token is available.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu           sync.Mutex
	accessToken  string
	refreshToken string

	// OnTokensUpdated is invoked after a successful transparent refresh so
	// the session layer can persist the rotated pair. Optional.
	OnTokensUpdated func(access, refresh string)
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *HTTPClient) Close() error { return nil }

func (c *HTTPClient) SetTokens(access, refresh string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = access
	c.refreshToken = refresh
}

func (c *HTTPClient) tokens() (string, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken, c.refreshToken
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil, false)
}

func (c *HTTPClient) SignIn(ctx context.Context, email, password string) (TokenPairDTO, error) {
	var pair TokenPairDTO
	err := c.do(ctx, http.MethodPost, "/api/auth/sign-in", SignInRequest{Email: email, Password: password}, &pair, false)
	if err != nil {
		return TokenPairDTO{}, err
	}
	c.SetTokens(pair.AccessToken, pair.RefreshToken)
	return pair, nil
}

func (c *HTTPClient) Refresh(ctx context.Context, refreshToken string) (TokenPairDTO, error) {
	var pair TokenPairDTO
	body := map[string]string{"refreshToken": refreshToken}
	if err := c.do(ctx, http.MethodPost, "/api/auth/refresh", body, &pair, false); err != nil {
		return TokenPairDTO{}, err
	}
	c.SetTokens(pair.AccessToken, pair.RefreshToken)
	return pair, nil
}

func (c *HTTPClient) Me(ctx context.Context) (UserDTO, error) {
	var user UserDTO
	err := c.do(ctx, http.MethodGet, "/api/users/me", nil, &user, true)
	return user, err
}

func (c *HTTPClient) Events(ctx context.Context, from, to time.Time) ([]EventDTO, error) {
	var events []EventDTO
	err := c.do(ctx, http.MethodGet, "/api/events"+rangeQuery(from, to), nil, &events, true)
	return events, err
}

func (c *HTTPClient) CreateEvent(ctx context.Context, req CreateEventRequest) (EventDTO, error) {
	var event EventDTO
	err := c.do(ctx, http.MethodPost, "/api/events", req, &event, true)
	return event, err
}

func (c *HTTPClient) PatchEvent(ctx context.Context, id int64, req PatchEventRequest) (EventDTO, error) {
	var event EventDTO
	err := c.do(ctx, http.MethodPatch, "/api/events/"+strconv.FormatInt(id, 10), req, &event, true)
	return event, err
}

func (c *HTTPClient) DeleteEvent(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/events/"+strconv.FormatInt(id, 10), nil, nil, true)
}

func (c *HTTPClient) Shifts(ctx context.Context, from, to time.Time) ([]ShiftDTO, error) {
	var shifts []ShiftDTO
	err := c.do(ctx, http.MethodGet, "/api/shifts"+rangeQuery(from, to), nil, &shifts, true)
	return shifts, err
}

func (c *HTTPClient) CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftDTO, error) {
	var shift ShiftDTO
	err := c.do(ctx, http.MethodPost, "/api/shifts", req, &shift, true)
	return shift, err
}

func (c *HTTPClient) PatchShift(ctx context.Context, id int64, req PatchShiftRequest) (ShiftDTO, error) {
	var shift ShiftDTO
	err := c.do(ctx, http.MethodPatch, "/api/shifts/"+strconv.FormatInt(id, 10), req, &shift, true)
	return shift, err
}

func (c *HTTPClient) DeleteShift(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/shifts/"+strconv.FormatInt(id, 10), nil, nil, true)
}

func rangeQuery(from, to time.Time) string {
	q := url.Values{}
	q.Set("from", from.Format(time.RFC3339))
	q.Set("to", to.Format(time.RFC3339))
	return "?" + q.Encode()
}

// do performs one request/response cycle. When authed is set and the first
// attempt comes back 401, it refreshes the token pair and retries once.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any, authed bool) error {
	err := c.once(ctx, method, path, body, out, authed)
	if err == nil || !authed {
		return err
	}

	_, refresh := c.tokens()
	if !isUnauthorized(err) || refresh == "" {
		return err
	}
	if _, rerr := c.Refresh(ctx, refresh); rerr != nil {
		return err
	}
	if c.OnTokensUpdated != nil {
		access, refresh := c.tokens()
		c.OnTokensUpdated(access, refresh)
	}
	return c.once(ctx, method, path, body, out, authed)
}

func (c *HTTPClient) once(ctx context.Context, method, path string, body any, out any, authed bool) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		access, _ := c.tokens()
		req.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.mapStatus(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorEnvelope matches the backend's error body shape.
type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *HTTPClient) mapStatus(resp *http.Response) error {
	var env errorEnvelope
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&env)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case resp.StatusCode == http.StatusConflict:
		return ErrConflict
	case resp.StatusCode >= 500:
		return ErrServer
	default:
		if env.Error.Message != "" {
			return fmt.Errorf("%s (http %d)", env.Error.Message, resp.StatusCode)
		}
		return fmt.Errorf("request failed (http %d)", resp.StatusCode)
	}
}

func isUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
