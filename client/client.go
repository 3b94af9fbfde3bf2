package client

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"

	"betadmin/session"
)

// APIError carries a non-2xx response back to the caller, with the server's
// human-readable detail message when one was provided.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Client wraps every outbound call to the platform backend. The session is
// injected explicitly; its token is read before each request and cleared
// centrally when the backend answers 401.
type Client struct {
	rest           *resty.Client
	session        *session.Session
	onUnauthorized func()
}

// New builds a client against the resolved base URL. onUnauthorized runs once
// per 401 response, after the session has been cleared; the console uses it to
// force navigation back to the login screen.
func New(baseURL string, sess *session.Session, onUnauthorized func()) *Client {
	rest := resty.New().
		SetBaseURL(ResolveBaseURL(baseURL)).
		SetHeader("Content-Type", "application/json")

	return &Client{
		rest:           rest,
		session:        sess,
		onUnauthorized: onUnauthorized,
	}
}

// ResolveBaseURL validates the configured URL once at startup. A missing or
// malformed value falls back to the local stub backend.
func ResolveBaseURL(raw string) string {
	const fallback = "http://localhost:8080"

	if raw == "" {
		return fallback
	}
	parsed, err := url.Parse(raw)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		log.Printf("Warning: invalid API_BASE_URL %q, falling back to %s", raw, fallback)
		return fallback
	}
	return parsed.String()
}

// Get issues a GET request and decodes the response body into out.
func (c *Client) Get(path string, query url.Values, out any) error {
	req := c.newRequest()
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	return c.handleResponse(resp, out)
}

// Post issues a POST request with a JSON body and decodes the response into out.
func (c *Client) Post(path string, body any, out any) error {
	req := c.newRequest()
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	return c.handleResponse(resp, out)
}

func (c *Client) newRequest() *resty.Request {
	req := c.rest.R()
	if token := c.session.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (c *Client) handleResponse(resp *resty.Response, out any) error {
	if resp.StatusCode() == http.StatusUnauthorized {
		c.session.Clear()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return &APIError{StatusCode: resp.StatusCode(), Detail: parseDetail(resp.Body())}
	}

	if !resp.IsSuccess() {
		return &APIError{StatusCode: resp.StatusCode(), Detail: parseDetail(resp.Body())}
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// parseDetail extracts the backend's {"detail": ...} error message. Validation
// errors can carry a structured detail; those are flattened to a string.
func parseDetail(body []byte) string {
	var parsed struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Detail == nil {
		return ""
	}
	if detail, ok := parsed.Detail.(string); ok {
		return detail
	}
	return fmt.Sprintf("%v", parsed.Detail)
}
