// Package restclient is a typed client for the tracker's REST surface. It
// implements the domain repository interfaces over HTTP, so anything written
// against those contracts (use cases, integration tests) can run against a
// live server instead of a local store.
package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/freelancedesk/freelance-tracker/internal/httperr"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewWithHTTPClient lets tests and callers with their own transport policy
// supply the underlying client.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: baseURL, http: hc}
}

type apiError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

// do runs one request and decodes a 2xx body into out. Error responses are
// mapped back onto the domain taxonomy by status code (400 validation,
// 404 not found, 422 invalid transition); anything else, including an
// unreachable server, surfaces as a transport error carrying the status.
func (c *Client) do(
	ctx context.Context,
	method string,
	path string,
	body any,
	out any,
) error {

	var buf *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewBuffer(raw)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return httperr.ErrTransport("request_failed", 0)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		code := apiErr.Code
		if code == "" {
			code = fmt.Sprintf("api_error_%d", resp.StatusCode)
		}

		switch resp.StatusCode {
		case http.StatusBadRequest:
			return httperr.ErrValidation(code)
		case http.StatusNotFound:
			return httperr.ErrNotFound(code)
		case http.StatusUnprocessableEntity:
			return httperr.ErrInvalidTransition(code)
		default:
			return httperr.ErrTransport(code, resp.StatusCode)
		}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
