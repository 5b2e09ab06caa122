// Package api is the client for the remote marketplace API. It is the only
// place that speaks HTTP to the collaborator and the only place that decodes
// its responses.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nfrund/marketplace/internal/domain"
)

// Client calls the marketplace API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds every call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// LoginResult is the decoded login response.
type LoginResult struct {
	Token string
}

// HasToken reports whether the API issued a token.
func (r LoginResult) HasToken() bool {
	return r.Token != ""
}

// Login posts the credentials to /login. The HTTP status is not consulted:
// a response is a success exactly when its JSON body carries a non-empty
// token, and any other decodable body yields a result without a token.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (LoginResult, error) {
	const op = "login"

	resp, err := c.do(ctx, op, http.MethodPost, "/login", creds, "")
	if err != nil {
		return LoginResult{}, err
	}
	defer resp.Body.Close()

	var w loginWire
	if err := decodeJSON(op, resp.Body, &w); err != nil {
		return LoginResult{}, err
	}
	if w.Token == nil {
		return LoginResult{}, nil
	}
	return LoginResult{Token: *w.Token}, nil
}

// Signup posts the credentials to /signup. Only the status is checked; the
// body is discarded.
func (c *Client) Signup(ctx context.Context, creds domain.Credentials) error {
	const op = "signup"

	resp, err := c.do(ctx, op, http.MethodPost, "/signup", creds, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))

	if !isSuccess(resp.StatusCode) {
		return &StatusError{Op: op, StatusCode: resp.StatusCode}
	}
	return nil
}

// ListProducts fetches the catalog from /products. No credential is sent.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "list products"

	resp, err := c.do(ctx, op, http.MethodGet, "/products", nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, &StatusError{Op: op, StatusCode: resp.StatusCode}
	}
	return decodeProducts(op, resp.Body)
}

// CreateProduct posts the form to /products with the session's bearer
// credential. The header is attached even for anonymous sessions; the API
// decides what to do with it.
func (c *Client) CreateProduct(ctx context.Context, sess domain.Session, form domain.ProductForm) (domain.Product, error) {
	const op = "create product"

	resp, err := c.do(ctx, op, http.MethodPost, "/products", form, sess.Bearer())
	if err != nil {
		return domain.Product{}, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return domain.Product{}, &StatusError{Op: op, StatusCode: resp.StatusCode}
	}
	return decodeProduct(op, resp.Body)
}

// do sends one request. A nil payload sends no body.
func (c *Client) do(ctx context.Context, op, method, path string, payload any, authorization string) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to marshal request: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		resp, err := c.send(ctx, op, method, path, body, authorization)
		if err != nil {
			cancel()
			return nil, err
		}
		resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
		return resp, nil
	}
	return c.send(ctx, op, method, path, body, authorization)
}

func (c *Client) send(ctx context.Context, op, method, path string, body io.Reader, authorization string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}
	return resp, nil
}

// cancelOnClose releases the per-call timeout once the body is consumed.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelOnClose) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()
	return err
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
