// Package api is the HTTP transport for the remote task collection.
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
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Makepad-fr/tasks/internal/endpoint"
	"github.com/Makepad-fr/tasks/internal/model"
)

// RequestIDHeader carries a fresh uuid on every outgoing call.
const RequestIDHeader = "X-Request-ID"

// StatusError is returned for any non-2xx reply.
type StatusError struct {
	Method string
	URL    string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.Code, http.StatusText(e.Code))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

type Client struct {
	endpoints endpoint.Endpoints
	origin    *url.URL
	http      *http.Client
	timeout   time.Duration
}

type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client (tests, proxies).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout bounds every request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// New builds a client for the given roots. origin is used only when the roots
// are relative paths.
func New(ep endpoint.Endpoints, origin string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(origin))
	if err != nil {
		return nil, fmt.Errorf("parse origin: %w", err)
	}
	if !ep.Local() && (u.Scheme == "" || u.Host == "") {
		return nil, fmt.Errorf("origin %q must be an absolute URL for relative endpoints", origin)
	}
	c := &Client{endpoints: ep, origin: u, http: http.DefaultClient}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Endpoints returns the roots the client was built with.
func (c *Client) Endpoints() endpoint.Endpoints { return c.endpoints }

// Health calls the liveness probe and returns its decoded payload.
func (c *Client) Health(ctx context.Context) (any, error) {
	var payload any
	if err := c.do(ctx, http.MethodGet, c.endpoints.Health, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// ListTasks returns the whole collection in server order.
func (c *Client) ListTasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := c.do(ctx, http.MethodGet, c.endpoints.Tasks(), nil, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

type createRequest struct {
	Title string `json:"title"`
}

// CreateTask posts a new title and returns the record the server stored.
func (c *Client) CreateTask(ctx context.Context, title string) (model.Task, error) {
	var t model.Task
	if err := c.do(ctx, http.MethodPost, c.endpoints.Tasks(), createRequest{Title: title}, &t); err != nil {
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, fmt.Errorf("create task: response carries no id")
	}
	return t, nil
}

// DeleteTask removes one record. The response body is not inspected.
func (c *Client) DeleteTask(ctx context.Context, id model.ID) error {
	return c.do(ctx, http.MethodDelete, c.endpoints.Task(id.String()), nil, nil)
}

func (c *Client) resolve(raw string) (string, error) {
	ref, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}
	return c.origin.ResolveReference(ref).String(), nil
}

func (c *Client) do(ctx context.Context, method, raw string, in, out any) error {
	target, err := c.resolve(raw)
	if err != nil {
		return err
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Method: method, URL: target, Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("json decode %s %s: %w", method, target, err)
	}
	return nil
}
