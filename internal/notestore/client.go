package notestore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/haierkeys/quicknote/pkg/logger"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 8 << 20

// StatusError is returned when the store answers with a non-2xx status.
type StatusError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("notestore: %s: status %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("notestore: %s: status %d", e.Op, e.StatusCode)
}

// Client talks to one note store.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	timeout time.Duration
	logger  *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds every request; 0 disables the client side timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func WithLogger(lg *zap.Logger) Option {
	return func(c *Client) {
		if lg != nil {
			c.logger = lg
		}
	}
}

// New builds a client for the store at baseURL, e.g. "http://127.0.0.1:5000".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(strings.TrimSpace(baseURL), "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse base url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Errorf("base url %q must be http or https", baseURL)
	}
	c := &Client{
		baseURL: u,
		http:    http.DefaultClient,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the store address.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// List fetches every note in the store's order.
func (c *Client) List(ctx context.Context) ([]Note, error) {
	var notes []Note
	if err := c.do(ctx, "list", http.MethodGet, "/notes", nil, &notes); err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []Note{}
	}
	return notes, nil
}

// Create stores a note and returns it with the store assigned id and created_at.
func (c *Client) Create(ctx context.Context, title, content string) (Note, error) {
	body, err := sonic.Marshal(createRequest{Title: title, Content: content})
	if err != nil {
		return Note{}, errors.Wrap(err, "notestore: create: encode")
	}
	var note Note
	if err := c.do(ctx, "create", http.MethodPost, "/notes", body, &note); err != nil {
		return Note{}, err
	}
	return note, nil
}

// Delete removes a note. The response body is ignored.
func (c *Client) Delete(ctx context.Context, id NoteID) error {
	return c.do(ctx, "delete", http.MethodDelete, "/notes/"+url.PathEscape(id.String()), nil, nil)
}

func (c *Client) do(ctx context.Context, op, method, path string, body []byte, out interface{}) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return errors.Wrapf(err, "notestore: %s: build request", op)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("note store request failed",
			zap.String(logger.FieldAction, op),
			zap.String(logger.FieldBaseURL, c.BaseURL()),
			zap.Error(err))
		return errors.Wrapf(err, "notestore: %s", op)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	c.logger.Debug("note store request",
		zap.String(logger.FieldAction, op),
		zap.String(logger.FieldMethod, method),
		zap.String(logger.FieldPath, u.Path),
		zap.Int(logger.FieldStatusCode, resp.StatusCode),
		zap.Duration(logger.FieldDuration, time.Since(start)))
	if err != nil {
		return errors.Wrapf(err, "notestore: %s: read body", op)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Op: op, StatusCode: resp.StatusCode}
		var mb messageBody
		if sonic.Unmarshal(data, &mb) == nil {
			se.Message = mb.Message
		}
		return se
	}

	if out == nil {
		return nil
	}
	if err := sonic.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "notestore: %s: decode", op)
	}
	return nil
}
