// Package client talks to the blog's /fakeApi endpoints.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"blog-essentials/internal/common"
	"blog-essentials/internal/errors"
	"blog-essentials/internal/util"

	"go.uber.org/zap"
)

// API paths
const (
	PostsPath         = "/fakeApi/posts"
	UsersPath         = "/fakeApi/users"
	NotificationsPath = "/fakeApi/notifications"
)

const (
	// maxBodyBytes caps how much of a response body is read.
	maxBodyBytes = 4 << 20
	// maxErrorText caps the body text carried in a status error.
	maxErrorText = 256
)

// Client is the remote API as seen by the services.
type Client interface {
	Get(ctx context.Context, path string) (*Response, error)
	Post(ctx context.Context, path string, body interface{}) (*Response, error)
}

// Response wraps the payload of a successful call.
type Response struct {
	Status int
	Data   json.RawMessage
}

// Decode unmarshals the payload into v.
func (r *Response) Decode(v interface{}) error {
	if err := json.Unmarshal(r.Data, v); err != nil {
		return errors.Wrap(errors.ErrDecode, "invalid response payload", err)
	}
	return nil
}

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL      string
	httpClient   *http.Client
	maxAttempts  int
	retryBackoff time.Duration
}

// Option customizes an HTTPClient.
type Option func(*HTTPClient)

// WithTimeout bounds every request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *HTTPClient) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetry retries transient transport failures up to maxAttempts in total.
func WithRetry(maxAttempts int, backoff time.Duration) Option {
	return func(c *HTTPClient) {
		c.maxAttempts = maxAttempts
		c.retryBackoff = backoff
	}
}

// WithHTTPClient swaps the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.httpClient = hc
	}
}

func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		maxAttempts: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) Get(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *HTTPClient) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrBadRequest, "encode request body", err)
	}
	return c.do(ctx, http.MethodPost, path, payload)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, payload []byte) (*Response, error) {
	url := c.baseURL + path
	var resp *Response
	err := common.WithRetry(ctx, func() error {
		var err error
		resp, err = c.roundTrip(ctx, method, url, payload)
		return err
	}, c.maxAttempts, c.retryBackoff)
	if err != nil {
		err = classify(ctx, err)
		util.Logger.Warn("api request failed",
			zap.String("method", method),
			zap.String("url", url),
			util.Error(err))
		return nil, err
	}
	util.Logger.Debug("api request succeeded",
		zap.String("method", method),
		zap.String("url", url),
		util.Int("status", resp.Status))
	return resp, nil
}

// classify turns a raw transport error into an AppError.
func classify(ctx context.Context, err error) error {
	if errors.IsAppError(err) {
		return err
	}
	var netErr net.Error
	if stderrors.Is(ctx.Err(), context.DeadlineExceeded) || (stderrors.As(err, &netErr) && netErr.Timeout()) {
		return errors.Wrap(errors.ErrTimeout, "request timed out", err)
	}
	return errors.Wrap(errors.ErrNetwork, "network error", err)
}

// roundTrip performs one attempt. Transport errors are returned unwrapped so
// the retry helper can classify them.
func (c *HTTPClient) roundTrip(ctx context.Context, method, url string, payload []byte) (*Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrBadRequest, "build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes+1))
	if err != nil {
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		message := fmt.Sprintf("request failed with status %d", res.StatusCode)
		if text := errorText(data); text != "" {
			return nil, errors.Wrap(errors.ErrRemoteStatus, message, stderrors.New(text))
		}
		return nil, errors.New(errors.ErrRemoteStatus, message)
	}
	if len(data) > maxBodyBytes {
		return nil, errors.New(errors.ErrDecode, fmt.Sprintf("response body exceeds %d bytes", maxBodyBytes))
	}
	return &Response{Status: res.StatusCode, Data: data}, nil
}

func errorText(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= maxErrorText {
		return text
	}
	return strings.ToValidUTF8(text[:maxErrorText], "") + "..."
}
