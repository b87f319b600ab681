package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"svcctl/pkg/logging"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

const clientSubsystem = "APIClient"

// HeaderRequestID carries a per-request id so backend logs can be correlated.
const HeaderRequestID = "X-Request-ID"

// ClientOptions configures NewClient.
type ClientOptions struct {
	BaseURL  string
	RetryMax int
	// RetryWaitMin and RetryWaitMax bound the backoff between retries.
	// Zero values keep the retryablehttp defaults.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	HTTPClient   *http.Client
}

// Client talks to the service backend over HTTP.
// Reads are retried with backoff; mutations are sent exactly once.
type Client struct {
	baseURL *url.URL
	reads   *retryablehttp.Client
	writes  *retryablehttp.Client
}

var _ Backend = (*Client)(nil)

// NewClient creates a backend client for opts.BaseURL.
func NewClient(opts ClientOptions) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid backend URL %q: %w", opts.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid backend URL %q: scheme and host are required", opts.BaseURL)
	}

	return &Client{
		baseURL: base,
		reads:   newRetryClient(opts, opts.RetryMax),
		writes:  newRetryClient(opts, 0),
	}, nil
}

func newRetryClient(opts ClientOptions, retryMax int) *retryablehttp.Client {
	c := retryablehttp.NewClient()
	c.RetryMax = retryMax
	if opts.RetryWaitMin > 0 {
		c.RetryWaitMin = opts.RetryWaitMin
	}
	if opts.RetryWaitMax > 0 {
		c.RetryWaitMax = opts.RetryWaitMax
	}
	if opts.HTTPClient != nil {
		c.HTTPClient = opts.HTTPClient
	}
	c.Logger = leveledLogger{}
	// Hand the final response back so non-2xx statuses become StatusError.
	c.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return c
}

// ListServices implements Backend.
func (c *Client) ListServices(ctx context.Context) ([]Service, error) {
	var services []Service
	if err := c.do(ctx, c.reads, http.MethodGet, "/services", nil, &services); err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

// DeleteService implements Backend.
func (c *Client) DeleteService(ctx context.Context, id string) error {
	if err := c.do(ctx, c.writes, http.MethodDelete, "/services/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete service %s: %w", id, err)
	}
	return nil
}

// ChangeServiceState implements Backend.
func (c *Client) ChangeServiceState(ctx context.Context, id string, change StateChange) (*Service, error) {
	var svc Service
	path := "/services/" + url.PathEscape(id) + "/state"
	if err := c.do(ctx, c.writes, http.MethodPost, path, change, &svc); err != nil {
		return nil, fmt.Errorf("failed to change state of service %s: %w", id, err)
	}
	return &svc, nil
}

// CheckIntentConnection implements Backend.
func (c *Client) CheckIntentConnection(ctx context.Context, serviceID string) (*Trigger, error) {
	var trigger *Trigger
	path := "/services/" + url.PathEscape(serviceID) + "/connection"
	if err := c.do(ctx, c.reads, http.MethodGet, path, nil, &trigger); err != nil {
		return nil, fmt.Errorf("failed to check intent connection of service %s: %w", serviceID, err)
	}
	return trigger, nil
}

// RequestIntentConnection implements Backend.
func (c *Client) RequestIntentConnection(ctx context.Context, serviceID, intent string) (*Trigger, error) {
	var trigger Trigger
	path := "/services/" + url.PathEscape(serviceID) + "/connection"
	if err := c.do(ctx, c.writes, http.MethodPost, path, ConnectionRequest{Intent: intent}, &trigger); err != nil {
		return nil, fmt.Errorf("failed to request connection of service %s to intent %s: %w", serviceID, intent, err)
	}
	return &trigger, nil
}

// CancelConnectionRequest implements Backend.
func (c *Client) CancelConnectionRequest(ctx context.Context, trigger Trigger) error {
	path := "/triggers/" + url.PathEscape(trigger.ID) + "/cancel"
	if err := c.do(ctx, c.writes, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("failed to cancel connection request %s: %w", trigger.ID, err)
	}
	return nil
}

// ListAvailableIntents implements Backend.
func (c *Client) ListAvailableIntents(ctx context.Context) ([]Intent, error) {
	var intents []Intent
	if err := c.do(ctx, c.reads, http.MethodGet, "/intents/available", nil, &intents); err != nil {
		return nil, fmt.Errorf("failed to list available intents: %w", err)
	}
	return intents, nil
}

// do sends one request and decodes a JSON response into out when out is
// non-nil and the response has a body.
func (c *Client) do(ctx context.Context, hc *retryablehttp.Client, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set(HeaderRequestID, requestID)

	logging.Debug(clientSubsystem, "%s %s (request %s)", method, path, requestID)

	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       path,
			Message:    strings.TrimSpace(string(msg)),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// leveledLogger routes retryablehttp's own logging into pkg/logging.
type leveledLogger struct{}

func (leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	logging.Error(clientSubsystem, nil, "%s%s", msg, formatKV(keysAndValues))
}

func (leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	logging.Debug(clientSubsystem, "%s%s", msg, formatKV(keysAndValues))
}

func (leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	logging.Debug(clientSubsystem, "%s%s", msg, formatKV(keysAndValues))
}

func (leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	logging.Warn(clientSubsystem, "%s%s", msg, formatKV(keysAndValues))
}

func formatKV(kv []interface{}) string {
	var b strings.Builder
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	return b.String()
}
