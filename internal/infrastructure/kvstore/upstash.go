package kvstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/mikiasgoitom/folio/internal/domain/contract"
	"github.com/mikiasgoitom/folio/internal/domain/entity"
	"github.com/mikiasgoitom/folio/internal/infrastructure/metrics"
)

const (
	upstashDriver       = "upstash"
	defaultTimeout      = 5 * time.Second
	maxResponseBodySize = 8 << 20
)

// UpstashConfig holds the REST endpoint and bearer token of an Upstash Redis database.
type UpstashConfig struct {
	URL     string
	Token   string
	Timeout time.Duration
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

// UpstashClient talks to Upstash Redis over its REST API. Each operation is one
// POST of a JSON command array, e.g. ["INCR","likes:hello"], answered with
// {"result": ...} or {"error": "..."}.
type UpstashClient struct {
	endpoint string
	token    string
	http     *http.Client
	breaker  *gobreaker.CircuitBreaker
}

var (
	_ contract.IKVStore = (*UpstashClient)(nil)
	_ contract.IPinger  = (*UpstashClient)(nil)
)

// commandError is an error reply from the store for a well-formed request.
// It does not count against the circuit breaker.
type commandError struct {
	command string
	message string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("%s: %s", e.command, e.message)
}

type upstashResponse struct {
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error"`
}

// NewUpstashClient validates the credentials and builds a client.
// It does not contact the store.
func NewUpstashClient(cfg UpstashConfig) (*UpstashClient, error) {
	if cfg.URL == "" || cfg.Token == "" {
		return nil, fmt.Errorf("%w: UPSTASH_REDIS_REST_URL and UPSTASH_REDIS_REST_TOKEN must be set (url set: %t, token set: %t)",
			entity.ErrStoreNotConfigured, cfg.URL != "", cfg.Token != "")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &UpstashClient{
		endpoint: strings.TrimRight(cfg.URL, "/"),
		token:    cfg.Token,
		http:     httpClient,
		breaker:  newBreaker(upstashDriver),
	}, nil
}

// newBreaker opens after 60% of at least 5 requests in a 10s window failed and
// probes again after 30s.
func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= 5 && float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		IsSuccessful: func(err error) bool {
			var cmdErr *commandError
			return err == nil || errors.As(err, &cmdErr) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Circuit breaker state changed", "component", name, "from", from.String(), "to", to.String())
			metrics.StoreBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
		},
	})
}

func breakerStateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func (c *UpstashClient) Get(ctx context.Context, key string) (string, bool, error) {
	raw, err := c.do(ctx, "GET", key)
	if err != nil {
		return "", false, err
	}
	value, ok := scalarString(raw)
	return value, ok, nil
}

func (c *UpstashClient) Set(ctx context.Context, key, value string) error {
	_, err := c.do(ctx, "SET", key, value)
	return err
}

func (c *UpstashClient) Incr(ctx context.Context, key string) (int64, error) {
	return c.doInt(ctx, "INCR", key)
}

func (c *UpstashClient) Decr(ctx context.Context, key string) (int64, error) {
	return c.doInt(ctx, "DECR", key)
}

func (c *UpstashClient) LPush(ctx context.Context, key, value string) (int64, error) {
	return c.doInt(ctx, "LPUSH", key, value)
}

func (c *UpstashClient) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	raw, err := c.do(ctx, "LRANGE", key, strconv.FormatInt(start, 10), strconv.FormatInt(stop, 10))
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return []string{}, nil
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: LRANGE %s: %v", entity.ErrMalformedRecord, key, err)
	}
	return items, nil
}

// Ping checks credentials and reachability.
func (c *UpstashClient) Ping(ctx context.Context) error {
	_, err := c.do(ctx, "PING")
	return err
}

func (c *UpstashClient) doInt(ctx context.Context, args ...string) (int64, error) {
	raw, err := c.do(ctx, args...)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("%w: %s reply %s: %v", entity.ErrMalformedRecord, args[0], raw, err)
	}
	return n, nil
}

func (c *UpstashClient) do(ctx context.Context, args ...string) (json.RawMessage, error) {
	start := time.Now()
	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.send(ctx, args)
	})
	metrics.ObserveStoreOp(upstashDriver, strings.ToLower(args[0]), start, err)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %s: %w", entity.ErrStoreUnavailable, args[0], err)
		}
		return nil, err
	}
	return out.(json.RawMessage), nil
}

func (c *UpstashClient) send(ctx context.Context, args []string) (json.RawMessage, error) {
	body, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s command: %w", args[0], err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build %s request: %v", entity.ErrStoreNotConfigured, args[0], err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", entity.ErrStoreUnavailable, args[0], err)
	}
	defer resp.Body.Close()

	var out upstashResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBodySize)).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %s: undecodable response (status %d): %v", entity.ErrStoreUnavailable, args[0], resp.StatusCode, err)
	}
	if out.Error != "" {
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("%w: %s: %s", entity.ErrStoreNotConfigured, args[0], out.Error)
		}
		return nil, fmt.Errorf("%w: %w", entity.ErrStoreUnavailable, &commandError{command: args[0], message: out.Error})
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s: unexpected status %d", entity.ErrStoreUnavailable, args[0], resp.StatusCode)
	}
	return out.Result, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// scalarString decodes a GET reply. Null and non-scalar replies report not found.
func scalarString(raw json.RawMessage) (string, bool) {
	if isNull(raw) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), true
	}
	return "", false
}
