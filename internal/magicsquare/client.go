package magicsquare

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/roivaz/magic-mcp/internal/logging"
)

const maxResponseSize = 1 << 20 // 1MB cap on upstream bodies

// Result is a parsed magic square answer. Metadata is populated only when the
// caller asked for debug passthrough.
type Result struct {
	Size     int
	Square   [][]int
	Metadata map[string]any
}

// Config carries the client's fixed endpoint and timeout. HTTPClient is
// optional and exists for test substitution.
type Config struct {
	APIURL     string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     logging.Logger
}

// Client issues generation calls against the remote magic square service.
// Each call is independent and stateless; there are no retries.
type Client struct {
	cfg  Config
	http *http.Client
	log  logging.Logger
}

func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		cfg:  cfg,
		http: httpClient,
		log:  logging.New(cfg.Logger.Logr()),
	}
}

type generateRequest struct {
	N     int  `json:"n"`
	Debug bool `json:"debug,omitempty"`
}

// Generate requests an n x n magic square of the given size. Size must be
// positive; validation failures return before any network I/O. When debug is
// true the flag is forwarded upstream and the full parsed body is attached as
// Result.Metadata.
func (c *Client) Generate(ctx context.Context, size int, debug bool) (Result, error) {
	if size <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	payload, err := json.Marshal(generateRequest{N: size, Debug: debug})
	if err != nil {
		return Result{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	c.log.Debug("requesting magic square", "size", size, "debug", debug)

	resp, err := c.http.Do(req)
	if err != nil {
		annotated := c.annotateError(err)
		c.log.Error(annotated, "magic square request failed", "elapsed", time.Since(start).String())
		return Result{}, fmt.Errorf("%w: %v", ErrUnavailable, annotated)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{}, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return Result{}, fmt.Errorf("%w: read response: %v", ErrUnavailable, c.annotateError(err))
	}

	result, err := parsePayload(body, size)
	if err != nil {
		return Result{}, err
	}
	if debug {
		result.Metadata = buildMetadata(body)
	}

	c.log.Info("magic square generated", "size", result.Size, "elapsed", time.Since(start).String())
	return result, nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.cfg.Timeout)
}

func (c *Client) annotateError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request timed out after %s: %w", c.cfg.Timeout, err)
	}
	return err
}
