package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/creai-labs/creai/internal/cache"
	"github.com/creai-labs/creai/internal/component"
	"github.com/creai-labs/creai/internal/normalize"
)

const (
	generatePath = "/api/v1/generate-component"

	// DefaultModifyTimeout is the client-side deadline raced against a
	// modification request.
	DefaultModifyTimeout = 90 * time.Second
)

// PlatformMobile and PlatformWeb are the accepted target platforms.
const (
	PlatformMobile = "mobile"
	PlatformWeb    = "web"
)

// Config holds the generation client configuration.
type Config struct {
	BaseURL       string
	ModifyTimeout time.Duration
}

// Client issues generate and modify requests against the backend
// generation service and feeds responses through the normalization
// pipeline. At most one request should be in flight per caller; duplicate
// submissions are the caller's concern.
type Client struct {
	baseURL       string
	modifyTimeout time.Duration
	http          *http.Client
	logger        *zap.Logger
	unwrapper     *normalize.Unwrapper
	cache         cache.Cache
}

// New creates a generation client. The cache memoizes modification
// results; pass a fresh Memory cache when no sharing is needed.
func New(config Config, logger *zap.Logger, c cache.Cache) *Client {
	timeout := config.ModifyTimeout
	if timeout == 0 {
		timeout = DefaultModifyTimeout
	}
	return &Client{
		baseURL:       strings.TrimRight(config.BaseURL, "/"),
		modifyTimeout: timeout,
		http:          &http.Client{},
		logger:        logger,
		unwrapper:     normalize.NewUnwrapper(logger),
		cache:         c,
	}
}

// Generate requests a new component for the prompt and platform. The
// platform identifier is lower-cased before sending. Failures carry the
// server-provided detail or message when present. There is no retry.
func (c *Client) Generate(ctx context.Context, prompt, platform string) (*component.Record, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("prompt is required")
	}
	platform = strings.ToLower(platform)
	if platform != PlatformMobile && platform != PlatformWeb {
		return nil, fmt.Errorf("unknown platform %q", platform)
	}

	c.logger.Info("generating component",
		zap.String("platform", platform),
		zap.Int("prompt_len", len(prompt)))

	return c.send(ctx, component.GenerateRequest{
		Prompt:   prompt,
		Platform: platform,
	})
}

// Modify requests a modification of an existing component. The cache is
// consulted first: a hit returns the stored record with no network call.
// On a miss the request is raced against the modify timeout; when the
// timer fires first the call fails with a TimeoutError while the losing
// request continues in the background and its result is discarded. A
// response without source code fails with an InvalidResponseError even
// when the transport call succeeded.
func (c *Client) Modify(ctx context.Context, modifyPrompt, currentCode string) (*component.Record, error) {
	if strings.TrimSpace(modifyPrompt) == "" {
		return nil, fmt.Errorf("modification prompt is required")
	}

	key := cache.Key(modifyPrompt, currentCode)
	if rec, ok := c.cache.Get(key); ok {
		c.logger.Info("modification served from cache")
		return rec, nil
	}

	req := component.GenerateRequest{
		Prompt:   fmt.Sprintf("Modify this component: %s. Current code: %s", modifyPrompt, currentCode),
		Platform: PlatformWeb,
	}

	type result struct {
		rec *component.Record
		err error
	}
	// Buffered so the losing sender never blocks.
	ch := make(chan result, 1)
	go func() {
		rec, err := c.send(ctx, req)
		ch <- result{rec: rec, err: err}
	}()

	timer := time.NewTimer(c.modifyTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		if res.err != nil {
			return nil, res.err
		}
		if res.rec.SourceCode == "" {
			return nil, &InvalidResponseError{}
		}
		c.cache.Put(key, res.rec)
		return res.rec, nil
	case <-timer.C:
		c.logger.Warn("modification request timed out",
			zap.Duration("timeout", c.modifyTimeout))
		return nil, &TimeoutError{Timeout: c.modifyTimeout}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// send performs one request against the generation endpoint and resolves
// the envelope into a normalized record.
func (c *Client) send(ctx context.Context, reqBody component.GenerateRequest) (*component.Record, error) {
	data, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body component.ErrorBody
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			c.logger.Warn("failed to decode error body", zap.Int("status", resp.StatusCode), zap.Error(err))
		}
		return nil, &TransportError{StatusCode: resp.StatusCode, Detail: body.Detail}
	}

	var envelope component.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if envelope.Status != component.StatusSuccess {
		return nil, &ServiceError{Message: envelope.Message}
	}

	rec := c.unwrapper.Unwrap(envelope.Component)
	return &rec, nil
}
