package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"
)

// GenerateRequest holds the parameters for an LLM generation call.
type GenerateRequest struct {
	Task         TaskType
	SessionID    string // forwarded to observers only
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
type LLMClient interface {
	// Generate sends a system instruction plus a single user turn and returns
	// the first completion's text.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// ClientFactory builds a client from an opaque credential.
type ClientFactory func(apiKey string) (LLMClient, error)

// transportRequest is the provider-neutral payload handed to a transport.
type transportRequest struct {
	Model       string
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// transport performs one round trip against a concrete provider.
type transport interface {
	send(ctx context.Context, req transportRequest) (text, model string, err error)
}

// client wraps a transport with timeouts, retries and call observation.
type client struct {
	cfg       LLMConfig
	transport transport
	observer  Observer
}

func newClient(cfg LLMConfig, t transport, observer Observer) *client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &client{cfg: cfg, transport: t, observer: observer}
}

func (c *client) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	taskCfg := c.cfg.Tasks[req.Task]
	temp := taskCfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	timeoutMs := c.cfg.TaskTimeout(req.Task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	body := transportRequest{
		Model:       c.cfg.Model,
		System:      req.SystemPrompt,
		Prompt:      req.UserPrompt,
		Temperature: temp,
		MaxTokens:   maxTok,
	}

	event := LLMCallEvent{
		Task:        req.Task,
		Provider:    c.cfg.Provider,
		SessionID:   req.SessionID,
		Model:       c.cfg.Model,
		PromptChars: len(req.SystemPrompt) + len(req.UserPrompt),
	}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		text, model, err := c.transport.send(ctx, body)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			event.LatencyMs = latency
			event.Success = true
			event.ResponseChars = len(text)
			if model != "" {
				event.Model = model
			}
			c.observer.OnCallComplete(event)
			return &GenerateResponse{
				Text:      text,
				Model:     event.Model,
				LatencyMs: latency,
			}, nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout or a rejected key.
		if ctx.Err() != nil || errors.Is(err, ErrUnauthorized) {
			break
		}
	}

	err := classifyError(ctx, lastErr, attempts)
	event.LatencyMs = time.Since(start).Milliseconds()
	event.ErrorCode = errorCode(err)
	c.observer.OnCallComplete(event)
	return nil, err
}

func classifyError(ctx context.Context, err error, attempts int) error {
	switch {
	case ctx.Err() != nil:
		return ErrTimeout
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrEmptyResponse):
		return err
	case isConnectionError(err):
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	case attempts > 1:
		return fmt.Errorf("%w: %v", ErrRetryExhausted, err)
	default:
		return err
	}
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return true
	}
	return strings.Contains(err.Error(), "connection refused")
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrProviderUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrEmptyResponse):
		return "EMPTY_RESPONSE"
	case errors.Is(err, ErrRetryExhausted):
		return "RETRY_EXHAUSTED"
	default:
		return "UNKNOWN"
	}
}
