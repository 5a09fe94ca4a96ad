package llms

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptrace"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/httptrace/otelhttptrace"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/getzep/animalfacts/config"
	"github.com/getzep/animalfacts/internal"
	"github.com/getzep/animalfacts/pkg/models"
)

const (
	ServiceGemini    = "gemini"
	ServiceOpenAI    = "openai"
	ServiceAnthropic = "anthropic"
)

var log = internal.GetLogger()

// ErrLLMNotConfigured is returned when the selected service has no API key.
var ErrLLMNotConfigured = errors.New("llm is not configured")

var DefaultModels = map[string]string{
	ServiceGemini:    "gemini-2.5-flash",
	ServiceOpenAI:    "gpt-4o-mini",
	ServiceAnthropic: "claude-3-5-haiku-latest",
}

// KeyPrefixes are the known prefixes of syntactically valid API keys per service.
var KeyPrefixes = map[string]string{
	ServiceGemini:    "AIza",
	ServiceOpenAI:    "sk-",
	ServiceAnthropic: "sk-ant-",
}

// NewLLMClient returns the generation capability for the configured service.
// ErrLLMNotConfigured is returned when the service's API key is empty.
func NewLLMClient(ctx context.Context, cfg *config.Config) (models.LLM, error) {
	service := ServiceName(cfg)
	if cfg.LLM.APIKey() == "" {
		return nil, ErrLLMNotConfigured
	}

	switch service {
	case ServiceGemini:
		return NewGeminiLLM(ctx, cfg)
	case ServiceOpenAI:
		return NewOpenAILLM(ctx, cfg)
	case ServiceAnthropic:
		return NewAnthropicLLM(ctx, cfg)
	default:
		return nil, fmt.Errorf("invalid LLM service: %s", cfg.LLM.Service)
	}
}

// ServiceName returns the configured service, defaulting to gemini.
func ServiceName(cfg *config.Config) string {
	if cfg.LLM.Service == "" {
		return ServiceGemini
	}
	return cfg.LLM.Service
}

// ModelName returns the configured model or the service default.
func ModelName(cfg *config.Config) string {
	if cfg.LLM.Model != "" {
		return cfg.LLM.Model
	}
	return DefaultModels[ServiceName(cfg)]
}

// IsKeyFormatValid reports whether the configured key carries the service's known prefix.
func IsKeyFormatValid(cfg *config.Config) bool {
	key := cfg.LLM.APIKey()
	prefix, ok := KeyPrefixes[ServiceName(cfg)]
	return ok && key != "" && strings.HasPrefix(key, prefix)
}

type LLMError struct {
	message       string
	originalError error
}

func (e *LLMError) Error() string {
	if e.originalError == nil {
		return fmt.Sprintf("llm error: %s", e.message)
	}
	return fmt.Sprintf("llm error: %s (original error: %v)", e.message, e.originalError)
}

func (e *LLMError) Unwrap() error {
	return e.originalError
}

func NewLLMError(message string, originalError error) *LLMError {
	return &LLMError{message: message, originalError: originalError}
}

// withTimeout applies the configured upstream timeout. A zero timeout leaves ctx untouched.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// NewRetryableHTTPClient returns a new retryable HTTP client with the given retryMax and timeout.
// The retryable HTTP transport is wrapped in an OpenTelemetry transport.
func NewRetryableHTTPClient(retryMax int, timeout time.Duration) *http.Client {
	retryableHTTPClient := retryablehttp.NewClient()
	retryableHTTPClient.RetryMax = retryMax
	retryableHTTPClient.HTTPClient.Timeout = timeout
	retryableHTTPClient.Logger = internal.NewLeveledLogrus(log)
	retryableHTTPClient.Backoff = retryablehttp.DefaultBackoff
	retryableHTTPClient.CheckRetry = retryPolicy
	// hand upstream error responses back to the SDKs so they can surface the API message
	retryableHTTPClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &http.Client{
		Transport: otelhttp.NewTransport(
			retryableHTTPClient.StandardClient().Transport,
			otelhttp.WithClientTrace(func(ctx context.Context) *httptrace.ClientTrace {
				return otelhttptrace.NewClientTrace(ctx)
			}),
		),
	}
}

// retryPolicy is a retryablehttp.CheckRetry function. It is used to determine
// whether a request should be retried or not.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	// do not retry on context.Canceled or context.DeadlineExceeded
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	// 4xx are caller errors (bad key, bad request, quota) and won't succeed on retry
	if resp != nil && resp.StatusCode >= 400 && resp.StatusCode < 500 &&
		resp.StatusCode != http.StatusTooManyRequests {
		return false, nil
	}

	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}
