package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// openAITransport sends chat completions through langchaingo's OpenAI client.
// Any OpenAI-compatible endpoint works when Endpoint is set.
type openAITransport struct {
	llm *openai.LLM
}

// NewOpenAIClient constructs an OpenAI-backed client. Construction fails with
// an *AuthError when the key is empty or the SDK rejects the options; a
// well-formed but revoked key is only detected on the first Generate call.
func NewOpenAIClient(cfg LLMConfig, apiKey string, observer Observer) (LLMClient, error) {
	cfg.Provider = ProviderOpenAI
	if apiKey == "" {
		return nil, &AuthError{Provider: ProviderOpenAI, Err: ErrMissingCredential}
	}

	opts := []openai.Option{
		openai.WithToken(apiKey),
	}
	if cfg.Model != "" {
		opts = append(opts, openai.WithModel(cfg.Model))
	}
	if endpoint := cfg.EffectiveEndpoint(); endpoint != "" {
		opts = append(opts, openai.WithBaseURL(endpoint))
	}

	model, err := openai.New(opts...)
	if err != nil {
		return nil, &AuthError{Provider: ProviderOpenAI, Err: err}
	}

	return newClient(cfg, &openAITransport{llm: model}, observer), nil
}

func (t *openAITransport) send(ctx context.Context, req transportRequest) (string, string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, req.System),
		llms.TextParts(llms.ChatMessageTypeHuman, req.Prompt),
	}

	callOpts := []llms.CallOption{
		llms.WithModel(req.Model),
		llms.WithTemperature(req.Temperature),
	}
	if req.MaxTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(req.MaxTokens))
	}

	resp, err := t.llm.GenerateContent(ctx, messages, callOpts...)
	if err != nil {
		return "", "", translateOpenAIError(err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", req.Model, ErrEmptyResponse
	}

	return resp.Choices[0].Content, req.Model, nil
}

// unauthorizedStatus matches the SDK's "status code: 401" error prefix.
var unauthorizedStatus = regexp.MustCompile(`status code: 401\b`)

// translateOpenAIError maps SDK status errors onto the package sentinels.
func translateOpenAIError(err error) error {
	msg := err.Error()
	switch {
	case unauthorizedStatus.MatchString(msg), strings.Contains(msg, "invalid_api_key"),
		strings.Contains(msg, "Incorrect API key"):
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	default:
		return err
	}
}
