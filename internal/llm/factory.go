package llm

import "fmt"

// NewClient builds a client for cfg.Provider. The Ollama provider does not
// need a credential and ignores apiKey.
func NewClient(cfg LLMConfig, apiKey string, observer Observer) (LLMClient, error) {
	switch cfg.Provider {
	case ProviderOpenAI, "":
		return NewOpenAIClient(cfg, apiKey, observer)
	case ProviderOllama:
		return NewOllamaClient(cfg, observer), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

// NewFactory binds a config and observer into a ClientFactory. The config is
// read through the pointer at call time so late flag overrides apply.
func NewFactory(cfg *LLMConfig, observer Observer) ClientFactory {
	return func(apiKey string) (LLMClient, error) {
		return NewClient(*cfg, apiKey, observer)
	}
}

// RequiresCredential reports whether the provider needs an API key.
func (c LLMConfig) RequiresCredential() bool {
	return c.Provider != ProviderOllama
}
