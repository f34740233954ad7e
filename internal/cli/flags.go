package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/stratcoach/internal/config"
	"github.com/alexanderramin/stratcoach/internal/llm"
	"github.com/spf13/pflag"
)

// providerValue lets pflag parse and validate --provider directly into the
// LLM config.
type providerValue struct {
	target *llm.Provider
}

func (v providerValue) String() string {
	if v.target == nil {
		return ""
	}
	return string(*v.target)
}

func (v providerValue) Set(s string) error {
	p := llm.Provider(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case llm.ProviderOpenAI, llm.ProviderOllama:
		*v.target = p
		return nil
	}
	return fmt.Errorf("%w: %q (want openai or ollama)", llm.ErrUnknownProvider, s)
}

func (providerValue) Type() string { return "provider" }

// bindFlags registers flags whose defaults come from the environment, so a
// flag only overrides what the user sets explicitly.
func bindFlags(fs *pflag.FlagSet, cfg *config.Config) {
	bindLLMFlags(fs, &cfg.LLM)

	fs.StringVar(&cfg.JournalPath, "journal", cfg.JournalPath, "record completion call metadata in this SQLite file")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write structured logs to this file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (DEBUG, INFO, WARN, ERROR)")
	fs.BoolVar(&cfg.Wizard.LogRefinements, "log-refinements", cfg.Wizard.LogRefinements, "append refined plans to the conversation log")
	fs.BoolVar(&cfg.Wizard.ErrorsAsContent, "errors-inline", cfg.Wizard.ErrorsAsContent, "store failed completions as \"Error: ...\" step content")
}

func bindLLMFlags(fs *pflag.FlagSet, cfg *llm.LLMConfig) {
	fs.Var(providerValue{target: &cfg.Provider}, "provider", "completion provider (openai or ollama)")
	fs.StringVar(&cfg.Model, "model", cfg.Model, "model name")
	fs.StringVar(&cfg.Endpoint, "endpoint", cfg.Endpoint, "provider base URL")
	fs.IntVar(&cfg.TimeoutMs, "timeout-ms", cfg.TimeoutMs, "per-call timeout in milliseconds")
	fs.IntVar(&cfg.MaxRetries, "max-retries", cfg.MaxRetries, "retries after a failed call")
	fs.BoolVar(&cfg.LogCalls, "log-calls", cfg.LogCalls, "log every completion call")
}
