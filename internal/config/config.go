// Package config assembles runtime settings from STRATCOACH_* environment
// variables. Command-line flags are applied on top by the cli package.
package config

import (
	"os"
	"strconv"

	"github.com/alexanderramin/stratcoach/internal/llm"
	"github.com/alexanderramin/stratcoach/internal/wizard"
)

// Config is everything main needs to wire the application.
type Config struct {
	LLM    llm.LLMConfig
	Wizard wizard.Options

	// JournalPath enables the call journal when non-empty.
	JournalPath string
	LogFile     string
	LogLevel    string

	// APIKey pre-fills the credential prompt. Empty means ask.
	APIKey string
}

// Load reads configuration from the environment over defaults.
func Load() Config {
	cfg := Config{
		LLM:      llm.LoadConfig(),
		Wizard:   wizard.DefaultOptions(),
		LogLevel: "INFO",
	}

	cfg.JournalPath = os.Getenv("STRATCOACH_JOURNAL_DB")
	cfg.LogFile = os.Getenv("STRATCOACH_LOG_FILE")
	if v := os.Getenv("STRATCOACH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v, ok := envBool("STRATCOACH_LOG_REFINEMENTS"); ok {
		cfg.Wizard.LogRefinements = v
	}
	if v, ok := envBool("STRATCOACH_ERRORS_INLINE"); ok {
		cfg.Wizard.ErrorsAsContent = v
	}
	cfg.APIKey = os.Getenv("OPENAI_API_KEY")

	return cfg
}

func envBool(name string) (bool, bool) {
	v := os.Getenv(name)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}
