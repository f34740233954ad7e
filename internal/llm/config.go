package llm

import (
	"os"
	"strconv"
	"strings"

	"github.com/alexanderramin/stratcoach/internal/domain"
)

// TaskType identifies the kind of LLM task being performed. Each wizard step
// that calls the model is its own task.
type TaskType string

const (
	TaskOutcomes TaskType = TaskType(domain.StepOutcomes)
	TaskPlan     TaskType = TaskType(domain.StepPlan)
	TaskRewards  TaskType = TaskType(domain.StepRewards)
	TaskRefine   TaskType = TaskType(domain.StepRefine)
)

// Provider names a completion backend.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
)

const defaultOllamaEndpoint = "http://localhost:11434"

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Provider   Provider
	LogCalls   bool
	Endpoint   string // empty uses the provider default
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig talking to OpenAI's gpt-4 with no retries.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Provider:   ProviderOpenAI,
		LogCalls:   false,
		Endpoint:   "",
		Model:      "gpt-4",
		TimeoutMs:  120000,
		MaxRetries: 0,
		Tasks: map[TaskType]TaskConfig{
			TaskOutcomes: {Temperature: 0.7, MaxTokens: 1024},
			TaskPlan:     {Temperature: 0.7, MaxTokens: 1536},
			TaskRewards:  {Temperature: 0.8, MaxTokens: 768},
			TaskRefine:   {Temperature: 0.7, MaxTokens: 1536},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("STRATCOACH_LLM_PROVIDER"); v != "" {
		cfg.Provider = Provider(strings.ToLower(v))
	}
	if v := os.Getenv("STRATCOACH_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("STRATCOACH_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("STRATCOACH_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("STRATCOACH_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("STRATCOACH_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskOutcomes, "STRATCOACH_LLM_OUTCOMES_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskPlan, "STRATCOACH_LLM_PLAN_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskRewards, "STRATCOACH_LLM_REWARDS_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskRefine, "STRATCOACH_LLM_REFINE_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

// EffectiveEndpoint fills in the provider default when Endpoint is unset.
// An empty result means the OpenAI client picks its own base URL.
func (c LLMConfig) EffectiveEndpoint() string {
	if c.Endpoint != "" {
		return strings.TrimRight(c.Endpoint, "/")
	}
	if c.Provider == ProviderOllama {
		return defaultOllamaEndpoint
	}
	return ""
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
