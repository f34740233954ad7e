package llm

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_Providers(t *testing.T) {
	cfg := DefaultConfig()

	_, err := NewClient(cfg, "", NoopObserver{})
	var authErr *AuthError
	assert.ErrorAs(t, err, &authErr)

	c, err := NewClient(cfg, "sk-anything", NoopObserver{})
	require.NoError(t, err)
	assert.NotNil(t, c)

	cfg.Provider = ProviderOllama
	c, err = NewClient(cfg, "", NoopObserver{})
	require.NoError(t, err, "ollama needs no key")
	assert.NotNil(t, c)
	assert.False(t, cfg.RequiresCredential())

	cfg.Provider = "bard"
	_, err = NewClient(cfg, "k", NoopObserver{})
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestNewFactory_ReadsConfigLate(t *testing.T) {
	cfg := DefaultConfig()
	factory := NewFactory(&cfg, nil)

	cfg.Provider = ProviderOllama
	c, err := factory("")
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestLogObserver_WritesStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	obs := NewLogObserver(logger)

	obs.OnCallComplete(LLMCallEvent{Task: TaskPlan, Model: "gpt-4", Success: true, LatencyMs: 12})
	obs.OnCallComplete(LLMCallEvent{Task: TaskRewards, Model: "gpt-4", ErrorCode: "TIMEOUT"})

	out := buf.String()
	assert.Contains(t, out, "msg=llm_call")
	assert.Contains(t, out, "task=plan")
	assert.Contains(t, out, "status=ok")
	assert.Contains(t, out, "status=err:TIMEOUT")
}

func TestMultiObserver_FansOut(t *testing.T) {
	a, b := &recordingObserver{}, &recordingObserver{}
	MultiObserver{a, nil, b}.OnCallComplete(LLMCallEvent{Task: TaskPlan})

	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 1)
}
