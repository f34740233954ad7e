package formatter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Just now", HumanTimestampFrom(now.Add(-10*time.Second), now))
	assert.Equal(t, "5m ago", HumanTimestampFrom(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", HumanTimestampFrom(now.Add(-3*time.Hour), now))
	assert.Equal(t, "Mar 10, 2026", HumanTimestampFrom(now.AddDate(0, 0, -4), now))
}

func TestFormatLatency(t *testing.T) {
	assert.Equal(t, "0ms", FormatLatency(-5))
	assert.Equal(t, "999ms", FormatLatency(999))
	assert.Equal(t, "1.0s", FormatLatency(1000))
	assert.Equal(t, "120.0s", FormatLatency(120000))
}

func TestCallStatus(t *testing.T) {
	assert.Equal(t, "ok", stripANSI(CallStatus(true, "")))
	assert.Equal(t, "err TIMEOUT", stripANSI(CallStatus(false, "TIMEOUT")))
	assert.Equal(t, "err UNKNOWN", stripANSI(CallStatus(false, "")))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "3f1c2a9e", stripANSI(TruncID("3f1c2a9e-0000-4000-8000-000000000001")))
	assert.Equal(t, "short", stripANSI(TruncID("short")))
}

func TestRenderBox(t *testing.T) {
	out := stripANSI(RenderBox("Saved", "q3-plan.txt"))
	assert.Contains(t, out, "SAVED")
	assert.Contains(t, out, "q3-plan.txt")
	assert.Contains(t, out, "╭")
}

func TestRenderTableAligned_RightAlignsColumns(t *testing.T) {
	out := stripANSI(RenderTableAligned([]string{"NAME", "N"}, [][]string{{"a", "10"}, {"bb", "7"}}, map[int]bool{1: true}))
	assert.Equal(t, "NAME   N\n────  ──\na     10\nbb     7\n", out)
}

func TestStartSpinner_StopClearsLine(t *testing.T) {
	var buf bytes.Buffer
	stop := StartSpinner(&buf, "Generating plan...")
	stop()
	stop()

	assert.True(t, strings.HasSuffix(buf.String(), "\r\033[K"))
}
