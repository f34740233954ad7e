package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptYesNoIO(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "yes lowercase lf", input: "y\n", want: true},
		{name: "yes word lf", input: "yes\n", want: true},
		{name: "yes mixed case lf", input: "YeS\n", want: true},
		{name: "yes lowercase cr", input: "y\r", want: true},
		{name: "yes word cr", input: "yes\r", want: true},
		{name: "no default lf", input: "\n", want: false},
		{name: "no explicit cr", input: "n\r", want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			got := promptYesNoIO(strings.NewReader(tc.input), &out, "Confirm? [y/N]: ")
			assert.Equal(t, tc.want, got)
			assert.Equal(t, "Confirm? [y/N]: ", out.String())
		})
	}
}

func TestPromptYesNoWithDefaultIO(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{name: "empty input defaults yes", input: "\n", defaultYes: true, want: true},
		{name: "empty input defaults no", input: "\n", defaultYes: false, want: false},
		{name: "explicit no overrides yes default", input: "n\n", defaultYes: true, want: false},
		{name: "explicit yes with no default", input: "yes\n", defaultYes: false, want: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			got := promptYesNoWithDefaultIO(strings.NewReader(tc.input), &out, "Confirm? [Y/n]: ", tc.defaultYes)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, "Confirm? [Y/n]: ", out.String())
		})
	}
}

func TestReadPromptLine_EOFWithoutNewline(t *testing.T) {
	t.Parallel()

	got, err := readPromptLine(strings.NewReader("yes"))
	assert.NoError(t, err)
	assert.Equal(t, "yes", got)
}

func TestPromptLine_TrimsInput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	got, err := promptLine(strings.NewReader("  Grow revenue 20%  \r\n"), &out, "Objective: ")
	require.NoError(t, err)
	assert.Equal(t, "Grow revenue 20%", got)
	assert.Equal(t, "Objective: ", out.String())
}

func TestPromptLine_EOF(t *testing.T) {
	t.Parallel()

	_, err := promptLine(strings.NewReader(""), nil, "Objective: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPromptBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "stops at empty line", input: "Launch EU store\nHire a lead\n\nignored\n", want: "Launch EU store\nHire a lead"},
		{name: "empty first line", input: "\n", want: ""},
		{name: "eof after text", input: "Launch EU store", want: "Launch EU store"},
		{name: "eof without text", input: "", wantErr: io.EOF},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := promptBlock(strings.NewReader(tc.input), nil, "Outcome:\n")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
