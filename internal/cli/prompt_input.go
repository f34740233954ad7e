package cli

import (
	"fmt"
	"io"
	"strings"
)

// promptLine prints message and reads one line, trimmed.
func promptLine(in io.Reader, out io.Writer, message string) (string, error) {
	if out != nil {
		fmt.Fprint(out, message)
	}
	text, err := readPromptLine(in)
	return strings.TrimSpace(text), err
}

// promptBlock reads lines until an empty one and joins them with newlines.
func promptBlock(in io.Reader, out io.Writer, message string) (string, error) {
	if out != nil {
		fmt.Fprint(out, message)
	}
	var lines []string
	for {
		line, err := readPromptLine(in)
		line = strings.TrimRight(line, " \t")
		if line != "" {
			lines = append(lines, line)
		}
		if err != nil {
			if err == io.EOF && len(lines) > 0 {
				return strings.Join(lines, "\n"), nil
			}
			return strings.Join(lines, "\n"), err
		}
		if line == "" {
			return strings.Join(lines, "\n"), nil
		}
	}
}

func promptYesNoIO(in io.Reader, out io.Writer, message string) bool {
	return promptYesNoWithDefaultIO(in, out, message, false)
}

func promptYesNoWithDefaultIO(in io.Reader, out io.Writer, message string, defaultYes bool) bool {
	if out != nil {
		fmt.Fprint(out, message)
	}

	text, err := readPromptLine(in)
	if err != nil {
		return false
	}

	text = strings.TrimSpace(strings.ToLower(text))
	if text == "" {
		return defaultYes
	}
	return text == "y" || text == "yes"
}

// readPromptLine reads until either LF or CR so Enter works in normal and raw terminal modes.
// It reads a byte at a time so no input is buffered away from later prompts.
func readPromptLine(in io.Reader) (string, error) {
	if in == nil {
		return "", io.EOF
	}

	var buf []byte
	var one [1]byte

	for {
		n, err := in.Read(one[:])
		if n > 0 {
			switch one[0] {
			case '\n', '\r':
				return string(buf), nil
			default:
				buf = append(buf, one[0])
			}
		}

		if err != nil {
			if err == io.EOF && len(buf) > 0 {
				return string(buf), nil
			}
			return string(buf), err
		}
	}
}
