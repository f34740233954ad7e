package wizard

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrReportIncomplete is returned by SaveReport when there is nothing to save
// or no file name was given.
var ErrReportIncomplete = errors.New("please fill in all fields")

const reportTitle = "Strategic Plan Document"

// Report renders the session as a plain-text strategic plan document.
func (w *Wizard) Report() string {
	s := w.Snapshot()
	if s.Goals == "" && s.Outcomes == "" && s.Plan == "" && s.Rewards == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(reportTitle + "\n")
	b.WriteString(strings.Repeat("=", len(reportTitle)) + "\n")
	b.WriteString(s.Goals)
	for _, section := range []string{s.Outcomes, s.Plan, s.Rewards} {
		b.WriteString("\n\n\n")
		b.WriteString(section)
	}
	b.WriteString("\n")
	return b.String()
}

// SaveReport writes Report to dir/<name>.txt and returns the path written.
// A trailing ".txt" on name is not doubled.
func (w *Wizard) SaveReport(dir, name string) (string, error) {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".txt")
	report := w.Report()
	if report == "" || name == "" {
		return "", ErrReportIncomplete
	}
	if strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("save report: file name %q must not contain a path separator", name)
	}

	path := filepath.Join(dir, name+".txt")
	if err := os.WriteFile(path, []byte(report), 0644); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}
	return path, nil
}
