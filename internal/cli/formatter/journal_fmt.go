package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/stratcoach/internal/domain"
)

const journalTimeLayout = "2006-01-02 15:04"

// FormatJournalSessions lists recorded sessions, newest first.
func FormatJournalSessions(sessions []*domain.JournalSession) string {
	if len(sessions) == 0 {
		return Dim("No journal sessions recorded.") + "\n"
	}

	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			s.ID,
			s.StartedAt.UTC().Format(journalTimeLayout),
			dashIfEmpty(s.Provider),
			dashIfEmpty(s.Model),
			strconv.Itoa(s.CallCount),
		})
	}

	return RenderTableAligned(
		[]string{"SESSION", "STARTED (UTC)", "PROVIDER", "MODEL", "CALLS"},
		rows,
		map[int]bool{4: true},
	)
}

// FormatJournalCalls lists one session's completion calls in order, followed
// by a one-line summary.
func FormatJournalCalls(session *domain.JournalSession, calls []*domain.CompletionCall) string {
	var b strings.Builder
	b.WriteString(Header("Session " + session.ID))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("started %s UTC", session.StartedAt.UTC().Format(journalTimeLayout))))
	b.WriteString("\n\n")

	if len(calls) == 0 {
		b.WriteString(Dim("No completion calls recorded.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(calls))
	var failed int
	var totalMs int64
	for i, c := range calls {
		if !c.Success {
			failed++
		}
		totalMs += c.LatencyMs
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			string(c.Task),
			CallStatus(c.Success, c.ErrorCode),
			FormatLatency(c.LatencyMs),
			strconv.Itoa(c.PromptChars),
			strconv.Itoa(c.ResponseChars),
			dashIfEmpty(c.Model),
		})
	}

	b.WriteString(RenderTableAligned(
		[]string{"#", "TASK", "STATUS", "LATENCY", "PROMPT", "RESPONSE", "MODEL"},
		rows,
		map[int]bool{0: true, 3: true, 4: true, 5: true},
	))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d calls, %d failed, %s total", len(calls), failed, FormatLatency(totalMs))))
	b.WriteString("\n")
	return b.String()
}

func dashIfEmpty(s string) string {
	return domain.CoalesceStr(s, "--")
}
