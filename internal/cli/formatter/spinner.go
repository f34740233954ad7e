package formatter

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// LineSpinner animates "<frame> <message> (Ns)" on a single line of w while a
// completion is in flight. It shares its frames with the TUI spinner.
type LineSpinner struct {
	w       io.Writer
	style   spinner.Spinner
	message string

	once sync.Once
	stop chan struct{}
	done chan struct{}
}

// NewLineSpinner returns a stopped spinner writing to w.
func NewLineSpinner(w io.Writer, message string) *LineSpinner {
	return &LineSpinner{
		w:       w,
		style:   spinner.Dot,
		message: message,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start runs the animation until Stop.
func (s *LineSpinner) Start() {
	started := time.Now()
	ticker := time.NewTicker(s.style.FPS)
	go func() {
		defer close(s.done)
		defer ticker.Stop()
		for i := 0; ; i++ {
			select {
			case <-s.stop:
				fmt.Fprint(s.w, "\r\033[K")
				return
			case <-ticker.C:
				frame := s.style.Frames[i%len(s.style.Frames)]
				elapsed := int(time.Since(started).Seconds())
				fmt.Fprintf(s.w, "\r  %s %s %s", StylePurple.Render(frame), Dim(s.message), Dim(fmt.Sprintf("(%ds)", elapsed)))
			}
		}
	}()
}

// Stop clears the line and waits for the animation goroutine. Calling it more
// than once is a no-op.
func (s *LineSpinner) Stop() {
	s.once.Do(func() {
		close(s.stop)
		<-s.done
	})
}

// StartSpinner starts a LineSpinner and returns its Stop.
func StartSpinner(w io.Writer, message string) func() {
	s := NewLineSpinner(w, message)
	s.Start()
	return s.Stop
}
