package wizard

// Options tunes how the wizard records results.
type Options struct {
	// ErrorsAsContent stores "Error: ..." into the target field and the
	// conversation when a completion fails. When false both are left alone and
	// only the returned error carries the failure.
	ErrorsAsContent bool

	// LogRefinements appends refined plans to the conversation. Off by default:
	// refinement has never been part of the log.
	LogRefinements bool
}

// DefaultOptions keeps failures visible in place and refinements out of the log.
func DefaultOptions() Options {
	return Options{
		ErrorsAsContent: true,
		LogRefinements:  false,
	}
}
