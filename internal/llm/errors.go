package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderUnavailable indicates the completion endpoint is unreachable.
	ErrProviderUnavailable = errors.New("llm provider unavailable")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrUnauthorized indicates the endpoint rejected the credential.
	ErrUnauthorized = errors.New("llm credential rejected")

	// ErrEmptyResponse indicates the endpoint returned no completion choices.
	ErrEmptyResponse = errors.New("llm returned no completion")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")

	// ErrMissingCredential is the cause of an AuthError for an empty key.
	ErrMissingCredential = errors.New("api key is empty")

	// ErrUnknownProvider is returned by NewClient for an unsupported provider.
	ErrUnknownProvider = errors.New("unknown llm provider")
)

// AuthError reports that a client could not be constructed from a credential.
type AuthError struct {
	Provider Provider
	Err      error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("invalid %s api key: %v", e.Provider, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }
