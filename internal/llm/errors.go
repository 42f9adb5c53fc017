package llm

import (
	"errors"
	"fmt"
)

// UserFacingGenerationMessage is shown for every generation failure regardless of cause.
const UserFacingGenerationMessage = "Failed to summon the quest. Check your API key or connection."

// Sentinel causes, matched with errors.Is against a *GenerationError.
var (
	ErrTransport         = errors.New("transport failure")
	ErrEmptyResponse     = errors.New("empty response")
	ErrMalformedResponse = errors.New("malformed response")
	ErrInvalidQuest      = errors.New("response does not match quest schema")
)

// ErrorKind classifies why a generation attempt failed.
type ErrorKind string

const (
	KindTransport ErrorKind = "transport"
	KindEmpty     ErrorKind = "empty"
	KindMalformed ErrorKind = "malformed"
	KindInvalid   ErrorKind = "invalid"
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindEmpty:
		return ErrEmptyResponse
	case KindMalformed:
		return ErrMalformedResponse
	case KindInvalid:
		return ErrInvalidQuest
	default:
		return ErrTransport
	}
}

// GenerationError is returned by every Generator on failure.
// Detail and Err are for diagnostics only; UserMessage is what the UI shows.
type GenerationError struct {
	Kind     ErrorKind
	Provider string
	Detail   string
	Err      error
}

func (e *GenerationError) Error() string {
	msg := e.Kind.sentinel().Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Provider != "" {
		return fmt.Sprintf("generate quest (%s): %s", e.Provider, msg)
	}
	return "generate quest: " + msg
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *GenerationError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.sentinel()}
	}
	return []error{e.Kind.sentinel(), e.Err}
}

// UserMessage returns the generic message suitable for display.
func (e *GenerationError) UserMessage() string {
	return UserFacingGenerationMessage
}

func newGenerationError(kind ErrorKind, provider, detail string, cause error) *GenerationError {
	return &GenerationError{Kind: kind, Provider: provider, Detail: detail, Err: cause}
}

// AsGenerationError converts any error into a *GenerationError.
// Errors that are not already generation errors are treated as transport failures.
func AsGenerationError(err error) *GenerationError {
	if err == nil {
		return nil
	}
	var ge *GenerationError
	if errors.As(err, &ge) {
		return ge
	}
	return newGenerationError(KindTransport, "", "", err)
}
