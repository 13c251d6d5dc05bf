package llm

import "fmt"

// GenerationError is a typed failure from the chat-completion endpoint:
// transport error, non-2xx status, or missing credential. StatusCode is
// zero when no HTTP response was received.
type GenerationError struct {
	StatusCode int
	Message    string
}

func (e *GenerationError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("generation request failed with status %d: %s", e.StatusCode, e.Message)
	}
	return "generation request failed: " + e.Message
}

// ParseError means the model output could not be decoded into a course
// graph, even after repair.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "could not parse model response: " + e.Reason
}
