package gemini

import "errors"

// Domain errors for generation operations. ErrGenerationFailed wraps the
// underlying transport or API error via errors.Join/fmt %w so callers can
// both match it with errors.Is and inspect the original cause.
var (
	ErrAPIKeyRequired   = errors.New("gemini API key is required")
	ErrEmptyPrompt      = errors.New("prompt cannot be empty")
	ErrGenerationFailed = errors.New("text generation failed")
)
