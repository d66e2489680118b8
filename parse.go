package draftkit

import "strings"

// Email is the parsed result of a generation call: a subject line and a
// plain-text message body. Both fields are always populated; Parse
// guarantees fallback values even for malformed raw text.
type Email struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

const (
	subjectPrefix         = "subject:"
	messageMarkerLower    = "\nmessage:\n"
	messageMarkerVerbatim = "\nMessage:\n"
)

// parseStrategy attempts one way of splitting raw model output into subject
// and message. The second return value reports whether the strategy applied.
type parseStrategy func(content, fallbackSubject string) (Email, bool)

// parseStrategies is the ordered splitting policy: a case-insensitive marker
// search first, then a case-sensitive literal split, then (inside Parse
// itself) the whole text as the message. Kept as an explicit list so each
// step can be reasoned about and tested in isolation.
var parseStrategies = []parseStrategy{
	splitOnMarkerFold,
	splitOnMarkerVerbatim,
}

// Parse splits raw generation output into an Email. It is best-effort and
// never fails: when the expected "Subject: ...\nMessage:\n..." structure is
// absent, the whole trimmed text becomes the message and fallbackSubject is
// kept as the subject.
//
// Calling Parse twice on the same input yields identical results; there is
// no hidden state.
func Parse(raw, fallbackSubject string) Email {
	content := strings.TrimSpace(raw)

	// Without a structured start there is nothing to split.
	if !strings.HasPrefix(strings.ToLower(content), subjectPrefix) {
		return Email{Subject: fallbackSubject, Message: content}
	}

	for _, strategy := range parseStrategies {
		if email, ok := strategy(content, fallbackSubject); ok {
			return email
		}
	}
	return Email{Subject: fallbackSubject, Message: content}
}

// splitOnMarkerFold locates the "\nmessage:\n" marker case-insensitively.
func splitOnMarkerFold(content, _ string) (Email, bool) {
	idx := strings.Index(strings.ToLower(content), messageMarkerLower)
	if idx < 0 {
		return Email{}, false
	}
	return Email{
		Subject: stripSubjectPrefix(content[:idx]),
		Message: strings.TrimSpace(content[idx+len(messageMarkerLower):]),
	}, true
}

// splitOnMarkerVerbatim splits on the exact literal "\nMessage:\n". It only
// applies when the split yields both halves; the whole-text fallback in
// Parse covers the rest.
func splitOnMarkerVerbatim(content, _ string) (Email, bool) {
	parts := strings.SplitN(content, messageMarkerVerbatim, 2)
	if len(parts) != 2 {
		return Email{}, false
	}
	return Email{
		Subject: stripSubjectPrefix(parts[0]),
		Message: strings.TrimSpace(parts[1]),
	}, true
}

// stripSubjectPrefix removes a leading "subject:" marker regardless of case.
// Mixed-case markers ("SUBJECT:", "Subject:") are all accepted.
func stripSubjectPrefix(block string) string {
	block = strings.TrimSpace(block)
	if len(block) >= len(subjectPrefix) && strings.EqualFold(block[:len(subjectPrefix)], subjectPrefix) {
		block = block[len(subjectPrefix):]
	}
	return strings.TrimSpace(block)
}
