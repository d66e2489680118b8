package gemini

import (
	"encoding/json"
	"strings"
)

// extractStrategy attempts to pull usable text out of a generation response.
// An empty result means the strategy does not apply and the next one is tried.
type extractStrategy func(resp generateResponse, body []byte) string

// extractStrategies is the ordered fallback chain for response text:
// the first candidate's concatenated text parts, then the first candidate's
// raw JSON, then the raw response body. Kept as an explicit list so the
// policy stays auditable and each step is testable on its own.
var extractStrategies = []extractStrategy{
	firstCandidateText,
	firstCandidateJSON,
	rawBody,
}

func extractText(resp generateResponse, body []byte) string {
	for _, strategy := range extractStrategies {
		if text := strategy(resp, body); text != "" {
			return text
		}
	}
	return ""
}

func firstCandidateText(resp generateResponse, _ []byte) string {
	if len(resp.Candidates) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String())
}

func firstCandidateJSON(resp generateResponse, _ []byte) string {
	if len(resp.Candidates) == 0 {
		return ""
	}

	data, err := json.Marshal(resp.Candidates[0])
	if err != nil {
		return ""
	}
	return string(data)
}

func rawBody(_ generateResponse, body []byte) string {
	return strings.TrimSpace(string(body))
}
