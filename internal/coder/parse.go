package coder

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError reports a model response that is not valid JSON or not
// shaped as a list of quote/theme/explanation records. Raw keeps the
// original response text for debugging.
type ParseError struct {
	Reason string
	Raw    string
}

func (e *ParseError) Error() string {
	return "parse model response: " + e.Reason
}

func parseQuotes(raw string) ([]CodedQuote, error) {
	clean := trimToJSON(stripCodeFences(raw))
	if clean == "" {
		return nil, &ParseError{Reason: "no JSON payload in response", Raw: raw}
	}

	var quotes []CodedQuote
	if err := json.Unmarshal([]byte(clean), &quotes); err != nil {
		// Some models return a single object instead of a one-element list.
		var single CodedQuote
		if err2 := json.Unmarshal([]byte(clean), &single); err2 != nil {
			return nil, &ParseError{Reason: err.Error(), Raw: raw}
		}
		quotes = []CodedQuote{single}
	}

	// An empty list is a valid answer: a transcript with no interviewee
	// content codes to a zero-row table.
	for i, q := range quotes {
		if strings.TrimSpace(q.Quote) == "" {
			return nil, &ParseError{Reason: fmt.Sprintf("record %d has no quote", i), Raw: raw}
		}
		if strings.TrimSpace(q.Theme) == "" {
			return nil, &ParseError{Reason: fmt.Sprintf("record %d has no theme", i), Raw: raw}
		}
	}

	return quotes, nil
}

// stripCodeFences removes a surrounding ```json ... ``` or ``` ... ```
// wrapper, a common habit of chat models asked for raw JSON.
func stripCodeFences(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = strings.TrimSpace(s[idx+1:])
	}
	if end := strings.LastIndex(s, "```"); end >= 0 {
		s = strings.TrimSpace(s[:end])
	}
	return s
}

// trimToJSON drops any prose before the first bracket and after the
// matching close of the payload.
func trimToJSON(s string) string {
	start := strings.IndexAny(s, "[{")
	if start < 0 {
		return ""
	}
	var closer byte = ']'
	if s[start] == '{' {
		closer = '}'
	}
	end := strings.LastIndexByte(s, closer)
	if end < start {
		return ""
	}
	return s[start : end+1]
}
