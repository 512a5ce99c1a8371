package coder

import (
	"context"
	"fmt"
	"strings"
)

const systemPromptTmpl = `You are a qualitative analysis assistant. You will extract quotes from the transcript
and assign theme codes.

RULES:
- Cover 100%% of interviewee content.
- Each sentence must appear in exactly one quote.
- A quote can contain 1-many sentences if they express the same theme.
- Do NOT omit or combine unrelated content.
- Do NOT include any interviewer lines.
- Return valid JSON only: list of {"quote", "theme", "explanation"}.

THEMES:
%s`

const userPromptTmpl = "Here is the full interviewee-only transcript:\n\n%s\n\nExtract all theme-coded quotes now."

// Code sends one synchronous chat request and parses the response into
// quote records. There is no retry: a malformed response fails the
// transcript with a ParseError.
func (c *implCoder) Code(ctx context.Context, intervieweeText string) ([]CodedQuote, error) {
	system := fmt.Sprintf(systemPromptTmpl, c.themes)
	user := fmt.Sprintf(userPromptTmpl, intervieweeText)

	c.logger.Debug(ctx, "Sending %d chars of interviewee text to %s", len(intervieweeText), c.provider.Name())

	raw, err := c.provider.Chat(ctx, system, user)
	if err != nil {
		return nil, fmt.Errorf("model call: %w", err)
	}

	quotes, err := parseQuotes(raw)
	if err != nil {
		return nil, err
	}

	c.logger.Debug(ctx, "Parsed %d coded quotes", len(quotes))
	return quotes, nil
}

// UnmatchedQuotes counts quotes whose text does not occur verbatim in
// the filtered transcript. A non-zero count usually means the model
// paraphrased or invented content; callers treat it as a warning, not
// an error, since there is no reliable way to verify coverage.
func UnmatchedQuotes(quotes []CodedQuote, source string) int {
	n := 0
	for _, q := range quotes {
		if !strings.Contains(source, strings.TrimSpace(q.Quote)) {
			n++
		}
	}
	return n
}
