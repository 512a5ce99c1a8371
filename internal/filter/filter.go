// Package filter strips interviewer speech from a transcript, leaving
// only interviewee-attributed lines.
package filter

import (
	"regexp"
	"strings"
)

// Interviewee labels are tested before interviewer labels, so a line
// starting "R:" is kept (resp/r) rather than treated as interviewer.
var (
	intervieweeRe = regexp.MustCompile(`(?i)^(participant|interviewee|p|resp|r)\s*[:\-]\s*`)
	interviewerRe = regexp.MustCompile(`(?i)^(interviewer|int|i)\s*[:\-]`)
)

// ExtractInterviewee returns the interviewee-only text of a transcript:
// interviewee lines with their speaker label stripped, newline-joined in
// original order. Interviewer lines, blank lines and lines without a
// recognized speaker label are dropped. Transcripts that do not label
// every speaker turn will therefore lose the unlabeled content; this is
// a known limitation of label-based filtering.
func ExtractInterviewee(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := intervieweeRe.FindString(line); m != "" {
			kept = append(kept, line[len(m):])
			continue
		}

		if interviewerRe.MatchString(line) {
			continue
		}
	}
	return strings.Join(kept, "\n")
}
