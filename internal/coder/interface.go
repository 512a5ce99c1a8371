package coder

import "context"

// CodedQuote is one theme-coded excerpt of interviewee speech.
type CodedQuote struct {
	Quote       string `json:"quote"`
	Theme       string `json:"theme"`
	Explanation string `json:"explanation"`
}

// Coder sends interviewee-only text to the model and returns the
// parsed quote/theme/explanation records.
type Coder interface {
	Code(ctx context.Context, intervieweeText string) ([]CodedQuote, error)
}
