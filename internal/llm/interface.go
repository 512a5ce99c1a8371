package llm

import "context"

// Provider is a synchronous chat-style model endpoint. Chat sends one
// system+user message pair and returns the response's text payload.
type Provider interface {
	Name() string
	Chat(ctx context.Context, system, user string) (string, error)
}
