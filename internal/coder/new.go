package coder

import (
	"github.com/ntbanh2504/theme-coder/internal/codebook"
	"github.com/ntbanh2504/theme-coder/internal/llm"
	"github.com/ntbanh2504/theme-coder/internal/logger"
)

type implCoder struct {
	provider llm.Provider
	themes   string
	logger   logger.Logger
}

// New creates a Coder bound to one provider and one codebook. The
// codebook prompt is rendered once here and reused for every transcript.
func New(provider llm.Provider, cb *codebook.Codebook, log logger.Logger) Coder {
	return &implCoder{
		provider: provider,
		themes:   cb.Prompt(),
		logger:   log,
	}
}
