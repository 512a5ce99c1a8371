package processor

import (
	"github.com/ntbanh2504/theme-coder/internal/coder"
	"github.com/ntbanh2504/theme-coder/internal/config"
	"github.com/ntbanh2504/theme-coder/internal/logger"
)

type implProcessor struct {
	cfg    *config.Config
	coder  coder.Coder
	logger logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, c coder.Coder, log logger.Logger) Processor {
	return &implProcessor{
		cfg:    cfg,
		coder:  c,
		logger: log,
	}
}
