package llm

import (
	"fmt"
	"net/http"

	"github.com/ntbanh2504/theme-coder/internal/config"
	"github.com/ntbanh2504/theme-coder/internal/logger"
)

// New builds the provider selected by model.provider. Gemini needs at
// least one API key; Ollama talks to model.base_url.
func New(cfg config.ModelConfig, apiKeys []string, log logger.Logger) (Provider, error) {
	switch cfg.Provider {
	case "ollama":
		return &ollamaProvider{
			baseURL: cfg.BaseURL,
			model:   cfg.Name,
			client:  &http.Client{},
		}, nil

	case "gemini":
		if len(apiKeys) == 0 {
			return nil, fmt.Errorf("gemini provider requires GEMINI_API_KEYS")
		}
		return &geminiProvider{
			apiKeys: apiKeys,
			model:   cfg.Name,
			logger:  log,
		}, nil

	default:
		return nil, fmt.Errorf("unknown model provider: %q", cfg.Provider)
	}
}
