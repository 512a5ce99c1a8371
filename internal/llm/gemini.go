package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/ntbanh2504/theme-coder/internal/logger"
)

type geminiProvider struct {
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

func (p *geminiProvider) Name() string { return "gemini" }

// Chat sends one request to Gemini. Rotates API keys on 429 / quota
// errors until every key has been tried once.
func (p *geminiProvider) Chat(ctx context.Context, system, user string) (string, error) {
	attempts := len(p.apiKeys)
	var lastErr error

	for range attempts {
		key := p.apiKeys[p.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			p.rotateKey()
			continue
		}

		cfg := &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		}

		result, err := client.Models.GenerateContent(ctx, p.model, genai.Text(user), cfg)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				p.logger.Warn(ctx, "Key %d rate limited, rotating...", p.currentKey+1)
				p.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (p *geminiProvider) rotateKey() {
	p.currentKey = (p.currentKey + 1) % len(p.apiKeys)
}
