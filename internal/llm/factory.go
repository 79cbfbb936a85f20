package llm

import (
	"context"
	"fmt"

	"github.com/LinosCo/trainbot/internal/store"
)

// NewProvider builds a Provider from config and wraps it with retry and
// event recording middleware. repo may be nil, in which case request
// events are not recorded.
func NewProvider(ctx context.Context, cfg Config, repo store.EventRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	if repo != nil {
		base = WithEventLog(base, repo)
	}
	return WithRetry(base, cfg.Retry), nil
}

// NewProviderFromEnv discovers a provider from environment variables and
// wires the standard middleware stack.
func NewProviderFromEnv(ctx context.Context, repo store.EventRepo) (Provider, error) {
	cfg, ok := DiscoverConfig()
	if !ok {
		return nil, fmt.Errorf("no LLM API key found: set ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY, or OPENROUTER_API_KEY")
	}
	return NewProvider(ctx, cfg, repo)
}
