package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/assessgen/internal/logger"
	"github.com/abhisek/assessgen/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with timeout and logging middleware.
// eventRepo and log may be nil.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, log *logger.Logger) (Provider, error) {
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
		base = EchoProvider{Text: SampleCompletion}
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → logging → timeout → base
	timed := WithTimeout(base, cfg.Timeout)
	logged := WithLogging(timed, cfg.Provider, eventRepo, log)

	return logged, nil
}

// SampleCompletion is what the mock provider returns.
const SampleCompletion = `Question 1 (4.NBT.B.5): A bakery packs 24 muffins in each box. How many muffins are in 6 boxes?
A) 124
B) 144
C) 140
D) 30
Answer: B | Model Solution:
- Multiply the muffins per box by the number of boxes: 24 x 6.
- 20 x 6 = 120 and 4 x 6 = 24.
- 120 + 24 = 144.
Final answer: 144 muffins.

Question 2 (4.MD.A.3): [A rectangle labeled "garden" with a length of 9 meters and a width of 4 meters.] What is the perimeter of the garden?
Answer: 26 meters | Model Solution:
- Perimeter is the sum of all four sides: 9 + 4 + 9 + 4.
- 9 + 9 = 18 and 4 + 4 = 8.
- 18 + 8 = 26.
Final answer: 26 meters.`
