package assessment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/assessgen/internal/llm"
	"github.com/abhisek/assessgen/internal/logger"
	"github.com/abhisek/assessgen/internal/reference"
)

// Purpose labels assessment calls in LLM usage events.
const Purpose = "assessment"

// ExpectedQuestions is how many question blocks a well-formed completion holds.
const ExpectedQuestions = 10

// Config controls the behavior of the Generator.
type Config struct {
	// MaxTokens is the token budget for the completion.
	MaxTokens int

	// Temperature controls LLM output randomness. Zero keeps the
	// provider default.
	Temperature float64
}

// DefaultConfig returns the standard generation settings.
func DefaultConfig() Config {
	return Config{MaxTokens: 4000}
}

// ReferenceSource loads the reference text for a grade.
type ReferenceSource interface {
	Load(ctx context.Context, grade reference.GradeLevel) reference.Result
}

// Generator runs the assessment pipeline: load reference text, compose the
// prompt, make one completion call and segment the result.
type Generator struct {
	provider llm.Provider
	refs     ReferenceSource
	config   Config
	log      *logger.Logger
}

// NewGenerator creates a Generator. A nil refs composes every prompt with an
// empty reference section.
func NewGenerator(provider llm.Provider, refs ReferenceSource, cfg Config, log *logger.Logger) *Generator {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultConfig().MaxTokens
	}
	return &Generator{provider: provider, refs: refs, config: cfg, log: log}
}

// Prepare loads the reference text and composes the prompt without calling
// the model.
func (g *Generator) Prepare(ctx context.Context, req Request) (string, reference.Result) {
	var ref reference.Result
	if g.refs != nil {
		ref = g.refs.Load(ctx, req.Grade)
	} else {
		ref = reference.Result{Status: reference.StatusNotMapped}
	}
	return Compose(req, ref.Text), ref
}

// Generate validates the request and produces an assessment. Reference
// problems never fail generation; completion failures are returned wrapped
// and are not retried. A completion cut off before its first question is
// reported as *llm.ErrMaxTokensExceeded.
func (g *Generator) Generate(ctx context.Context, req Request) (*Assessment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	ctx = llm.WithPurpose(ctx, Purpose)
	ctx = llm.WithRequestID(ctx, id)
	log := g.log.With("assessment_id", id, "grade", string(req.Grade))

	prompt, ref := g.Prepare(ctx, req)
	log.Debug("prompt composed", "prompt_chars", len(prompt), "reference", ref.Status.String())

	llmReq := llm.UserRequest(SystemInstruction, prompt, g.config.MaxTokens)
	llmReq.Temperature = g.config.Temperature

	resp, err := g.provider.Generate(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("generate assessment: %w", err)
	}

	blocks := Segment(resp.Text)
	if resp.Truncated() && len(blocks) == 0 {
		return nil, fmt.Errorf("generate assessment: %w", &llm.ErrMaxTokensExceeded{Content: resp.Text})
	}

	a := &Assessment{
		ID:        id,
		Request:   req,
		Prompt:    prompt,
		Reference: ref,
		Raw:       resp.Text,
		Blocks:    blocks,
		Model:     resp.Model,
		Usage:     resp.Usage,
		Truncated: resp.Truncated(),
		CreatedAt: time.Now().UTC(),
	}

	if a.Truncated {
		log.Warn("completion hit the token limit", "max_tokens", g.config.MaxTokens)
	}
	if n := len(a.Blocks); n != ExpectedQuestions {
		log.Warn("unexpected question count", "blocks", n, "expected", ExpectedQuestions)
	}

	return a, nil
}
