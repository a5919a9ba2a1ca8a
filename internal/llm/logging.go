package llm

import (
	"context"
	"time"

	"github.com/abhisek/assessgen/internal/logger"
	"github.com/abhisek/assessgen/internal/store"
)

// LoggingProvider is a decorator that records every LLM request as an event
// and a log line. Only metadata is recorded; prompts and completions are not.
type LoggingProvider struct {
	inner     Provider
	name      string
	eventRepo store.EventRepo
	log       *logger.Logger
}

// WithLogging wraps a Provider with event logging. repo and log may be nil.
func WithLogging(p Provider, name string, repo store.EventRepo, log *logger.Logger) Provider {
	if log == nil {
		log = logger.Nop()
	}
	return &LoggingProvider{inner: p, name: name, eventRepo: repo, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		RequestID:   RequestIDFrom(ctx),
		Provider:    l.name,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		PromptChars: promptChars(req),
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
		data.StopReason = string(resp.StopReason)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
		l.log.Error("llm request failed",
			"request_id", data.RequestID,
			"provider", data.Provider,
			"model", data.Model,
			"latency_ms", data.LatencyMs,
			"error", data.ErrorMessage,
		)
	} else {
		l.log.Info("llm request",
			"request_id", data.RequestID,
			"provider", data.Provider,
			"model", data.Model,
			"input_tokens", data.InputTokens,
			"output_tokens", data.OutputTokens,
			"latency_ms", data.LatencyMs,
			"stop_reason", data.StopReason,
		)
	}

	// Log the event but don't fail the request if logging fails.
	if l.eventRepo != nil {
		if logErr := l.eventRepo.AppendLLMRequest(ctx, data); logErr != nil {
			l.log.Warn("failed to record LLM request event", "error", logErr.Error())
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func promptChars(req Request) int {
	n := len(req.System)
	for _, m := range req.Messages {
		n += len(m.Content)
	}
	return n
}
