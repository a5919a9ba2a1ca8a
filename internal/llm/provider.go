package llm

import "context"

// Provider is the completion gateway: one prompt in, raw completion text out.
type Provider interface {
	// Generate sends a prompt to the LLM and returns its text completion.
	// Every call is a single, non-streaming attempt.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system instruction. Sets the LLM's role and constraints.
	System string

	// Messages is the conversation history. Assessment generation is
	// single-turn, so this holds one user message.
	Messages []Message

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Zero leaves the provider default in place.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserRequest builds the common single-turn request.
func UserRequest(system, prompt string, maxTokens int) Request {
	return Request{
		System:    system,
		Messages:  []Message{{Role: RoleUser, Content: prompt}},
		MaxTokens: maxTokens,
	}
}

// Response holds the LLM's output.
type Response struct {
	// Text is the raw completion text.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	StopReason StopReason
}

// Truncated reports whether the completion hit the token ceiling.
func (r *Response) Truncated() bool {
	return r.StopReason == StopMaxTokens
}

// StopReason is the vendor-neutral reason a completion ended.
type StopReason string

const (
	StopEnd       StopReason = "end"
	StopMaxTokens StopReason = "max_tokens"
)

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
