package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model   string
		wantIn  float64
		wantNil bool
	}{
		{model: "claude-sonnet-4-5-20250929", wantIn: 3},
		{model: "anthropic/claude-sonnet-4.5", wantIn: 3},
		{model: "openai/gpt-4o-mini", wantIn: 0.15},
		{model: "google/gemini-2.5-pro", wantIn: 1.25},
		{model: "mock", wantNil: true},
		{model: "meta-llama/llama-3-8b", wantNil: true},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			c := LookupCost(tt.model)
			if tt.wantNil {
				if c != nil {
					t.Fatalf("expected no pricing, got %+v", c)
				}
				return
			}
			if c == nil {
				t.Fatal("expected pricing")
			}
			if c.InputPerMTok != tt.wantIn {
				t.Fatalf("input price = %v, want %v", c.InputPerMTok, tt.wantIn)
			}
		})
	}
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 3, OutputPerMTok: 15}
	// A typical assessment: ~6k prompt tokens, 4k completion tokens.
	got := c.Cost(6000, 4000)
	if math.Abs(got-0.078) > 1e-9 {
		t.Fatalf("cost = %v, want 0.078", got)
	}
}
