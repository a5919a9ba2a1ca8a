package assessment

import (
	"strings"
	"testing"

	"github.com/abhisek/assessgen/internal/reference"
)

func testRequest() Request {
	return Request{
		Grade:     reference.Grade4,
		Narrative: "Students explore multiplicative comparison.",
		Goals:     "Interpret a multiplication equation as a comparison.",
		Standards: "4.OA.1, 4.OA.2",
		Lessons:   "Lesson 1: times as many. Lesson 2: solve comparison problems.",
	}
}

func TestCompose_Deterministic(t *testing.T) {
	req := testRequest()
	a := Compose(req, "reference text")
	b := Compose(req, "reference text")
	if a != b {
		t.Fatal("Compose is not deterministic")
	}
}

func TestCompose_RequiredPhrases(t *testing.T) {
	required := []string{
		"exactly 10 questions",
		"5 multiple choice",
		"5 short answer",
		"A)", "B)", "C)", "D)",
		"Answer: <letter-or-value> | Model Solution:",
		"Final answer:",
		"single pair of square brackets",
		"Do not include any preamble",
		"Do not copy, quote or echo",
		ReferenceStart,
		ReferenceEnd,
	}

	tests := []struct {
		name string
		req  Request
		ref  string
	}{
		{"full inputs", testRequest(), "Some reference text."},
		{"empty inputs", Request{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := Compose(tt.req, tt.ref)
			for _, want := range required {
				if !strings.Contains(prompt, want) {
					t.Errorf("prompt missing %q", want)
				}
			}
		})
	}
}

func TestCompose_SectionOrder(t *testing.T) {
	prompt := Compose(testRequest(), "ref")
	last := -1
	for _, h := range sectionHeadings {
		idx := strings.Index(prompt, h)
		if idx < 0 {
			t.Fatalf("missing section %q", h)
		}
		if idx <= last {
			t.Fatalf("section %q out of order", h)
		}
		last = idx
	}
}

func TestCompose_PriorityOrder(t *testing.T) {
	prompt := Compose(testRequest(), "")
	narrative := strings.Index(prompt, "1. Section Narrative and Lesson Learning Goals")
	goals := strings.Index(prompt, "2. Section Learning Goals")
	standards := strings.Index(prompt, "3. Standards")
	if narrative < 0 || goals < 0 || standards < 0 {
		t.Fatal("priority list missing")
	}
	if !(narrative < goals && goals < standards) {
		t.Fatal("priority list out of order")
	}
}

func TestCompose_Inputs(t *testing.T) {
	req := testRequest()
	prompt := Compose(req, "")

	for _, want := range []string{
		"Grade Level: Grade 4",
		"Section Narrative: " + req.Narrative,
		"Section Learning Goals: " + req.Goals,
		"Standards: " + req.Standards,
		"Lesson Learning Goals: " + req.Lessons,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing input line %q", want)
		}
	}
}

func TestCompose_EmptyReferenceKeepsSection(t *testing.T) {
	prompt := Compose(testRequest(), "")
	want := ReferenceStart + "\n" + ReferenceEnd + "\n"
	if !strings.HasSuffix(prompt, want) {
		t.Fatalf("expected empty reference section at end, got tail %q", prompt[len(prompt)-60:])
	}
}

func TestCompose_ReferenceVerbatim(t *testing.T) {
	ref := "Grade 4 Module 1\nPlace value, rounding, and algorithms for addition and subtraction"
	prompt := Compose(testRequest(), ref)

	start := strings.Index(prompt, ReferenceStart)
	end := strings.Index(prompt, ReferenceEnd)
	if start < 0 || end < start {
		t.Fatal("reference delimiters missing or out of order")
	}
	section := prompt[start+len(ReferenceStart) : end]
	if strings.TrimSpace(section) != ref {
		t.Fatalf("reference section = %q, want %q", section, ref)
	}
}

func TestCompose_FieldsNotSwapped(t *testing.T) {
	req := Request{Grade: reference.Grade5, Narrative: "N", Goals: "GOALS-ONLY", Standards: "S", Lessons: "LESSONS-ONLY"}
	prompt := Compose(req, "")
	if !strings.Contains(prompt, "Section Learning Goals: GOALS-ONLY\n") {
		t.Error("goals not wired to section learning goals")
	}
	if !strings.Contains(prompt, "Lesson Learning Goals: LESSONS-ONLY") {
		t.Error("lessons not wired to lesson learning goals")
	}
}
