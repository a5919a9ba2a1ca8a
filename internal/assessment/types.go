package assessment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/assessgen/internal/llm"
	"github.com/abhisek/assessgen/internal/reference"
)

var (
	// ErrIncomplete means at least one request field is blank.
	ErrIncomplete = errors.New("please fill in all fields to generate the assessment")

	// ErrUnknownGrade means the grade is outside the supported set.
	ErrUnknownGrade = errors.New("unknown grade level")
)

// Request holds the curriculum inputs for one assessment.
type Request struct {
	// Grade is the target grade level.
	Grade reference.GradeLevel `json:"grade" yaml:"grade"`

	// Narrative is the section narrative: an overview of the content
	// covered in this section.
	Narrative string `json:"narrative" yaml:"narrative"`

	// Goals lists the section learning goals.
	Goals string `json:"goals" yaml:"goals"`

	// Standards lists the content standards addressed.
	Standards string `json:"standards" yaml:"standards"`

	// Lessons lists the lesson learning goals.
	Lessons string `json:"lessons" yaml:"lessons"`
}

// Validate enforces the generation trigger rule: a known grade and no
// blank fields.
func (r Request) Validate() error {
	if !r.Grade.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownGrade, string(r.Grade))
	}

	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"narrative", r.Narrative},
		{"goals", r.Goals},
		{"standards", r.Standards},
		{"lessons", r.Lessons},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w (missing: %s)", ErrIncomplete, strings.Join(missing, ", "))
	}
	return nil
}

// Assessment is the result of one generation run. Nothing in it is
// persisted.
type Assessment struct {
	// ID identifies this run in logs and LLM usage events.
	ID string

	Request Request

	// Prompt is the full user prompt sent to the model.
	Prompt string

	// Reference is the outcome of loading the grade's reference text.
	Reference reference.Result

	// Raw is the unmodified completion text, for copy and export.
	Raw string

	// Blocks are the question blocks segmented from Raw, in source order.
	Blocks []Block

	Model     string
	Usage     llm.Usage
	Truncated bool
	CreatedAt time.Time
}
