package assessment

import "time"

// ExportBlock is the serialized form of a Block.
type ExportBlock struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	HTML  string `json:"html"`
}

// Export is the serialized form of an Assessment, shared by the JSON API
// and `generate --format json`. The prompt is left out.
type Export struct {
	ID              string        `json:"id"`
	Grade           string        `json:"grade"`
	ReferenceStatus string        `json:"reference_status"`
	Document        string        `json:"reference_document,omitempty"`
	Model           string        `json:"model"`
	InputTokens     int           `json:"input_tokens"`
	OutputTokens    int           `json:"output_tokens"`
	Truncated       bool          `json:"truncated"`
	CreatedAt       time.Time     `json:"created_at"`
	Blocks          []ExportBlock `json:"blocks"`
	Raw             string        `json:"raw"`
}

// NewExport converts a to its serialized form.
func NewExport(a *Assessment) Export {
	blocks := make([]ExportBlock, 0, len(a.Blocks))
	for _, b := range a.Blocks {
		blocks = append(blocks, ExportBlock{Index: b.Index, Text: b.Text, HTML: string(b.HTML())})
	}
	return Export{
		ID:              a.ID,
		Grade:           string(a.Request.Grade),
		ReferenceStatus: a.Reference.Status.String(),
		Document:        string(a.Reference.Document),
		Model:           a.Model,
		InputTokens:     a.Usage.InputTokens,
		OutputTokens:    a.Usage.OutputTokens,
		Truncated:       a.Truncated,
		CreatedAt:       a.CreatedAt,
		Blocks:          blocks,
		Raw:             a.Raw,
	}
}
