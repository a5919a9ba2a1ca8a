package assessment

import (
	"html/template"
	"iter"
	"slices"
	"strings"
)

// Delimiter starts every question block in a completion.
const Delimiter = "Question"

// blockStyle matches the card style of the web view.
const blockStyle = "background-color: #f8f9fa; padding: 20px; margin: 10px 0; border-radius: 5px; border-left: 4px solid #1f77b4;"

// Block is one question with its options and answer block.
type Block struct {
	// Index is the zero-based position in the completion.
	Index int

	// Text starts with Delimiter. Trailing whitespace is trimmed.
	Text string
}

// HTML renders the block as a styled div. The text is escaped and line
// breaks become <br>.
func (b Block) HTML() template.HTML {
	escaped := template.HTMLEscapeString(b.Text)
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return template.HTML(`<div class="question-block" style="` + blockStyle + `">` + escaped + `</div>`)
}

// Blocks lazily splits a completion into question blocks. Text before the
// first delimiter is dropped, and a completion without any delimiter yields
// nothing. The sequence can be ranged over more than once.
//
// Blocks are not validated or renumbered. A body that itself contains the
// word "Question" is split at that point.
func Blocks(completion string) iter.Seq[Block] {
	return func(yield func(Block) bool) {
		i := -1
		for fragment := range strings.SplitSeq(completion, Delimiter) {
			if i >= 0 {
				text := strings.TrimRight(Delimiter+fragment, " \t\r\n")
				if !yield(Block{Index: i, Text: text}) {
					return
				}
			}
			i++
		}
	}
}

// Segment collects Blocks into a slice.
func Segment(completion string) []Block {
	return slices.Collect(Blocks(completion))
}

// RenderHTML concatenates the HTML of every block.
func RenderHTML(blocks []Block) template.HTML {
	var b strings.Builder
	for _, blk := range blocks {
		b.WriteString(string(blk.HTML()))
	}
	return template.HTML(b.String())
}
