package assessment

import (
	"fmt"
	"strings"
)

// SystemInstruction is the fixed system prompt for every generation call.
const SystemInstruction = "You are a mathematics assessment expert that creates grade-appropriate practice questions with clear rationales."

// Reference section delimiters. The section is always present, even when
// there is no reference text, so composed prompts keep the same shape.
const (
	ReferenceStart = "<<<REFERENCE START>>>"
	ReferenceEnd   = "<<<REFERENCE END>>>"
)

// Section headings in the order they appear in a composed prompt.
var sectionHeadings = []string{
	"# CONTEXT #",
	"# INPUTS #",
	"# CONTENT HIERARCHY #",
	"# GENERATION RULES #",
	"# FORMATTING RULES #",
	"# EXAMPLE #",
	"# REFERENCE MATERIAL #",
}

const contextSection = `You are a mathematics assessment expert. Generate exactly 10 questions (5 multiple choice and 5 short answer) based on the inputs below. Complete all analysis internally and do not show your work. Return only the formatted questions with their answers and model solutions.`

const hierarchySection = `Apply the inputs in this priority order:
1. Section Narrative and Lesson Learning Goals (highest priority)
2. Section Learning Goals
3. Standards (lowest priority)

Every question must reflect this same order: ground it first in the narrative and lesson goals, then align it to the section goals, then tag or check it against the standards.`

const generationSection = `- Produce exactly 10 questions: 5 multiple choice questions followed by 5 short answer questions.
- Number the questions "Question 1" through "Question 10". Start every question with the word "Question" and do not use that word anywhere else.
- Build each set as a progressive sequence: direct computation first, then pattern recognition, then application and explanation.
- Use rich, realistic contexts that connect naturally to the unit content, with grade-appropriate numbers and situations.
- Include prompts such as "explain why", "show another way" and "create an example" where they fit.
- Use consistent mathematical vocabulary.
- When a question needs a visual (diagram, graph, table, number line, shape), describe it inside a single pair of square brackets, for example [Visual: ...]. The description must include every number, label, dimension and position needed to answer the question without seeing an image.`

const formattingSection = `- Multiple choice questions have exactly four options labeled A) B) C) D), each on its own line.
- Every question ends with an answer block in this grammar:
  Answer: <letter-or-value> | Model Solution:
  - <step>
  - <step>
  Final answer: <statement>
- Short answer questions use the same answer block with the value in place of the letter.
- An optional standard tag may follow the question number, for example "Question 3 (4.NF.1):".
- Do not include any preamble, introduction, summary, meta-commentary or questions about continuing. Output exactly 10 question blocks and nothing else.`

const exampleSection = `Question 1 (4.OA.3): A bakery packs 6 muffins in each box. It fills 14 boxes in the morning and 9 boxes in the afternoon. How many muffins did the bakery pack in all?
A) 138
B) 29
C) 23
D) 84
Answer: A | Model Solution:
- Add the boxes: 14 + 9 = 23 boxes.
- Multiply by muffins per box: 23 x 6 = 138.
Final answer: The bakery packed 138 muffins.

Question 6: [Visual: a rectangle labeled 8 cm on the long side and 5 cm on the short side] Find the perimeter of the rectangle and explain why you add each side length twice.
Answer: 26 cm | Model Solution:
- A rectangle has two long sides and two short sides.
- 2 x 8 + 2 x 5 = 16 + 10 = 26.
Final answer: The perimeter is 26 cm because opposite sides of a rectangle are equal.`

const referenceSection = `Use the reference material only as an anchor for style and difficulty. Do not copy, quote or echo it in your output.`

// Compose builds the user prompt for a request and its reference text.
// It is deterministic: the same inputs always produce the same prompt.
func Compose(req Request, referenceText string) string {
	var b strings.Builder

	section := func(i int) {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(sectionHeadings[i])
		b.WriteString("\n")
	}

	section(0)
	b.WriteString(contextSection)

	section(1)
	fmt.Fprintf(&b, "Grade Level: %s\n", req.Grade)
	fmt.Fprintf(&b, "Section Narrative: %s\n", req.Narrative)
	fmt.Fprintf(&b, "Section Learning Goals: %s\n", req.Goals)
	fmt.Fprintf(&b, "Standards: %s\n", req.Standards)
	fmt.Fprintf(&b, "Lesson Learning Goals: %s", req.Lessons)

	section(2)
	b.WriteString(hierarchySection)

	section(3)
	b.WriteString(generationSection)

	section(4)
	b.WriteString(formattingSection)

	section(5)
	b.WriteString(exampleSection)

	section(6)
	b.WriteString(referenceSection)
	b.WriteString("\n")
	b.WriteString(ReferenceStart)
	b.WriteString("\n")
	if referenceText != "" {
		b.WriteString(referenceText)
		b.WriteString("\n")
	}
	b.WriteString(ReferenceEnd)
	b.WriteString("\n")

	return b.String()
}
