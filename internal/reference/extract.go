package reference

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/assessgen/internal/logger"
)

// DefaultRoot is the reference-materials directory used when none is configured.
const DefaultRoot = "reference_materials"

var (
	// ErrNotMapped means the grade has no reference document.
	ErrNotMapped = errors.New("no reference material mapping")

	// ErrDocumentMissing means the mapped document is not on disk.
	ErrDocumentMissing = errors.New("reference document not found")
)

// Status reports whether reference text is available.
type Status int

const (
	StatusOK Status = iota
	StatusUnavailable
	StatusNotMapped
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusUnavailable:
		return "unavailable"
	case StatusNotMapped:
		return "not_mapped"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the outcome of loading reference text. Text is empty unless
// Status is StatusOK; Reason explains any other status.
type Result struct {
	Document DocumentID
	Status   Status
	Text     string
	Reason   error
}

// OK reports whether reference text was extracted.
func (r Result) OK() bool { return r.Status == StatusOK }

// Extractor reads reference documents from a directory of PDFs.
type Extractor struct {
	root    string
	backend Backend
	log     *logger.Logger
}

// NewExtractor creates an Extractor rooted at root. A nil log discards output.
func NewExtractor(root string, backend Backend, log *logger.Logger) *Extractor {
	if root == "" {
		root = DefaultRoot
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Extractor{root: root, backend: backend, log: log}
}

// Path returns the file location for a document.
func (e *Extractor) Path(id DocumentID) string {
	return filepath.Join(e.root, string(id)+".pdf")
}

// Extract returns the normalized text of a document. Every failure yields
// StatusUnavailable with empty text; the reason is logged, never returned.
func (e *Extractor) Extract(ctx context.Context, id DocumentID) Result {
	text, err := e.extract(ctx, id)
	if err != nil {
		e.log.Warn("reference extraction unavailable",
			"document", string(id),
			"path", e.Path(id),
			"error", err.Error(),
		)
		return Result{Document: id, Status: StatusUnavailable, Reason: err}
	}
	return Result{Document: id, Status: StatusOK, Text: text}
}

func (e *Extractor) extract(ctx context.Context, id DocumentID) (string, error) {
	path := e.Path(id)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrDocumentMissing, path)
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if e.backend == nil {
		return "", fmt.Errorf("%w: none configured", ErrBackendUnavailable)
	}
	if err := e.backend.Available(); err != nil {
		return "", err
	}

	pages, err := e.backend.PageTexts(ctx, path)
	if err != nil {
		return "", fmt.Errorf("%s backend: %w", e.backend.Name(), err)
	}
	return Normalize(JoinPages(pages)), nil
}

// JoinPages concatenates page texts with single spaces, skipping pages
// that produced no text or only whitespace.
func JoinPages(pages []string) string {
	kept := make([]string, 0, len(pages))
	for _, p := range pages {
		if strings.TrimSpace(p) == "" {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, " ")
}

// Normalize converts CRLF to LF, strips trailing whitespace from each line,
// collapses doubled newlines until none remain and trims the result.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r\f\v")
	}
	s = strings.Join(lines, "\n")
	for strings.Contains(s, "\n\n") {
		s = strings.ReplaceAll(s, "\n\n", "\n")
	}
	return strings.TrimSpace(s)
}

// Library resolves grades to documents and extracts them.
type Library struct {
	extractor *Extractor
	log       *logger.Logger
}

// NewLibrary creates a Library over the given extractor.
func NewLibrary(extractor *Extractor, log *logger.Logger) *Library {
	if log == nil {
		log = logger.Nop()
	}
	return &Library{extractor: extractor, log: log}
}

// Load returns the reference text for a grade. It never fails: an unmapped
// grade yields StatusNotMapped, an unreadable document StatusUnavailable.
func (l *Library) Load(ctx context.Context, grade GradeLevel) Result {
	id, ok := Resolve(grade)
	if !ok {
		l.log.Warn("no reference material mapping", "grade", string(grade))
		return Result{
			Status: StatusNotMapped,
			Reason: fmt.Errorf("%w for %s", ErrNotMapped, grade),
		}
	}
	return l.extractor.Extract(ctx, id)
}

// Extractor returns the underlying extractor.
func (l *Library) Extractor() *Extractor {
	return l.extractor
}
