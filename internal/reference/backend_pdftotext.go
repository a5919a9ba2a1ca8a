package reference

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// PdftotextBackend shells out to poppler's pdfinfo and pdftotext.
type PdftotextBackend struct {
	pdfinfoPath   string
	pdftotextPath string
}

// NewPdftotextBackend uses the binaries found on PATH.
func NewPdftotextBackend() *PdftotextBackend {
	return &PdftotextBackend{
		pdfinfoPath:   "pdfinfo",
		pdftotextPath: "pdftotext",
	}
}

func (b *PdftotextBackend) Name() string { return BackendPdftotext }

func (b *PdftotextBackend) Available() error {
	for _, bin := range []string{b.pdfinfoPath, b.pdftotextPath} {
		if _, err := exec.LookPath(bin); err != nil {
			return fmt.Errorf("%w: %s not found in PATH: %v", ErrBackendUnavailable, bin, err)
		}
	}
	return nil
}

func (b *PdftotextBackend) PageTexts(ctx context.Context, path string) ([]string, error) {
	if err := b.Available(); err != nil {
		return nil, err
	}

	n, err := b.pageCount(ctx, path)
	if err != nil {
		return nil, err
	}

	pages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		page := strconv.Itoa(i)
		out, err := b.run(ctx, b.pdftotextPath, "-q", "-nopgbrk", "-enc", "UTF-8", "-f", page, "-l", page, path, "-")
		if err != nil {
			return nil, fmt.Errorf("pdftotext page %d: %w", i, err)
		}
		// Older poppler builds still end each page with a form feed.
		pages = append(pages, strings.ReplaceAll(out, "\f", ""))
	}
	return pages, nil
}

func (b *PdftotextBackend) pageCount(ctx context.Context, path string) (int, error) {
	out, err := b.run(ctx, b.pdfinfoPath, path)
	if err != nil {
		return 0, fmt.Errorf("pdfinfo: %w", err)
	}
	return parsePageCount(out)
}

func (b *PdftotextBackend) run(ctx context.Context, bin string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if s := strings.TrimSpace(stderr.String()); s != "" {
			return "", fmt.Errorf("%w; stderr=%s", err, s)
		}
		return "", err
	}
	return stdout.String(), nil
}

// parsePageCount reads the "Pages:" line of pdfinfo output.
func parsePageCount(info string) (int, error) {
	sc := bufio.NewScanner(strings.NewReader(info))
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "Pages:") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Pages:")))
		if err != nil {
			return 0, fmt.Errorf("parse page count %q: %w", line, err)
		}
		return n, nil
	}
	return 0, fmt.Errorf("pdfinfo output has no page count")
}
