package reference

import (
	"context"
	"errors"
	"fmt"
)

// ErrBackendUnavailable is wrapped by Backend.Available when the backend
// cannot run on this host.
var ErrBackendUnavailable = errors.New("text extraction backend unavailable")

// Backend turns a PDF file into per-page text.
type Backend interface {
	// Name identifies the backend in logs and configuration.
	Name() string

	// Available returns nil when the backend can be used.
	Available() error

	// PageTexts returns the text of every page in page order. Pages with
	// no extractable text are returned as empty strings.
	PageTexts(ctx context.Context, path string) ([]string, error)
}

// Backend names accepted by NewBackend.
const (
	BackendAuto      = "auto"
	BackendNative    = "native"
	BackendPdftotext = "pdftotext"
	BackendNone      = "none"
)

// NewBackend returns the named backend.
func NewBackend(name string) (Backend, error) {
	switch name {
	case "", BackendAuto:
		return &autoBackend{candidates: []Backend{NativeBackend{}, NewPdftotextBackend()}}, nil
	case BackendNative:
		return NativeBackend{}, nil
	case BackendPdftotext:
		return NewPdftotextBackend(), nil
	case BackendNone:
		return noneBackend{}, nil
	default:
		return nil, fmt.Errorf("unknown extraction backend: %q", name)
	}
}

// autoBackend delegates to the first available candidate.
type autoBackend struct {
	candidates []Backend
}

func (a *autoBackend) Name() string {
	if b := a.pick(); b != nil {
		return b.Name()
	}
	return BackendAuto
}

func (a *autoBackend) Available() error {
	if a.pick() == nil {
		return fmt.Errorf("%w: no candidate backend available", ErrBackendUnavailable)
	}
	return nil
}

func (a *autoBackend) PageTexts(ctx context.Context, path string) ([]string, error) {
	b := a.pick()
	if b == nil {
		return nil, fmt.Errorf("%w: no candidate backend available", ErrBackendUnavailable)
	}
	return b.PageTexts(ctx, path)
}

func (a *autoBackend) pick() Backend {
	for _, b := range a.candidates {
		if b.Available() == nil {
			return b
		}
	}
	return nil
}

// noneBackend disables extraction entirely.
type noneBackend struct{}

func (noneBackend) Name() string { return BackendNone }

func (noneBackend) Available() error {
	return fmt.Errorf("%w: extraction disabled", ErrBackendUnavailable)
}

func (noneBackend) PageTexts(context.Context, string) ([]string, error) {
	return nil, fmt.Errorf("%w: extraction disabled", ErrBackendUnavailable)
}
