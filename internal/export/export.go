package export

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jonathan/resume-editor/internal/pagination"
	"github.com/jonathan/resume-editor/internal/rendering"
	"github.com/jonathan/resume-editor/internal/types"
	"golang.org/x/sync/errgroup"
)

// JSONFileName is the name of the exported document file.
const JSONFileName = "resume-data.json"

// PDFRenderer turns a paginated document into PDF bytes.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, doc types.ResumeDocument, st pagination.State, opts rendering.DisplayOptions) ([]byte, error)
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// PDFFileName derives the PDF file name from the CV name, falling back to
// the contact name and then to "resume".
func PDFFileName(doc types.ResumeDocument) string {
	for _, candidate := range []string{doc.CvName, doc.Contact.FullName} {
		name := strings.Trim(unsafeFileChars.ReplaceAllString(strings.TrimSpace(candidate), "_"), "._")
		if name != "" {
			return name + ".pdf"
		}
	}
	return "resume.pdf"
}

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	return nil
}

// RenderPDFFile renders doc with r and writes it to path.
func RenderPDFFile(ctx context.Context, r PDFRenderer, path string, doc types.ResumeDocument, st pagination.State, opts rendering.DisplayOptions) error {
	pdf, err := r.RenderPDF(ctx, doc, st, opts)
	if err != nil {
		return err
	}
	return WriteFile(path, pdf)
}

// Bundle is a complete export: the JSON document and its PDF.
type Bundle struct {
	JSON     []byte
	Document types.ResumeDocument
	State    pagination.State
	Options  rendering.DisplayOptions
	Renderer PDFRenderer
}

// Paths lists the files written by a bundle.
type Paths struct {
	JSON string
	PDF  string
}

// Write writes the JSON and PDF files into dir concurrently. The PDF is
// skipped when no renderer is configured.
func (b *Bundle) Write(ctx context.Context, dir string) (Paths, error) {
	paths := Paths{JSON: filepath.Join(dir, JSONFileName)}
	if b.Renderer != nil {
		paths.PDF = filepath.Join(dir, PDFFileName(b.Document))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return WriteFile(paths.JSON, b.JSON)
	})
	if b.Renderer != nil {
		g.Go(func() error {
			return RenderPDFFile(gctx, b.Renderer, paths.PDF, b.Document, b.State, b.Options)
		})
	}

	if err := g.Wait(); err != nil {
		return Paths{}, err
	}
	return paths, nil
}
