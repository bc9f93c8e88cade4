// Package optimize wires the résumé optimization pipeline: extract text,
// locate the competencies section, request a rewrite, splice it back, and
// render a fresh PDF.
package optimize

import (
	"context"

	"resume-optimizer/internal/extract"
	"resume-optimizer/internal/render"
	"resume-optimizer/internal/rewrite"
	"resume-optimizer/internal/section"
	"resume-optimizer/internal/shared/telemetry"
)

// Extractor converts uploaded document bytes into plain text.
type Extractor func(ctx context.Context, data []byte, mimeType, fileName string) (string, error)

// Renderer draws assembled text into a downloadable document.
type Renderer interface {
	Render(text string) ([]byte, error)
}

// Service runs the optimization pipeline. All state is request-scoped; the
// service itself holds only immutable collaborators.
type Service struct {
	Extract   Extractor
	Locator   section.Locator
	Requester rewrite.Requester
	Renderer  Renderer
}

// Request carries one upload through the pipeline.
type Request struct {
	Document       []byte
	ContentType    string
	FileName       string
	JobDescription string
}

// Optimize executes the four pipeline stages strictly in order and returns
// the rendered PDF bytes. Any stage error aborts the request with no partial
// output.
func (s *Service) Optimize(ctx context.Context, req Request) ([]byte, error) {
	text, err := s.Extract(ctx, req.Document, req.ContentType, req.FileName)
	if err != nil {
		return nil, err
	}

	span, err := s.Locator.Locate(text)
	if err != nil {
		return nil, err
	}

	rewritten, err := s.Requester.Rewrite(ctx, req.JobDescription, span)
	if err != nil {
		return nil, err
	}

	assembled, err := section.Splice(text, span, rewritten)
	if err != nil {
		return nil, err
	}

	out, err := s.Renderer.Render(assembled)
	if err != nil {
		return nil, err
	}

	telemetry.Info("optimize.complete", map[string]any{
		"file_name":     req.FileName,
		"span_chars":    len(span),
		"rewrite_chars": len(rewritten),
		"pdf_bytes":     len(out),
	})
	return out, nil
}

// NewService assembles the default pipeline.
func NewService(requester rewrite.Requester) *Service {
	return &Service{
		Extract:   extract.Text,
		Locator:   section.NewMarkerLocator(),
		Requester: requester,
		Renderer:  render.PDF{},
	}
}
