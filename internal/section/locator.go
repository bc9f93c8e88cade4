// Package section locates and splices the bounded résumé region targeted for
// rewriting.
package section

import (
	"errors"
	"fmt"
	"strings"
)

// Markers delimiting the competencies block in extracted résumé text.
const (
	StartMarker = "CORE COMPETENCIES"
	EndMarker   = "PERSONAL DETAILS"
)

// ErrSectionNotFound reports that the targeted section could not be located
// in the extracted text.
var ErrSectionNotFound = errors.New("section not found")

// Locator identifies a contiguous region of document text for targeted
// rewriting. Implementations return the region trimmed of surrounding
// whitespace, or an error wrapping ErrSectionNotFound when no region exists.
type Locator interface {
	Locate(text string) (string, error)
}

// MarkerLocator finds the region between the first occurrence of a start
// marker and the first occurrence of an end marker, searched independently
// over the whole text. An end marker positioned before the start marker
// yields an empty span, which is reported as not found.
type MarkerLocator struct {
	Start string
	End   string
}

// NewMarkerLocator returns a MarkerLocator for the résumé competencies block.
func NewMarkerLocator() MarkerLocator {
	return MarkerLocator{Start: StartMarker, End: EndMarker}
}

// Locate returns the text strictly between the markers, so the start marker
// itself stays in place when the span is later replaced.
func (l MarkerLocator) Locate(text string) (string, error) {
	start := strings.Index(text, l.Start)
	if start < 0 {
		return "", fmt.Errorf("start marker %q: %w", l.Start, ErrSectionNotFound)
	}
	end := strings.Index(text, l.End)
	if end < 0 {
		return "", fmt.Errorf("end marker %q: %w", l.End, ErrSectionNotFound)
	}
	body := start + len(l.Start)
	if end <= body {
		// Inverted or overlapping markers produce a defined empty span rather
		// than a slice panic; an empty span is nothing to rewrite.
		return "", fmt.Errorf("end marker precedes start marker: %w", ErrSectionNotFound)
	}

	span := strings.TrimSpace(text[body:end])
	if span == "" {
		return "", fmt.Errorf("empty span between markers: %w", ErrSectionNotFound)
	}
	return span, nil
}

// HeadingLocator is the structural variant: it treats the start and end
// markers as headings on their own lines and returns the lines between them.
type HeadingLocator struct {
	Start string
	End   string
}

func (l HeadingLocator) Locate(text string) (string, error) {
	lines := strings.Split(text, "\n")
	start, end := -1, -1
	for i, line := range lines {
		switch strings.TrimSpace(line) {
		case l.Start:
			if start < 0 {
				start = i
			}
		case l.End:
			if end < 0 {
				end = i
			}
		}
	}
	if start < 0 {
		return "", fmt.Errorf("start heading %q: %w", l.Start, ErrSectionNotFound)
	}
	if end < 0 {
		return "", fmt.Errorf("end heading %q: %w", l.End, ErrSectionNotFound)
	}
	if end <= start {
		return "", fmt.Errorf("end heading precedes start heading: %w", ErrSectionNotFound)
	}

	span := strings.TrimSpace(strings.Join(lines[start+1:end], "\n"))
	if span == "" {
		return "", fmt.Errorf("empty span between headings: %w", ErrSectionNotFound)
	}
	return span, nil
}
