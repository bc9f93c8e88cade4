package section

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSpanNotFound reports that the original span is not present verbatim in
// the full text, so there is nothing to replace.
var ErrSpanNotFound = errors.New("span not found in text")

// Splice returns text with the first literal occurrence of oldSpan replaced
// by newSpan. Only the first occurrence is replaced: the located section is a
// single targeted region, and repeating identical text elsewhere in the
// document must stay untouched. An empty oldSpan is rejected, since replacing
// it would insert newSpan at the start of the text.
func Splice(text, oldSpan, newSpan string) (string, error) {
	if oldSpan == "" {
		return "", fmt.Errorf("empty span: %w", ErrSpanNotFound)
	}
	if !strings.Contains(text, oldSpan) {
		return "", ErrSpanNotFound
	}
	return strings.Replace(text, oldSpan, newSpan, 1), nil
}
