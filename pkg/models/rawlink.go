package models

import "fmt"

// RawLink is a piece of link text found verbatim in a document, along
// with the position it was found at. Positions are 1-based; zero means
// the extractor could not track them.
type RawLink struct {
	Text   string
	Line   int
	Column int
}

func NewRawLink(text string, line, column int) *RawLink {
	return &RawLink{Text: text, Line: line, Column: column}
}

// String renders the link text with its position, for error reporting.
func (r *RawLink) String() string {
	if r.Line == 0 {
		return r.Text
	}
	return fmt.Sprintf("%s (line %d, column %d)", r.Text, r.Line, r.Column)
}
