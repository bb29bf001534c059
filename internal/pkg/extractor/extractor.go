// Package extractor pulls raw link text out of documents. Extractors
// return links in document order, with line and column positions when
// the format lets us know them.
package extractor

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/linkrot/linkrot/pkg/models"
)

// Extractor extracts raw links from a document body.
type Extractor interface {
	// Name identifies the extractor in logs.
	Name() string
	// Extract reads the body and returns the raw links it contains.
	Extract(body io.Reader) ([]*models.RawLink, error)
}

// ForSource picks the extractor for a source, preferring the
// Content-Type header when one is available and falling back to the
// file extension. Anything unrecognized goes through the plaintext
// scanner, which only picks up fully-qualified URLs.
func ForSource(name string, header http.Header, plaintext *PlaintextScanner) Extractor {
	if header != nil {
		ct := header.Get("Content-Type")
		switch {
		case isContentType(ct, "html"), isContentType(ct, "xhtml"):
			return HTMLExtractor{}
		case ct != "":
			return plaintext
		}
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm", ".xhtml":
		return HTMLExtractor{}
	default:
		return plaintext
	}
}

func isContentType(header, expected string) bool {
	// Truncate the header to avoid scanning parameters like charset.
	if i := strings.Index(header, ";"); i != -1 {
		header = header[:i]
	}
	return strings.Contains(header, expected)
}
