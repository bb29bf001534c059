package extractor

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/linkrot/linkrot/pkg/models"
)

// linkAttrs maps the tags worth walking to the attribute carrying the
// link. Order matters: links come out in document order per tag group.
var linkAttrs = []struct {
	tag  string
	attr string
}{
	{"a", "href"},
	{"link", "href"},
	{"area", "href"},
	{"img", "src"},
	{"script", "src"},
	{"iframe", "src"},
	{"source", "src"},
	{"embed", "src"},
	{"audio", "src"},
	{"video", "src"},
}

// HTMLExtractor extracts links from href and src attributes. The HTML
// parser does not expose node positions, so lines and columns come
// back zero.
type HTMLExtractor struct{}

func (HTMLExtractor) Name() string {
	return "html"
}

func (HTMLExtractor) Extract(body io.Reader) ([]*models.RawLink, error) {
	document, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, err
	}

	var links []*models.RawLink
	for _, la := range linkAttrs {
		document.Find(la.tag).Each(func(_ int, s *goquery.Selection) {
			value, exists := s.Attr(la.attr)
			if !exists {
				return
			}
			// Browsers strip surrounding ASCII whitespace from
			// attribute values before resolving them.
			value = strings.Trim(value, "\t\n\f\r ")
			if value == "" {
				return
			}
			links = append(links, models.NewRawLink(value, 0, 0))
		})
	}

	return links, nil
}
