package extractor

import (
	"bufio"
	"io"
	"regexp"

	"github.com/linkrot/linkrot/pkg/models"
	"mvdan.cc/xurls/v2"
)

// PlaintextScanner finds fully-qualified URLs in unstructured text.
// The strict ruleset only matches URLs carrying a scheme, so relative
// links in plaintext are never picked up. Construct one per run and
// share it: compiling the ruleset is expensive.
type PlaintextScanner struct {
	re *regexp.Regexp
}

func NewPlaintextScanner() *PlaintextScanner {
	return &PlaintextScanner{re: xurls.Strict()}
}

func (*PlaintextScanner) Name() string {
	return "plaintext"
}

// Extract scans line by line so every link gets a 1-based line and
// column position.
func (p *PlaintextScanner) Extract(body io.Reader) ([]*models.RawLink, error) {
	var links []*models.RawLink

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			links = append(links, models.NewRawLink(text[loc[0]:loc[1]], line, loc[0]+1))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return links, nil
}
