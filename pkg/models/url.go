package models

import "net/url"

// URL wraps the standard url.URL, keeping the raw text alongside its
// parsed form. The raw text is what gets reported back to the user,
// the parsed form is what the rest of the pipeline works with.
type URL struct {
	Raw    string
	parsed *url.URL
}

func NewURL(raw string) *URL {
	return &URL{Raw: raw}
}

// NewURLFromParsed wraps an already-parsed URL.
func NewURLFromParsed(parsed *url.URL) *URL {
	return &URL{Raw: parsed.String(), parsed: parsed}
}

// Parse parses the raw URL and caches the result.
func (u *URL) Parse() error {
	parsed, err := url.Parse(u.Raw)
	if err != nil {
		return err
	}

	u.parsed = parsed
	return nil
}

// GetParsed returns the cached parsed form, parsing the raw text first
// if needed. Returns nil if the raw text is not a valid URL.
func (u *URL) GetParsed() *url.URL {
	if u.parsed == nil {
		if err := u.Parse(); err != nil {
			return nil
		}
	}
	return u.parsed
}

func (u *URL) String() string {
	return u.Raw
}
