package resolver

import (
	"net/url"
	"strings"
)

// asciiSpace is what gets trimmed off the front of link text before
// classification, matching what browsers ignore ahead of a URL.
const asciiSpace = " \t\n\f\r"

// baseContext is the base a SourceBaseInfo resolves relative links
// against. origin is the URL with an empty path, or the declared or
// inferred root for filesystem sources. subpath locates the source
// itself below origin, so that locally-relative links ("./x", "x.png")
// resolve correctly. wellFounded is true iff root-relative links
// (leading "/") may be resolved against origin; it is false for
// filesystem sources with no declared root, where only the source's
// own subtree is known, not "the root".
type baseContext struct {
	origin      *url.URL
	subpath     string
	wellFounded bool
}

// SourceBaseInfo is the resolution context for exactly one input
// source, built once before link extraction begins and read-only for
// every link found in that source. base is nil only when the source
// could not produce any URL at all, such as piped stdin.
type SourceBaseInfo struct {
	base *baseContext
}

// NoBaseInfo returns the context for a source with no addressable
// base. Only fully-qualified links will resolve.
func NoBaseInfo() *SourceBaseInfo {
	return &SourceBaseInfo{}
}

// FullBaseInfo returns a well-founded context: both root-relative and
// locally-relative links resolve against origin.
func FullBaseInfo(origin *url.URL, subpath string) *SourceBaseInfo {
	return &SourceBaseInfo{base: &baseContext{
		origin:      origin,
		subpath:     subpath,
		wellFounded: true,
	}}
}

// fromSourceURL derives a context from the source's own URL. file:
// URLs can traverse relative to themselves but have no known root, so
// they are not well-founded. Other URLs split into an origin with the
// path cleared plus the path as subpath. A URL whose path does not
// hang off an authority (an opaque one, like mailto:) yields no base.
func fromSourceURL(u *url.URL) *SourceBaseInfo {
	if u.Scheme == "file" {
		return &SourceBaseInfo{base: &baseContext{origin: u}}
	}

	if u.Opaque != "" || !strings.HasPrefix(u.EscapedPath(), "/") {
		return NoBaseInfo()
	}

	origin := *u
	origin.Path = ""
	origin.RawPath = ""
	origin.ForceQuery = false
	origin.RawQuery = ""
	origin.Fragment = ""
	origin.RawFragment = ""

	return FullBaseInfo(&origin, strings.TrimPrefix(u.EscapedPath(), "/"))
}

// WellFounded reports whether root-relative links may be resolved.
func (b *SourceBaseInfo) WellFounded() bool {
	return b.base != nil && b.base.wellFounded
}

// orFallback returns the context with more information between b and
// fallback: a well-founded base beats a rootless one, which beats no
// base at all. Ties keep b.
func (b *SourceBaseInfo) orFallback(fallback *SourceBaseInfo) *SourceBaseInfo {
	if b.WellFounded() {
		return b
	}
	if fallback.WellFounded() {
		return fallback
	}
	if b.base != nil {
		return b
	}
	return fallback
}

func isSchemeRelative(text string) bool {
	return strings.HasPrefix(text, "//")
}

func isRootRelative(text string) bool {
	return strings.HasPrefix(text, "/") && !isSchemeRelative(text)
}

// ParseURLText turns raw link text found in the source into a
// fully-qualified URL.
//
// Text that parses as an absolute URL on its own is returned unchanged.
// Everything else is classified as scheme-relative ("//host/x"),
// root-relative ("/x") or locally-relative (anything else, including
// empty and fragment-only text) and resolved through JoinRooted against
// the base. Root-relative text against an absent or non-well-founded
// base fails with InvalidBaseJoinError: that rejection is what keeps a
// bare filesystem source from resolving into an undeclared root.
func (b *SourceBaseInfo) ParseURLText(text string) (*url.URL, error) {
	trimmed := strings.TrimLeft(text, asciiSpace)

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, &ParseURLError{Text: text, Err: err}
	}
	if parsed.IsAbs() {
		return parsed, nil
	}

	if b.base == nil {
		if isRootRelative(trimmed) {
			return nil, &InvalidBaseJoinError{Text: text}
		}
		return nil, &ParseURLError{Text: text, Err: ErrRelativeURLWithoutBase}
	}

	if isRootRelative(trimmed) && !b.base.wellFounded {
		return nil, &InvalidBaseJoinError{Text: text}
	}

	return JoinRooted(b.base.origin, []string{b.base.subpath, trimmed})
}
