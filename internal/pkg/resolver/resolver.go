// Package resolver turns raw link text discovered inside an input
// source into the single fully-qualified URL the link points to,
// honoring the source's notion of "base", an optional user-declared
// root directory / base URL pair, and the confinement rule that keeps
// relative links from escaping a filesystem root.
package resolver

import (
	"net/url"
	"strings"

	"github.com/linkrot/linkrot/pkg/models"
)

// URLSource is the face an input source shows to the resolver. ToURL
// returns (nil, nil) for sources with no addressable base, such as
// piped stdin.
type URLSource interface {
	ToURL() (*url.URL, error)
}

// BaseURLer converts a user-declared base, a remote URL or a local
// path, into a URL. It fails when the value cannot serve as a base,
// for instance an opaque scheme like data:.
type BaseURLer interface {
	ToURL() (*url.URL, error)
}

// RootAndBase pairs a declared local root with the base URL it stands
// in for. A nil Base means the root doubles as its own base.
type RootAndBase struct {
	Root BaseURLer
	Base BaseURLer
}

// PrepareSourceBaseInfo builds the resolution context for one input
// source: the SourceBaseInfo every link in the source resolves
// against, plus the remote/local mappings derived from the declared
// root and base.
//
// When the source's own URL falls under the declared root, the base is
// pre-seeded with the remote side of the mapping, so links resolve as
// if the source were hosted there. A fallback base applies only when
// nothing better could be derived, and counts as well-founded.
func PrepareSourceBaseInfo(source URLSource, rootAndBase *RootAndBase, fallbackBase BaseURLer) (*SourceBaseInfo, *URLMappings, error) {
	var pairs []MappingPair
	if rootAndBase != nil {
		rootURL, err := rootAndBase.Root.ToURL()
		if err != nil {
			return nil, nil, err
		}

		baseURL := rootURL
		if rootAndBase.Base != nil {
			baseURL, err = rootAndBase.Base.ToURL()
			if err != nil {
				return nil, nil, err
			}
		}

		pairs = append(pairs, MappingPair{Remote: baseURL, Local: rootURL})
	}

	mappings, err := NewURLMappings(pairs)
	if err != nil {
		return nil, nil, err
	}

	fallback := NoBaseInfo()
	if fallbackBase != nil {
		fallbackURL, err := fallbackBase.ToURL()
		if err != nil {
			return nil, nil, err
		}
		fallback = FullBaseInfo(fallbackURL, "")
	}

	sourceURL, err := source.ToURL()
	if err != nil {
		return nil, nil, err
	}

	var info *SourceBaseInfo
	switch {
	case sourceURL == nil:
		info = NoBaseInfo()
	default:
		if remote, subpath, ok := mappings.MapToRemote(sourceURL); ok {
			info = FullBaseInfo(remote, subpath)
		} else {
			info = fromSourceURL(sourceURL)
		}
	}

	return info.orFallback(fallback), mappings, nil
}

// ParseURLWithBaseInfo resolves one raw link against a prepared
// context. A resolved URL that lands under a mapping's remote side is
// rewritten to its local identity, subpath preserved. For file: URLs a
// trailing empty path segment, the artifact of directory-URL joins, is
// stripped so results line up with how filesystem paths are reported.
func ParseURLWithBaseInfo(info *SourceBaseInfo, mappings *URLMappings, raw *models.RawLink) (*models.URL, error) {
	resolved, err := info.ParseURLText(raw.Text)
	if err != nil {
		return nil, err
	}

	if local, subpath, ok := mappings.MapToLocal(resolved); ok {
		if mapped, jerr := joinText(local, subpath); jerr == nil {
			resolved = mapped
		}
	}

	if resolved.Scheme == "file" {
		stripTrailingEmptySegment(resolved)
	}

	return models.NewURLFromParsed(resolved), nil
}

func stripTrailingEmptySegment(u *url.URL) {
	if len(u.Path) > 1 && strings.HasSuffix(u.Path, "/") {
		u.Path = strings.TrimSuffix(u.Path, "/")
		u.RawPath = strings.TrimSuffix(u.RawPath, "/")
	}
}
