package resolver

import (
	"net/url"
	"strings"
)

// sentinelHost is substituted for the authority of file: bases while a
// confined join is in flight. The .invalid TLD is reserved (RFC 2606)
// and can never resolve, so a half-joined URL can never leak out as a
// fetchable address.
const sentinelHost = "linkrot-confined-root.invalid"

// JoinRooted joins base with each subpath in order, left to right, the
// way an ordinary URL join would.
//
// For file: bases the join is confined: it runs against a synthetic
// base whose path is "/" and whose authority is a sentinel hostname, so
// however the path walks via "..", it cannot climb above the synthetic
// root. The result is then relativized against the synthetic root and
// re-joined onto the real base. The final URL always shares the base's
// authority and cannot express a path above the base's own path. A join
// that escapes the synthetic root entirely (an absolute or
// scheme-relative subpath switching authority) is clamped back to the
// base itself.
//
// Non-file bases get a plain sequential join with no confinement;
// scheme-relative subpaths may switch authority freely.
func JoinRooted(base *url.URL, subpaths []string) (*url.URL, error) {
	if base.Scheme != "file" {
		return joinAll(base, subpaths)
	}

	fake := *base
	fake.User = nil
	fake.Host = sentinelHost
	fake.Path = "/"
	fake.RawPath = ""
	fake.ForceQuery = false
	fake.RawQuery = ""
	fake.Fragment = ""
	fake.RawFragment = ""

	joined, err := joinAll(&fake, subpaths)
	if err != nil {
		return nil, err
	}

	// An empty relative path means the join fell outside the synthetic
	// root entirely, which clamps the result to the base itself.
	rel, ok := StrictlyRelativeTo(joined, &fake)
	if !ok {
		rel = ""
	}

	final, err := joinText(base, rel)
	if err != nil {
		return nil, &ParseURLError{Text: rel, Err: err}
	}
	return final, nil
}

func joinAll(base *url.URL, subpaths []string) (*url.URL, error) {
	current := base
	for _, subpath := range subpaths {
		next, err := joinText(current, subpath)
		if err != nil {
			return nil, &ParseURLError{Text: subpath, Err: err}
		}
		current = next
	}
	return current, nil
}

// joinText parses text as a URL reference and resolves it against base
// per RFC 3986.
func joinText(base *url.URL, text string) (*url.URL, error) {
	ref, err := url.Parse(text)
	if err != nil {
		return nil, err
	}
	return base.ResolveReference(ref), nil
}

// StrictlyRelativeTo computes relative path text rel such that joining
// rel onto prefix yields u. Only "descendant" relations are expressed:
// the result never leads with "..", and ("", false) is returned when u
// is not a path-descendant of prefix under the same scheme and
// authority.
//
// The walk compares escaped path segments verbatim, without
// normalization: doubled separators and percent-encodings must match
// segment for segment, otherwise links silently change which root they
// are considered inside of. The final segment of prefix, its notional
// filename, is not required to match. Query and fragment of u are
// carried into the result. A result that would lead with "/" gets a
// "./" prefix so it cannot be re-read as root-relative or
// scheme-relative.
func StrictlyRelativeTo(u, prefix *url.URL) (string, bool) {
	if u.Scheme != prefix.Scheme || u.Host != prefix.Host {
		return "", false
	}

	uPath := u.EscapedPath()
	prefixPath := prefix.EscapedPath()

	var rel string
	if uPath == prefixPath {
		rel = ""
	} else {
		uSegments := strings.Split(uPath, "/")
		prefixSegments := strings.Split(prefixPath, "/")

		// Drop the prefix's notional filename.
		prefixSegments = prefixSegments[:len(prefixSegments)-1]
		if len(uSegments) < len(prefixSegments) {
			return "", false
		}
		for i, segment := range prefixSegments {
			if uSegments[i] != segment {
				return "", false
			}
		}

		rel = strings.Join(uSegments[len(prefixSegments):], "/")
		if strings.HasPrefix(rel, "/") {
			rel = "./" + rel
		}
	}

	if u.ForceQuery || u.RawQuery != "" {
		rel += "?" + u.RawQuery
	}
	if u.Fragment != "" {
		rel += "#" + u.EscapedFragment()
	}

	return rel, true
}
