package resolver

import (
	"fmt"
	"net/url"
)

// MappingPair declares that the remote URL prefix and the local URL
// prefix identify the same tree: files under Local are presented as if
// hosted under Remote, and vice-versa. Remote and Local may be equal,
// which makes the pair an identity mapping.
type MappingPair struct {
	Remote *url.URL
	Local  *url.URL
}

// URLMappings is an ordered list of bidirectional remote/local URL
// pairs. Bases and roots of distinct pairs may not nest inside each
// other, and within a single pair the two sides may not nest unless
// they are equal; this is checked at construction. Immutable once
// constructed, safe for concurrent readers.
type URLMappings struct {
	pairs []MappingPair
}

// NewURLMappings validates the no-nesting invariant and builds the
// mapping table. Lookup order is declaration order: when several pairs
// could apply, the first declared wins.
func NewURLMappings(pairs []MappingPair) (*URLMappings, error) {
	for _, pair := range pairs {
		if nested(pair.Remote, pair.Local) {
			return nil, &InvalidBaseError{
				Value:  pair.Remote.String(),
				Reason: fmt.Sprintf("base cannot be parent or child of root-dir %s", pair.Local),
			}
		}
	}

	for i, a := range pairs {
		for _, b := range pairs[i+1:] {
			if nested(a.Remote, b.Remote) {
				return nil, &InvalidBaseError{
					Value:  a.Remote.String(),
					Reason: fmt.Sprintf("base cannot be parent or child of base %s", b.Remote),
				}
			}
			if nested(a.Local, b.Local) {
				return nil, &InvalidBaseError{
					Value:  a.Local.String(),
					Reason: fmt.Sprintf("root-dir cannot be parent or child of root-dir %s", b.Local),
				}
			}
		}
	}

	return &URLMappings{pairs: pairs}, nil
}

// nested reports whether one URL lies strictly inside the other's path
// space. Equal URLs are not considered nested.
func nested(a, b *url.URL) bool {
	if a.String() == b.String() {
		return false
	}
	if _, ok := StrictlyRelativeTo(a, b); ok {
		return true
	}
	_, ok := StrictlyRelativeTo(b, a)
	return ok
}

// MapToRemote matches u against the local sides and returns the remote
// counterpart of the first matching pair along with u's subpath below
// the local side. Used to pre-seed a base when an input source's own
// URL lies under a declared root, and to reflect a local identity back
// out to its declared remote one.
func (m *URLMappings) MapToRemote(u *url.URL) (*url.URL, string, bool) {
	for _, pair := range m.pairs {
		if subpath, ok := StrictlyRelativeTo(u, pair.Local); ok {
			return pair.Remote, subpath, true
		}
	}
	return nil, "", false
}

// MapToLocal is the symmetric lookup, matching the remote sides and
// returning the local counterpart. Used when a resolved URL lands under
// a declared remote base and must be rewritten to the local tree that
// stands in for it.
func (m *URLMappings) MapToLocal(u *url.URL) (*url.URL, string, bool) {
	for _, pair := range m.pairs {
		if subpath, ok := StrictlyRelativeTo(u, pair.Remote); ok {
			return pair.Local, subpath, true
		}
	}
	return nil, "", false
}
