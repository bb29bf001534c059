package resolver

import (
	"errors"
	"fmt"
)

// ErrRelativeURLWithoutBase is the underlying cause reported when link
// text can only be understood relative to a base, but the input source
// provides none.
var ErrRelativeURLWithoutBase = errors.New("relative URL without a base")

// ParseURLError reports link text that is not a valid URL or relative
// reference under the applicable base.
type ParseURLError struct {
	Text string
	Err  error
}

func (e *ParseURLError) Error() string {
	return fmt.Sprintf("unable to parse URL %q: %s", e.Text, e.Err)
}

func (e *ParseURLError) Unwrap() error {
	return e.Err
}

// InvalidBaseError reports a user-declared root or base that cannot be
// used, either because the value cannot be a base URL or because it
// conflicts with another declared mapping.
type InvalidBaseError struct {
	Value  string
	Reason string
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid base %q: %s", e.Value, e.Reason)
}

// InvalidBaseJoinError reports a root-relative link that was attempted
// against an absent or non-well-founded base. This is a policy
// rejection, not a syntax error: the link may be perfectly valid text,
// we just have no root to resolve it against.
type InvalidBaseJoinError struct {
	Text string
}

func (e *InvalidBaseJoinError) Error() string {
	return fmt.Sprintf("unable to join %q with base", e.Text)
}
