package checker

// Status is the verdict for a single checked URL.
type Status int

const (
	// StatusOK means the target exists and responded successfully.
	StatusOK Status = iota
	// StatusBroken means the target responded but the link is dead,
	// like a 404 or a missing file.
	StatusBroken
	// StatusError means the check itself failed, like a DNS error or
	// a timeout, so the link's health is unknown.
	StatusError
	// StatusSkipped means the URL's scheme is not checkable, like
	// mailto: or data:.
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusBroken:
		return "broken"
	case StatusError:
		return "error"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}
