package source

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/linkrot/linkrot/internal/pkg/resolver"
)

// URLFromPath converts an absolute filesystem path to a file: URL.
// Windows paths get their backslashes flipped and the drive letter
// pushed down into the path, so C:\docs becomes file:///C:/docs and
// cannot collide with a host component.
func URLFromPath(path string) (*url.URL, error) {
	var slashed string
	if isWindowsDrivePath(path) {
		slashed = "/" + strings.ReplaceAll(path, `\`, "/")
	} else {
		slashed = filepath.ToSlash(path)
	}

	if !strings.HasPrefix(slashed, "/") {
		return nil, &resolver.InvalidBaseError{
			Value:  path,
			Reason: "must be an absolute path",
		}
	}

	return &url.URL{Scheme: "file", Path: slashed}, nil
}

// DirURLFromPath is URLFromPath with a trailing slash guaranteed,
// which is the shape a join base needs.
func DirURLFromPath(path string) (*url.URL, error) {
	u, err := URLFromPath(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}

// PathFromURL converts a file: URL back to a filesystem path.
func PathFromURL(u *url.URL) string {
	path := u.Path
	if trimmed := strings.TrimPrefix(path, "/"); isWindowsDrivePath(trimmed) {
		path = trimmed
	}
	return filepath.FromSlash(path)
}

func isWindowsDrivePath(path string) bool {
	if len(path) < 3 {
		return false
	}
	drive := path[0]
	letter := drive >= 'a' && drive <= 'z' || drive >= 'A' && drive <= 'Z'
	return letter && path[1] == ':' && (path[2] == '/' || path[2] == '\\')
}
