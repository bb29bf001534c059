package resolver

import (
	"errors"
	"net/url"
	"testing"

	"github.com/linkrot/linkrot/pkg/models"
)

// urlSource stubs an input source with a fixed URL; empty means no
// addressable base, like stdin.
type urlSource string

func (s urlSource) ToURL() (*url.URL, error) {
	if s == "" {
		return nil, nil
	}
	return url.Parse(string(s))
}

// baseURL stubs a user-declared base.
type baseURL string

func (b baseURL) ToURL() (*url.URL, error) {
	return url.Parse(string(b))
}

// badBase stubs a base whose conversion fails.
type badBase string

func (b badBase) ToURL() (*url.URL, error) {
	return nil, &InvalidBaseError{Value: string(b), Reason: "cannot be a base URL"}
}

func resolveOne(t *testing.T, source urlSource, rootAndBase *RootAndBase, fallback BaseURLer, text string) (*models.URL, error) {
	t.Helper()

	info, mappings, err := PrepareSourceBaseInfo(source, rootAndBase, fallback)
	if err != nil {
		t.Fatalf("PrepareSourceBaseInfo() error = %v", err)
	}
	return ParseURLWithBaseInfo(info, mappings, models.NewRawLink(text, 1, 1))
}

func TestResolveWithRootAndBase(t *testing.T) {
	tests := []struct {
		name        string
		source      urlSource
		rootAndBase *RootAndBase
		fallback    BaseURLer
		text        string
		want        string
		wantErr     bool
	}{
		{
			name:   "fragment on source under root with remote base",
			source: "file:///some/page.html",
			rootAndBase: &RootAndBase{
				Root: baseURL("file:///some/"),
				Base: baseURL("https://example.com/path/page2.html"),
			},
			text: "#fragment",
			want: "file:///some/page.html#fragment",
		},
		{
			name:   "fragment when root is the source file itself",
			source: "file:///some/pagex.html",
			rootAndBase: &RootAndBase{
				Root: baseURL("file:///some/pagex.html/"),
				Base: baseURL("https://example.com/path/page.html"),
			},
			text: "#fragment",
			want: "file:///some/pagex.html#fragment",
		},
		{
			name:   "sibling link reflected back into the root",
			source: "file:///some/page.html",
			rootAndBase: &RootAndBase{
				Root: baseURL("file:///some/"),
				Base: baseURL("https://example.com/path/"),
			},
			text: "other.html",
			want: "file:///some/other.html",
		},
		{
			name:   "root-relative allowed under a declared root",
			source: "file:///docs/guide/index.html",
			rootAndBase: &RootAndBase{
				Root: baseURL("file:///docs/"),
			},
			text: "/assets/logo.png",
			want: "file:///docs/assets/logo.png",
		},
		{
			name:   "dotdot confined to the declared root",
			source: "file:///docs/guide/index.html",
			rootAndBase: &RootAndBase{
				Root: baseURL("file:///docs/"),
			},
			text: "../../../etc/passwd",
			want: "file:///docs/etc/passwd",
		},
		{
			name:   "remote link outside the base stays remote",
			source: "file:///some/page.html",
			rootAndBase: &RootAndBase{
				Root: baseURL("file:///some/"),
				Base: baseURL("https://example.com/path/"),
			},
			text: "https://other.example/x",
			want: "https://other.example/x",
		},
		{
			name:    "nested root and base rejected",
			source:  "file:///some/page.html",
			rootAndBase: &RootAndBase{
				Root: baseURL("https://a.com/x/y"),
				Base: baseURL("https://a.com/x"),
			},
			text:    "#fragment",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr {
				_, _, err := PrepareSourceBaseInfo(tt.source, tt.rootAndBase, tt.fallback)
				var invalidBase *InvalidBaseError
				if !errors.As(err, &invalidBase) {
					t.Fatalf("PrepareSourceBaseInfo() error = %v, want *InvalidBaseError", err)
				}
				return
			}

			got, err := resolveOne(t, tt.source, tt.rootAndBase, tt.fallback, tt.text)
			if err != nil {
				t.Fatalf("resolve error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("resolved = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveStdin(t *testing.T) {
	// No URL at all: only fully-qualified links survive.
	if _, err := resolveOne(t, "", nil, nil, "/rooted"); err == nil {
		t.Error("root-relative text must fail without a base")
	} else {
		var e *InvalidBaseJoinError
		if !errors.As(err, &e) {
			t.Errorf("error = %v, want *InvalidBaseJoinError", err)
		}
	}

	if _, err := resolveOne(t, "", nil, nil, "relative.html"); err == nil {
		t.Error("locally-relative text must fail without a base")
	}

	got, err := resolveOne(t, "", nil, nil, "https://example.com/ok")
	if err != nil {
		t.Fatalf("absolute link failed: %v", err)
	}
	if got.String() != "https://example.com/ok" {
		t.Errorf("resolved = %v", got)
	}
}

func TestResolveFallbackBase(t *testing.T) {
	fallback := baseURL("https://fallback.example/dir/")

	// Stdin picks the fallback up wholesale.
	got, err := resolveOne(t, "", nil, fallback, "x.html")
	if err != nil {
		t.Fatalf("resolve error = %v", err)
	}
	if want := "https://fallback.example/dir/x.html"; got.String() != want {
		t.Errorf("resolved = %v, want %v", got, want)
	}

	// A rootless file source gets overridden by the fallback, which is
	// well-founded, so root-relative text works.
	got, err = resolveOne(t, "file:///a/b/page.html", nil, fallback, "/top")
	if err != nil {
		t.Fatalf("resolve error = %v", err)
	}
	if want := "https://fallback.example/top"; got.String() != want {
		t.Errorf("resolved = %v, want %v", got, want)
	}

	// A remote source beats the fallback.
	got, err = resolveOne(t, "https://real.example/d/p.html", nil, fallback, "x")
	if err != nil {
		t.Fatalf("resolve error = %v", err)
	}
	if want := "https://real.example/d/x"; got.String() != want {
		t.Errorf("resolved = %v, want %v", got, want)
	}
}

func TestResolveBadBase(t *testing.T) {
	_, _, err := PrepareSourceBaseInfo(urlSource("file:///x/y.html"), &RootAndBase{Root: badBase("data:text/plain")}, nil)
	var invalidBase *InvalidBaseError
	if !errors.As(err, &invalidBase) {
		t.Fatalf("PrepareSourceBaseInfo() error = %v, want *InvalidBaseError", err)
	}
}

func TestResolveErrorKeepsLinkText(t *testing.T) {
	_, err := resolveOne(t, "", nil, nil, "broken.html")

	var parseErr *ParseURLError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *ParseURLError", err)
	}
	if parseErr.Text != "broken.html" {
		t.Errorf("error text = %q, want the offending link text", parseErr.Text)
	}
}
