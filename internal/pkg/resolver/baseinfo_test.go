package resolver

import (
	"errors"
	"testing"
)

func TestParseURLTextNoBase(t *testing.T) {
	info := NoBaseInfo()

	tests := []struct {
		name    string
		text    string
		want    string
		wantErr error
	}{
		{
			name: "absolute URL needs no base",
			text: "https://example.com/path",
			want: "https://example.com/path",
		},
		{
			name: "mailto is absolute too",
			text: "mailto:someone@example.com",
			want: "mailto:someone@example.com",
		},
		{
			name:    "root-relative is a policy rejection",
			text:    "/path",
			wantErr: &InvalidBaseJoinError{},
		},
		{
			name:    "locally-relative has nothing to resolve against",
			text:    "page.html",
			wantErr: &ParseURLError{},
		},
		{
			name:    "scheme-relative has nothing to resolve against",
			text:    "//host/page.html",
			wantErr: &ParseURLError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := info.ParseURLText(tt.text)
			if tt.wantErr != nil {
				switch tt.wantErr.(type) {
				case *InvalidBaseJoinError:
					var e *InvalidBaseJoinError
					if !errors.As(err, &e) {
						t.Fatalf("ParseURLText() error = %v, want InvalidBaseJoinError", err)
					}
				case *ParseURLError:
					var e *ParseURLError
					if !errors.As(err, &e) {
						t.Fatalf("ParseURLText() error = %v, want ParseURLError", err)
					}
					if !errors.Is(err, ErrRelativeURLWithoutBase) {
						t.Fatalf("ParseURLText() error = %v, want wrapped ErrRelativeURLWithoutBase", err)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseURLText() error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseURLText() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseURLTextFileWithoutRoot(t *testing.T) {
	info := fromSourceURL(mustParse(t, "file:///a/b/page.html"))

	if info.WellFounded() {
		t.Fatal("bare file source must not be well-founded")
	}

	tests := []struct {
		name    string
		text    string
		want    string
		wantErr bool
	}{
		{
			name: "fragment resolves onto the source itself",
			text: "#section",
			want: "file:///a/b/page.html#section",
		},
		{
			name: "sibling file",
			text: "./style.css",
			want: "file:///a/b/style.css",
		},
		{
			name: "dotdot is confined to the source directory",
			text: "../escape.html",
			want: "file:///a/b/escape.html",
		},
		{
			name:    "root-relative gated on well-foundedness",
			text:    "/anything",
			wantErr: true,
		},
		{
			name: "absolute passes through",
			text: "https://example.com/x",
			want: "https://example.com/x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := info.ParseURLText(tt.text)
			if tt.wantErr {
				var e *InvalidBaseJoinError
				if !errors.As(err, &e) {
					t.Fatalf("ParseURLText() error = %v, want InvalidBaseJoinError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseURLText() error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseURLText() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseURLTextRemoteSource(t *testing.T) {
	info := fromSourceURL(mustParse(t, "https://example.com/dir/index.html"))

	if !info.WellFounded() {
		t.Fatal("remote source must be well-founded")
	}

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "locally-relative",
			text: "img.png",
			want: "https://example.com/dir/img.png",
		},
		{
			name: "root-relative",
			text: "/top.html",
			want: "https://example.com/top.html",
		},
		{
			name: "scheme-relative switches authority",
			text: "//cdn.example.net/lib.js",
			want: "https://cdn.example.net/lib.js",
		},
		{
			name: "dotdot walks up freely",
			text: "../../up.html",
			want: "https://example.com/up.html",
		},
		{
			name: "empty text is the source itself",
			text: "",
			want: "https://example.com/dir/index.html",
		},
		{
			name: "leading whitespace ignored",
			text: "  img.png",
			want: "https://example.com/dir/img.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := info.ParseURLText(tt.text)
			if err != nil {
				t.Fatalf("ParseURLText() error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseURLText() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromSourceURLOpaque(t *testing.T) {
	info := fromSourceURL(mustParse(t, "mailto:someone@example.com"))
	if info.base != nil {
		t.Errorf("opaque source URL must yield no base, got %+v", info.base)
	}
}

func TestOrFallback(t *testing.T) {
	full := FullBaseInfo(mustParse(t, "https://a.com/"), "")
	noRoot := fromSourceURL(mustParse(t, "file:///a/b.html"))
	none := NoBaseInfo()
	emptyFallback := NoBaseInfo()

	tests := []struct {
		name     string
		base     *SourceBaseInfo
		fallback *SourceBaseInfo
		want     *SourceBaseInfo
	}{
		{"full keeps itself", full, FullBaseInfo(mustParse(t, "https://b.com/"), ""), full},
		{"fallback beats no-root", noRoot, full, full},
		{"no-root beats nothing", noRoot, none, noRoot},
		{"fallback beats none", none, full, full},
		{"nothing stays nothing", none, emptyFallback, emptyFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.base.orFallback(tt.fallback); got != tt.want {
				t.Errorf("orFallback() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
