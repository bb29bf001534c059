package extractor

import (
	"net/http"
	"testing"
)

func TestForSource(t *testing.T) {
	plaintext := NewPlaintextScanner()

	tests := []struct {
		name        string
		source      string
		contentType string
		want        string
	}{
		{
			name:   "html extension",
			source: "/site/index.html",
			want:   "html",
		},
		{
			name:   "htm extension",
			source: "/site/index.htm",
			want:   "html",
		},
		{
			name:   "uppercase extension",
			source: "/site/INDEX.HTML",
			want:   "html",
		},
		{
			name:   "markdown falls back to plaintext",
			source: "/site/readme.md",
			want:   "plaintext",
		},
		{
			name:   "no extension",
			source: "stdin",
			want:   "plaintext",
		},
		{
			name:        "content type wins over extension",
			source:      "https://example.com/page.txt",
			contentType: "text/html; charset=utf-8",
			want:        "html",
		},
		{
			name:        "plain content type",
			source:      "https://example.com/page.html",
			contentType: "text/plain",
			want:        "plaintext",
		},
		{
			name:   "missing content type falls back to extension",
			source: "https://example.com/page.html",
			want:   "html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var header http.Header
			if tt.contentType != "" {
				header = http.Header{"Content-Type": []string{tt.contentType}}
			}

			got := ForSource(tt.source, header, plaintext)
			if got.Name() != tt.want {
				t.Errorf("ForSource(%q, %q) = %s, want %s", tt.source, tt.contentType, got.Name(), tt.want)
			}
		})
	}
}
