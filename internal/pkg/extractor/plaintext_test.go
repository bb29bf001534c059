package extractor

import (
	"strings"
	"testing"

	"github.com/linkrot/linkrot/pkg/models"
)

func TestPlaintextExtract(t *testing.T) {
	scanner := NewPlaintextScanner()

	tests := []struct {
		name string
		body string
		want []*models.RawLink
	}{
		{
			name: "single URL with position",
			body: "see https://example.com/page for details",
			want: []*models.RawLink{
				models.NewRawLink("https://example.com/page", 1, 5),
			},
		},
		{
			name: "multiple lines",
			body: "first: https://a.com\nnothing here\nthen http://b.org/x",
			want: []*models.RawLink{
				models.NewRawLink("https://a.com", 1, 8),
				models.NewRawLink("http://b.org/x", 3, 6),
			},
		},
		{
			name: "two URLs on one line",
			body: "https://a.com and https://b.com",
			want: []*models.RawLink{
				models.NewRawLink("https://a.com", 1, 1),
				models.NewRawLink("https://b.com", 1, 19),
			},
		},
		{
			name: "relative links not matched",
			body: "see ../sibling.html or /rooted/page.html",
			want: nil,
		},
		{
			name: "empty input",
			body: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scanner.Extract(strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("Extract() returned %d links, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].Text != tt.want[i].Text || got[i].Line != tt.want[i].Line || got[i].Column != tt.want[i].Column {
					t.Errorf("Extract()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}
