package export

import (
	"testing"

	"github.com/pumlex/pumlex/pkg/errors"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
		want   string
	}{
		{"replaces extension", "/a/b/diagram.puml", FormatPNG, "/a/b/diagram.png"},
		{"adds extension", "/a/b/diagram", FormatSVG, "/a/b/diagram.svg"},
		{"no parent directory", "diagram.puml", FormatSVG, "diagram.svg"},
		{"relative parent", "docs/diagram.puml", FormatASCII, "docs/diagram.txt"},
		{"multiple dots", "/a/b/my.diagram.puml", FormatSVG, "/a/b/my.diagram.svg"},
		{"same extension", "/a/b/diagram.svg", FormatSVG, "/a/b/diagram.svg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OutputPath(tt.input, tt.format)
			if err != nil {
				t.Fatalf("OutputPath(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("OutputPath(%q, %v) = %q, want %q", tt.input, tt.format, got, tt.want)
			}
		})
	}
}

func TestOutputPathErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty path", ""},
		{"extension only", ".puml"},
		{"extension only with parent", "/a/b/.puml"},
		{"root", "/"},
		{"current directory", "."},
		{"invalid utf8", "/a/b/diagr\xff\xfem.puml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OutputPath(tt.input, FormatSVG)
			if err == nil {
				t.Fatalf("OutputPath(%q) expected error, got nil", tt.input)
			}
			if !errors.Is(err, errors.ErrCodePath) {
				t.Errorf("OutputPath(%q) error code = %v, want %v", tt.input, errors.GetCode(err), errors.ErrCodePath)
			}
		})
	}
}
