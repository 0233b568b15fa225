package export

import (
	"testing"

	"github.com/pumlex/pumlex/pkg/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"svg", FormatSVG, false},
		{"SVG", FormatSVG, false},
		{"png", FormatPNG, false},
		{"PNG", FormatPNG, false},
		{"ascii", FormatASCII, false},
		{"ASCII", FormatASCII, false},
		{"txt", FormatASCII, false},
		{"TXT", FormatASCII, false},
		{"Svg", FormatSVG, false},

		{"xyz", 0, true},
		{"", 0, true},
		{"svg ", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidFormat) {
					t.Errorf("ParseFormat(%q) error code = %v, want %v", tt.input, errors.GetCode(err), errors.ErrCodeInvalidFormat)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatSVG, "svg"},
		{FormatPNG, "png"},
		{FormatASCII, "txt"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormatMappingIsBijective(t *testing.T) {
	formats := []Format{FormatSVG, FormatPNG, FormatASCII}

	seen := make(map[string]bool)
	for _, f := range formats {
		seg := f.String()
		if seen[seg] {
			t.Errorf("duplicate segment %q", seg)
		}
		seen[seg] = true

		// The segment string must parse back to the same format.
		parsed, err := ParseFormat(seg)
		if err != nil {
			t.Fatalf("ParseFormat(%q) error: %v", seg, err)
		}
		if parsed != f {
			t.Errorf("ParseFormat(%q) = %v, want %v", seg, parsed, f)
		}
	}
}
