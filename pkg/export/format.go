// Package export implements the PlantUML export pipeline: reading diagram
// source files, requesting rendered images from a PlantUML server, and
// writing the results next to the inputs.
package export

import (
	"strings"

	"github.com/pumlex/pumlex/pkg/errors"
)

// Format is the requested output type for a rendered diagram.
type Format int

// Supported output formats.
const (
	FormatSVG Format = iota
	FormatPNG
	FormatASCII
)

// String returns the server URL segment for the format. The same string is
// used as the output file extension, so the mapping must stay total and fixed.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatASCII:
		return "txt"
	default:
		return "svg"
	}
}

// ParseFormat parses a format name case-insensitively. Both "ascii" and
// "txt" name the ASCII art format, matching the extension it produces.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "ascii", "txt":
		return FormatASCII, nil
	case "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	default:
		return FormatSVG, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (must be 'ascii', 'txt', 'svg', or 'png')", s)
	}
}
