package export

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pumlex/pumlex/pkg/errors"
)

// OutputPath derives the output file path for input: same parent directory,
// same file stem, extension replaced by the format's segment string.
//
//	OutputPath("/a/b/diagram.puml", FormatPNG) == "/a/b/diagram.png"
//	OutputPath("/a/b/diagram", FormatSVG)      == "/a/b/diagram.svg"
//
// Inputs without a file name or without an extractable stem (e.g. ".puml")
// are rejected; such a failure aborts only that file's export.
func OutputPath(input string, f Format) (string, error) {
	if !utf8.ValidString(input) {
		return "", errors.New(errors.ErrCodePath, "input path is not valid UTF-8")
	}

	base := filepath.Base(input)
	if base == "." || base == string(filepath.Separator) {
		return "", errors.New(errors.ErrCodePath, "no file name in input path %q", input)
	}

	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return "", errors.New(errors.ErrCodePath, "no file stem in input path %q", input)
	}

	return filepath.Join(filepath.Dir(input), stem+"."+f.String()), nil
}
