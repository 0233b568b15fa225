package export

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/pumlex/pumlex/pkg/errors"
	"github.com/pumlex/pumlex/pkg/plantuml"
)

// Exporter renders PlantUML source files through a remote rendering server.
//
// One Exporter is shared by all concurrent export tasks. It holds no mutable
// state; the embedded HTTP client manages its own connection pool and needs
// no external locking.
type Exporter struct {
	Client  *http.Client
	BaseURL string
	Format  Format
	Logger  *log.Logger
}

// Export runs the full pipeline for one input file: read, encode, fetch,
// write. It returns the path of the written output file. Each failure aborts
// only this file and carries its path in the error. A failed write may leave
// a truncated output file behind; no cleanup is attempted.
func (e *Exporter) Export(ctx context.Context, path string) (string, error) {
	e.Logger.Infof("Processing %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
	}
	if !utf8.Valid(data) {
		return "", errors.New(errors.ErrCodeIO, "read %s: not valid UTF-8", path)
	}

	token, err := plantuml.Encode(string(data))
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", path, err)
	}

	url := fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(e.BaseURL, "/"), e.Format, token)
	e.Logger.Debugf("GET %s", url)

	img, err := e.fetch(ctx, url)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", path, err)
	}

	outPath, err := OutputPath(path, e.Format)
	if err != nil {
		return "", fmt.Errorf("resolve output for %s: %w", path, err)
	}

	e.Logger.Infof("Writing %s", outPath)
	if err := os.WriteFile(outPath, img, 0o644); err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "write %s", outPath)
	}
	return outPath, nil
}

// fetch issues a single GET and returns the full response body. There is no
// retry: one file, one request.
func (e *Exporter) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "build request")
	}

	resp, err := e.Client.Do(req)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New(errors.ErrCodeNetwork, "server returned status %d", resp.StatusCode)
	}

	img, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "read response body")
	}
	return img, nil
}
