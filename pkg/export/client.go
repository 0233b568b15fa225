package export

import (
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pumlex/pumlex/pkg/errors"
)

const (
	// httpTimeout bounds one full render round-trip. Complex diagrams can
	// take a while on the public server, so this is deliberately generous.
	httpTimeout = 60 * time.Second

	// proxyEnv names the environment variable holding an optional HTTP proxy
	// URL. It is read once at client construction, never per request.
	proxyEnv = "http_proxy"
)

// NewClient builds the HTTP client shared by all concurrent export tasks.
// The client pools connections internally and is safe for concurrent use, so
// callers pass the same instance to every task instead of reconstructing it.
//
// If proxyEnv is set and non-empty, all requests are routed through it. A
// malformed proxy URL is a configuration error fatal to the whole run: no
// per-file export can proceed without a client.
func NewClient(logger *log.Logger) (*http.Client, error) {
	proxy := os.Getenv(proxyEnv)
	if proxy == "" {
		return &http.Client{Timeout: httpTimeout}, nil
	}

	u, err := url.Parse(proxy)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeClientConfig, err, "invalid %s %q", proxyEnv, proxy)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.New(errors.ErrCodeClientConfig, "invalid %s %q: missing scheme or host", proxyEnv, proxy)
	}

	logger.Debugf("Routing requests through proxy %s", proxy)
	return &http.Client{
		Timeout:   httpTimeout,
		Transport: &http.Transport{Proxy: http.ProxyURL(u)},
	}, nil
}
