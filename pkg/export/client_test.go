package export

import (
	"io"
	"net/http"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/pumlex/pumlex/pkg/errors"
)

func TestNewClientNoProxy(t *testing.T) {
	t.Setenv("http_proxy", "")

	client, err := NewClient(log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}
	if client.Timeout != httpTimeout {
		t.Errorf("Timeout = %v, want %v", client.Timeout, httpTimeout)
	}
	// No proxy configured: requests go out on the default transport.
	if client.Transport != nil {
		t.Errorf("Transport = %v, want nil", client.Transport)
	}
}

func TestNewClientWithProxy(t *testing.T) {
	t.Setenv("http_proxy", "http://proxy.local:3128")

	client, err := NewClient(log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}

	transport, ok := client.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("Transport is %T, want *http.Transport", client.Transport)
	}
	if transport.Proxy == nil {
		t.Fatal("Transport.Proxy is nil, want proxy function")
	}

	req, _ := http.NewRequest(http.MethodGet, "http://example.test/plantuml/svg/x", nil)
	u, err := transport.Proxy(req)
	if err != nil {
		t.Fatalf("Proxy() error: %v", err)
	}
	if u == nil || u.Host != "proxy.local:3128" {
		t.Errorf("Proxy() = %v, want host proxy.local:3128", u)
	}
}

func TestNewClientMalformedProxy(t *testing.T) {
	tests := []struct {
		name  string
		proxy string
	}{
		{"unparsable", "http://[::1"},
		{"opaque without host", "proxy.local:3128:extra"},
		{"no host", "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("http_proxy", tt.proxy)

			_, err := NewClient(log.New(io.Discard))
			if err == nil {
				t.Fatalf("NewClient() with proxy %q expected error, got nil", tt.proxy)
			}
			if !errors.Is(err, errors.ErrCodeClientConfig) {
				t.Errorf("NewClient() error code = %v, want %v", errors.GetCode(err), errors.ErrCodeClientConfig)
			}
		})
	}
}
