// Package httptransport implements the contacts Transport over net/http.
package httptransport

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/rs/zerolog"

	"github.com/giopellizzoni/contacts"
)

// Transport performs GET requests on behalf of a contacts loader.
// Each Get runs on its own goroutine and completes exactly once.
type Transport struct {
	client  *http.Client
	headers http.Header
	logger  zerolog.Logger
}

// Option allows configuring a Transport.
type Option func(*Transport)

// WithClient sets a custom HTTP client.
func WithClient(client *http.Client) Option {
	return func(t *Transport) { t.client = client }
}

// WithConfig builds the HTTP client from cfg.
func WithConfig(cfg Config) Option {
	return func(t *Transport) { t.client = NewClient(cfg) }
}

// WithHeader sets a header sent with every request, replacing any default value for the same key.
func WithHeader(key, value string) Option {
	return func(t *Transport) { t.headers.Set(key, value) }
}

// WithLogger attaches a zerolog logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Transport) { t.logger = logger }
}

// New builds a Transport with a default client.
func New(opts ...Option) *Transport {
	t := &Transport{
		headers: http.Header{},
		logger:  zerolog.Nop(),
	}

	t.headers.Set("Accept", "application/json")
	t.headers.Set("Accept-Encoding", "br, gzip")

	for _, opt := range opts {
		opt(t)
	}

	if t.client == nil {
		t.client = NewClient(DefaultConfig())
	}

	return t
}

var _ contacts.Transport = (*Transport)(nil)

// Get issues the request asynchronously. Any status is reported as transmitted; only failures to
// build, send or read the request are reported as transport failures.
func (t *Transport) Get(ctx context.Context, rawURL string, complete func(contacts.Outcome)) {
	go func() {
		complete(t.do(ctx, rawURL))
	}()
}

func (t *Transport) do(ctx context.Context, rawURL string) contacts.Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return contacts.TransportFailed(fmt.Errorf("build request: %w", err))
	}

	for k, values := range t.headers {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}

	resp, err := t.client.Do(req)
	if err != nil {
		t.logger.Debug().Err(err).Str("url", rawURL).Msg("http.get")
		return contacts.TransportFailed(err)
	}

	body, err := readBody(resp)
	if err != nil {
		t.logger.Debug().Err(err).Str("url", rawURL).Int("status", resp.StatusCode).Msg("http.get")
		return contacts.TransportFailed(fmt.Errorf("read body: %w", err))
	}

	t.logger.Debug().Str("url", rawURL).Int("status", resp.StatusCode).Int("bytes", len(body)).Msg("http.get")

	return contacts.Transmitted(body, resp.StatusCode)
}

// readBody always drains and closes the body so the underlying connection can be reused.
// Setting Accept-Encoding by hand disables net/http's transparent gzip, so both encodings are handled here.
func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	var r io.Reader = resp.Body

	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "br":
		r = brotli.NewReader(resp.Body)
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}

	return io.ReadAll(r)
}

// Endpoint resolves path against base the way relative URLs are resolved by a browser,
// so "https://host/api/" + "employee_list" yields "https://host/api/employee_list".
func Endpoint(base, path string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}

	p, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse path: %w", err)
	}

	return b.ResolveReference(p).String(), nil
}
