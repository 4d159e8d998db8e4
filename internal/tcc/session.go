// Package tcc is a client for the Honeywell Total Connect Comfort (international) web portal.
//
// The portal has no public API. The calls used here are the ones the portal's own web pages make:
// authentication happens through a login call that sets session cookies, which are then sent with
// every subsequent request. A Session therefore owns its own cookie jar and must be used for the
// lifetime of the login.
package tcc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/clambin/go-common/http/metrics"
	"golang.org/x/net/publicsuffix"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"time"
)

const (
	// ServerURL is the portal's base URL.
	ServerURL = "https://international.mytotalconnectcomfort.com"

	// DefaultUserAgent mimics a browser. The portal rejects requests that don't look like they come from its web pages.
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

	// DefaultTimeout bounds each call to the portal.
	DefaultTimeout = 10 * time.Second

	loginPath     = "/api/accountApi/login"
	locationsPath = "/api/locationsapi/getlocations"
	setZonePath   = "/api/ZonesApi/SetZoneTemperature"
)

// HTTPError is returned when the portal responds with a non-2xx status code.
type HTTPError struct {
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	if e.Status != "" {
		return e.Status
	}
	return http.StatusText(e.StatusCode)
}

// A Session holds the authenticated state of one login to the portal.
type Session struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*sessionOptions)

type sessionOptions struct {
	baseURL      string
	userAgent    string
	timeout      time.Duration
	roundTripper http.RoundTripper
	metrics      metrics.RequestMetrics
	logger       *slog.Logger
}

// WithBaseURL overrides the portal's URL.
func WithBaseURL(url string) Option {
	return func(o *sessionOptions) { o.baseURL = url }
}

// WithUserAgent overrides the User-Agent header sent with each request.
func WithUserAgent(userAgent string) Option {
	return func(o *sessionOptions) { o.userAgent = userAgent }
}

// WithTimeout sets the timeout for each call. Zero disables the timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *sessionOptions) { o.timeout = timeout }
}

// WithRoundTripper sets the http.RoundTripper used to perform the calls.
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(o *sessionOptions) { o.roundTripper = rt }
}

// WithRequestMetrics records the latency and outcome of each call.
func WithRequestMetrics(m metrics.RequestMetrics) Option {
	return func(o *sessionOptions) { o.metrics = m }
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *sessionOptions) { o.logger = logger }
}

// NewSession returns a Session that is not yet logged in.
func NewSession(options ...Option) (*Session, error) {
	opts := sessionOptions{
		baseURL:      ServerURL,
		userAgent:    DefaultUserAgent,
		timeout:      DefaultTimeout,
		roundTripper: http.DefaultTransport,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, o := range options {
		o(&opts)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("cookiejar: %w", err)
	}

	return &Session{
		baseURL:   opts.baseURL,
		userAgent: opts.userAgent,
		httpClient: &http.Client{
			Transport: instrumentedRoundTripper(opts.roundTripper, opts.metrics),
			Jar:       jar,
			Timeout:   opts.timeout,
		},
		logger: opts.logger,
	}, nil
}

// Login authenticates with the portal. On success, the session cookies are stored in the Session.
func (s *Session) Login(ctx context.Context, credentials Credentials) error {
	s.logger.Debug("logging in", "credentials", credentials)
	resp, err := s.call(ctx, http.MethodPost, loginPath, newLoginRequest(credentials))
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	// the body holds nothing we need, but drain it so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	s.logger.Debug("logged in", "status", resp.Status)
	return nil
}

// GetLocations returns all locations (and their zones) of the logged-in user.
func (s *Session) GetLocations(ctx context.Context) (LocationsResponse, error) {
	var locations LocationsResponse
	resp, err := s.call(ctx, http.MethodGet, locationsPath, nil)
	if err != nil {
		return locations, fmt.Errorf("getlocations: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return locations, fmt.Errorf("getlocations: read: %w", err)
	}
	s.logger.Debug("locations received", "body", string(body))
	if err = json.Unmarshal(body, &locations); err != nil {
		return locations, fmt.Errorf("getlocations: decode: %w", err)
	}
	return locations, nil
}

// SetZoneTemperature sends a new heat setpoint for a zone. Each call creates a new override on the portal.
func (s *Session) SetZoneTemperature(ctx context.Context, request ZoneTemperature) error {
	resp, err := s.call(ctx, http.MethodPost, setZonePath, request)
	if err != nil {
		return fmt.Errorf("setzonetemperature: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// call performs the request. Any non-2xx response is returned as an *HTTPError.
func (s *Session) call(ctx context.Context, method string, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, fmt.Errorf("encode: %w", err)
		}
		reqBody = &buf
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "*/*")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("call done", "method", method, "path", path, "status", resp.StatusCode)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		return nil, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return resp, nil
}
