package minerstat_common

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// Request statuses reported to IHttpStatusHandler
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusTimeout = "timeout"
)

// IHttpStatusHandler is notified about the outcome of every request
type IHttpStatusHandler interface {
	// OnRequest handles a request with its status result and duration
	OnRequest(status string, duration time.Duration)
}

// TransportOptions configures the GET executor
type TransportOptions struct {
	ConnectTimeout time.Duration // Timeout for establishing connection
	ReadTimeout    time.Duration // Timeout for waiting on the response
	LogPrefix      string
}

// DefaultTransportOptions returns the fixed upstream timeouts
func DefaultTransportOptions() TransportOptions {
	return TransportOptions{
		ConnectTimeout: 10 * time.Second,
		ReadTimeout:    10 * time.Second,
		LogPrefix:      "Minerstat",
	}
}

// HTTPClient performs single-attempt GET requests against minerstat
type HTTPClient struct {
	client        *resty.Client
	opts          TransportOptions
	statusHandler IHttpStatusHandler
	logger        *logrus.Logger
}

// NewHTTPClient creates a client with one fresh connection per request.
// handler may be nil.
func NewHTTPClient(opts TransportOptions, handler IHttpStatusHandler, logger *logrus.Logger) *HTTPClient {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectTimeout,
		}).DialContext,
		TLSHandshakeTimeout:   opts.ConnectTimeout,
		ResponseHeaderTimeout: opts.ReadTimeout,
		DisableKeepAlives:     true,
	}

	client := resty.New().
		SetTransport(transport).
		SetTimeout(opts.ConnectTimeout+opts.ReadTimeout).
		SetLogger(logger).
		SetHeader("Content-Type", ContentTypeForm).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent)

	return &HTTPClient{
		client:        client,
		opts:          opts,
		statusHandler: handler,
		logger:        logger,
	}
}

// Get fetches rawURL and returns the body as text, every line terminated
// by "\n". rawURL must contain a query string.
func (c *HTTPClient) Get(ctx context.Context, rawURL string) (string, error) {
	if !strings.Contains(rawURL, "?") {
		return "", NewError(KindTransport, "get", fmt.Errorf("url %q has no query string", rawURL))
	}

	start := time.Now()
	resp, err := c.client.R().SetContext(ctx).Get(rawURL)
	duration := time.Since(start)

	if err != nil {
		status := StatusError
		if isTimeout(err) {
			status = StatusTimeout
		}
		c.report(status, duration)
		c.logger.WithError(err).WithField("url", rawURL).Errorf("%s: request failed after %.2fs", c.opts.LogPrefix, duration.Seconds())
		return "", NewError(KindTransport, "get", fmt.Errorf("request failed after %.2fs: %w", duration.Seconds(), err))
	}

	if !resp.IsSuccess() {
		c.report(StatusError, duration)
		c.logger.WithFields(logrus.Fields{
			"url":    rawURL,
			"status": resp.StatusCode(),
		}).Errorf("%s: unexpected response status", c.opts.LogPrefix)
		return "", NewError(KindTransport, "get", fmt.Errorf("API request failed with status %d after %.2fs: %s",
			resp.StatusCode(), duration.Seconds(), resp.String()))
	}

	c.report(StatusSuccess, duration)
	c.logger.WithField("url", rawURL).Debugf("%s: fetched %d bytes in %.2fs", c.opts.LogPrefix, len(resp.Body()), duration.Seconds())

	return joinLines(resp.Body()), nil
}

// Post is not supported by the minerstat client and always fails without I/O
func (c *HTTPClient) Post(ctx context.Context, rawURL, data string) (string, error) {
	return "", NewError(KindNotImplemented, "post", ErrNotImplemented)
}

func (c *HTTPClient) report(status string, duration time.Duration) {
	if c.statusHandler != nil {
		c.statusHandler.OnRequest(status, duration)
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// joinLines normalises line endings and terminates every line with "\n"
func joinLines(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	text := strings.ReplaceAll(string(body), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	return text
}
