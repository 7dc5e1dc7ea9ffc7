package status

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"backend-doctor/core/report"

	"go.uber.org/zap"
)

const (
	// HealthPath is the backend's health endpoint.
	HealthPath = "/health"
	// AdminPath is the root of the admin UI.
	AdminPath = "/app"
	// DefaultTimeout bounds each request.
	DefaultTimeout = 5 * time.Second
)

var (
	// ErrConnectionRefused means nothing is listening on the probed port.
	ErrConnectionRefused = errors.New("connection refused")
	// ErrTimeout means the request was aborted after the timeout.
	ErrTimeout = errors.New("server request timed out")
)

// Checker probes a running backend over HTTP.
type Checker struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
	logger  *zap.Logger
}

// NewChecker creates a checker for the backend at baseURL.
func NewChecker(baseURL string, timeout time.Duration, logger *zap.Logger) *Checker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Checker{
		client: &http.Client{
			// A 302 from the admin route counts as reachable, so it must not be followed
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		logger:  logger,
	}
}

// BaseURL builds the backend URL from host and port.
func BaseURL(host, port string) string {
	return "http://" + net.JoinHostPort(host, port)
}

// Run probes the health endpoint, then the admin route. Any network error or timeout
// aborts the run and is returned; unexpected status codes are only warnings.
func (c *Checker) Run(ctx context.Context) (*report.Report, error) {
	rec := report.NewRecorder("status", c.logger)

	c.logger.Info("=== SERVER STATUS CHECK ===")
	defer c.logger.Info("=== SERVER STATUS CHECK END ===")

	c.logger.Info("Checking if server is running", zap.String("url", c.baseURL))

	code, err := c.get(ctx, HealthPath)
	if err != nil {
		err = c.healthFailed(rec, err)
		rec.Fail(err)
		return rec.Finish(), err
	}

	if code == http.StatusOK {
		rec.Info("health", "Server is responding correctly", zap.Int("status", code))
	} else {
		rec.Warn("health", fmt.Sprintf("Server responded with unexpected status: %d", code), zap.Int("status", code))
	}

	code, err = c.get(ctx, AdminPath)
	if err != nil {
		rec.Error("admin", "Error checking admin route", zap.Error(err))
		err = fmt.Errorf("admin route check failed: %w", err)
		rec.Fail(err)
		return rec.Finish(), err
	}

	if code == http.StatusOK || code == http.StatusFound {
		rec.Info("admin", "Admin route is accessible", zap.Int("status", code))
	} else {
		rec.Warn("admin", fmt.Sprintf("Admin route responded with status: %d", code), zap.Int("status", code))
	}

	return rec.Finish(), nil
}

func (c *Checker) healthFailed(rec *report.Recorder, err error) error {
	switch {
	case errors.Is(err, ErrTimeout):
		rec.Error("health", "Server request timed out", zap.Duration("timeout", c.timeout))
	case errors.Is(err, ErrConnectionRefused):
		rec.Error("health", "Server is not responding: connection refused. "+
			"The server may have failed to start, be listening on a different port, or have crashed during startup",
			zap.Error(err))
	default:
		rec.Error("health", "Server is not responding", zap.Error(err))
	}
	return fmt.Errorf("health check failed: %w", err)
}

// get issues one GET bounded by the checker timeout and returns the status code.
func (c *Checker) get(ctx context.Context, path string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, classify(ctx, err)
	}
	defer resp.Body.Close()

	if _, err := io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20)); err != nil {
		return 0, classify(ctx, err)
	}
	return resp.StatusCode, nil
}

func classify(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return fmt.Errorf("%w: %v", ErrConnectionRefused, err)
	}
	return err
}
