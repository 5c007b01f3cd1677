package health

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Pinger is a dependency whose reachability can be probed.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SchemaInspector reports which of the expected collections are missing.
type SchemaInspector interface {
	MissingCollections(ctx context.Context) ([]string, error)
}

type CheckResult struct {
	Name     string `json:"name"`
	Status   Status `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Duration string `json:"duration"`
}

// Report is the body of /health/ready.
type Report struct {
	Status  Status        `json:"status"`
	Version string        `json:"version,omitempty"`
	Uptime  string        `json:"uptime"`
	Checks  []CheckResult `json:"checks"`
}

func (r *Report) Ready() bool { return r.Status == StatusUp }

type check struct {
	name string
	run  func(ctx context.Context) error
}

// Service runs the readiness checks of the dashboard.
type Service struct {
	started time.Time
	version string
	timeout time.Duration
	checks  []check
	log     *zap.Logger
}

type Option func(*Service)

// WithPinger adds a reachability check, e.g. for the NATS connection.
func WithPinger(name string, p Pinger) Option {
	return func(s *Service) {
		s.checks = append(s.checks, check{name: name, run: p.Ping})
	}
}

// WithSchema fails readiness until the clinic collections exist.
func WithSchema(inspector SchemaInspector) Option {
	return func(s *Service) {
		s.checks = append(s.checks, check{name: "schema", run: func(ctx context.Context) error {
			missing, err := inspector.MissingCollections(ctx)
			if err != nil {
				return err
			}
			if len(missing) > 0 {
				return fmt.Errorf("missing collections: %s", strings.Join(missing, ", "))
			}
			return nil
		}})
	}
}

// WithTimeout bounds each check. The default is 3s.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// NewService checks db as "mongodb" plus whatever the options add.
func NewService(version string, db Pinger, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		started: time.Now(),
		version: version,
		timeout: 3 * time.Second,
		log:     log,
	}
	if db != nil {
		s.checks = append(s.checks, check{name: "mongodb", run: db.Ping})
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ready runs all checks concurrently. Checks are sorted by name in the report.
func (s *Service) Ready(ctx context.Context) *Report {
	results := make([]CheckResult, len(s.checks))

	var g errgroup.Group
	for i, c := range s.checks {
		i, c := i, c
		g.Go(func() error {
			results[i] = s.run(ctx, c)
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })

	report := &Report{
		Status:  StatusUp,
		Version: s.version,
		Uptime:  time.Since(s.started).Round(time.Second).String(),
		Checks:  results,
	}
	for _, r := range results {
		if r.Status != StatusUp {
			report.Status = StatusDown
			break
		}
	}
	return report
}

func (s *Service) run(ctx context.Context, c check) CheckResult {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	err := c.run(ctx)
	result := CheckResult{
		Name:     c.name,
		Status:   StatusUp,
		Duration: time.Since(start).Round(time.Millisecond).String(),
	}
	if err != nil {
		result.Status = StatusDown
		result.Detail = err.Error()
		if errors.Is(err, context.DeadlineExceeded) {
			result.Detail = "timed out after " + s.timeout.String()
		}
		s.log.Warn("Readiness check failed", zap.String("check", c.name), zap.Error(err))
	}
	return result
}
