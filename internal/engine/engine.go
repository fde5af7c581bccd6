// Package engine implements search and knowledge-graph analytics over a
// read-only publication corpus.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bioatlas/internal/util"

	"github.com/panjf2000/ants/v2"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
	// DefaultWorkers bounds concurrent insight rule evaluation.
	DefaultWorkers = 4
	// DefaultMinRelevance is the keyword search threshold adapters apply
	// when the caller gives none. SearchByKeywords itself has no default.
	DefaultMinRelevance = 0.5
)

// Engine is stateless between calls and safe for concurrent use.
type Engine struct {
	store    Store
	logger   *slog.Logger
	pool     *ants.Pool
	workers  int
	now      func() time.Time
	defLimit int
	maxLimit int
	th       Thresholds
	rules    []Rule
}

type Option func(*Engine) error

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) error {
		if l == nil {
			return errors.New("logger cannot be nil")
		}
		e.logger = l
		return nil
	}
}

// WithLimits sets the limit used when a caller passes zero and the clamp
// applied to larger requests.
func WithLimits(def, ceiling int) Option {
	return func(e *Engine) error {
		if def <= 0 || ceiling <= 0 || def > ceiling {
			return fmt.Errorf("invalid limits default=%d max=%d", def, ceiling)
		}
		e.defLimit, e.maxLimit = def, ceiling
		return nil
	}
}

func WithThresholds(t Thresholds) Option {
	return func(e *Engine) error {
		e.th = t
		return nil
	}
}

func WithWorkers(n int) Option {
	return func(e *Engine) error {
		if n <= 0 {
			return fmt.Errorf("worker count must be positive, got %d", n)
		}
		e.workers = n
		return nil
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) error {
		if now == nil {
			return errors.New("clock cannot be nil")
		}
		e.now = now
		return nil
	}
}

// WithRules replaces the insight rule registry.
func WithRules(rules ...Rule) Option {
	return func(e *Engine) error {
		e.rules = rules
		return nil
	}
}

func New(store Store, opts ...Option) (*Engine, error) {
	if store == nil {
		return nil, errors.New("store cannot be nil")
	}
	e := &Engine{
		store:    store,
		logger:   slog.Default(),
		workers:  DefaultWorkers,
		now:      time.Now,
		defLimit: DefaultLimit,
		maxLimit: MaxLimit,
		th:       DefaultThresholds(),
		rules:    DefaultRules(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("apply engine option: %w", err)
		}
	}
	pool, err := ants.NewPool(e.workers)
	if err != nil {
		return nil, fmt.Errorf("create insight pool: %w", err)
	}
	e.pool = pool
	return e, nil
}

// Close releases the insight worker pool.
func (e *Engine) Close() {
	if e != nil && e.pool != nil {
		e.pool.Release()
	}
}

func (e *Engine) Thresholds() Thresholds { return e.th }

// resultLimit maps zero to the default and clamps to the maximum.
func (e *Engine) resultLimit(n int) (int, error) {
	return sized(n, e.defLimit, e.maxLimit)
}

func sized(n, def, ceiling int) (int, error) {
	switch {
	case n < 0:
		return 0, invalidf("limit must not be negative, got %d", n)
	case n == 0:
		n = def
	}
	if ceiling > 0 && n > ceiling {
		n = ceiling
	}
	return n, nil
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", util.ErrInvalidArgument, fmt.Sprintf(format, args...))
}
