package cache

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Option configures a cache at construction.
type Option func(*meta)

// WithLogger makes the cache report computations to logger at debug level
// and failed computations at warn level.
func WithLogger(logger *zap.Logger) Option {
	return func(m *meta) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithID overrides the generated cache id reported in log fields.
func WithID(id string) Option {
	return func(m *meta) {
		m.id = id
	}
}

type meta struct {
	id     string
	logger *zap.Logger
}

func newMeta(kind string, opts []Option) meta {
	m := meta{
		id:     uuid.New().String(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.logger = m.logger.With(zap.String("cache_id", m.id), zap.String("cache_kind", kind))
	return m
}

// ID returns the id the cache reports in its log fields.
func (m meta) ID() string {
	return m.id
}

func (m meta) computed(fields ...zap.Field) {
	m.logger.Debug("computed cached value", fields...)
}

func (m meta) failed(err error, fields ...zap.Field) {
	m.logger.Warn("cached computation failed", append(fields, zap.Error(err))...)
}

// panicked logs a computation that panicked and lets the panic continue.
// It must be deferred directly.
func (m meta) panicked(fields ...zap.Field) {
	if r := recover(); r != nil {
		m.failed(ErrComputationPanicked, append(fields, zap.Any("panic", r))...)
		panic(r)
	}
}
