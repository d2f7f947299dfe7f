package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/viper"

	"github.com/imtaco/live-viewer/internal/log"
)

type Retry interface {
	Do(ctx context.Context, operation func() error) error
}

type Config struct {
	InitialInterval time.Duration `mapstructure:"initial_interval"`
	MaxInterval     time.Duration `mapstructure:"max_interval"`
	MaxElapsedTime  time.Duration `mapstructure:"max_elapsed_time"`
}

func Setup(v *viper.Viper, prefix string) {
	p := func(key string) string { return prefix + "." + key }

	v.SetDefault(p("initial_interval"), "200ms")
	v.SetDefault(p("max_interval"), "2s")
	v.SetDefault(p("max_elapsed_time"), "10s")
}

func New(logger *log.Logger, initialInterval, maxInterval, maxElapsedTime time.Duration) Retry {
	return &retryImpl{
		logger:          logger,
		initialInterval: initialInterval,
		maxInterval:     maxInterval,
		maxElapsedTime:  maxElapsedTime,
	}
}

func NewFromConfig(logger *log.Logger, cfg *Config) Retry {
	return New(logger, cfg.InitialInterval, cfg.MaxInterval, cfg.MaxElapsedTime)
}

// Permanent marks err as not worth retrying; Do returns it unwrapped.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return backoff.Permanent(err)
}

type retryImpl struct {
	logger          *log.Logger
	initialInterval time.Duration
	maxInterval     time.Duration
	maxElapsedTime  time.Duration
}

func (r *retryImpl) Do(ctx context.Context, operation func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initialInterval
	b.MaxInterval = r.maxInterval
	b.MaxElapsedTime = r.maxElapsedTime

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := operation()
		if err != nil {
			r.logger.Warn("Retry attempt failed",
				log.Int("attempt", attempt),
				log.Error(err))
		}
		return err
	}, backoff.WithContext(b, ctx))
}
