package script

import "github.com/inconshreveable/log15"

// Option is a runner configuration option.
type Option interface {
	apply(*runnerOptions)
}

type runnerOptions struct {
	logger     log15.Logger
	stopOnNone bool
}

func newDefaultRunnerOptions() runnerOptions {
	logger := log15.New()
	logger.SetHandler(log15.DiscardHandler())

	return runnerOptions{
		logger:     logger,
		stopOnNone: false,
	}
}

// WithLogger option configures the runner with a logger.
//
// The default discards all records.
func WithLogger(logger log15.Logger) Option {
	return funcOption(func(opts *runnerOptions) {
		if logger != nil {
			opts.logger = logger
		}
	})
}

// WithStopOnNone option makes the runner fail with ErrNoValue when a step
// finds no value, for example when popping an empty list.
func WithStopOnNone(stop bool) Option {
	return funcOption(func(opts *runnerOptions) {
		opts.stopOnNone = stop
	})
}

type funcOption func(*runnerOptions)

func (o funcOption) apply(opts *runnerOptions) {
	o(opts)
}
