// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber

import "log/slog"

// Option configures a [Scheduler].
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger makes the scheduler report thread completion on l at
// [slog.LevelDebug]. A nil l disables logging, which is the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
