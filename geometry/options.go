// SPDX-License-Identifier: MIT
// Package: splex/geometry
//
// options.go — functional options for Rips construction.

package geometry

import (
	"io"

	"github.com/charmbracelet/log"
)

// Option configures Rips and RipsFiltration.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger routes construction progress to l at debug level.
// A nil logger keeps the default, which discards everything.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func resolve(opts []Option) options {
	o := options{logger: log.NewWithOptions(io.Discard, log.Options{})}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
