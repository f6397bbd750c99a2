/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package grpcx

import (
	"errors"
	"log/slog"

	"dirpx.dev/dstatus/derive"
	"github.com/prometheus/client_golang/prometheus"
)

// Option configures an interceptor.
type Option func(*config)

type config struct {
	logger  *slog.Logger
	deriver *derive.Deriver
	reg     prometheus.Registerer
}

// WithLogger sets the logger used for translator panics and trailer
// failures. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDeriver sets how tentative statuses are derived. The default is
// derive.New().
func WithDeriver(d *derive.Deriver) Option {
	return func(c *config) {
		if d != nil {
			c.deriver = d
		}
	}
}

// WithRegisterer enables the dstatus_translated_failures_total counter on
// reg. Interceptors sharing a registerer share the counter.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *config) { c.reg = reg }
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.deriver == nil {
		c.deriver = derive.New()
	}
	return c
}

// failuresCounter registers the translated-failures counter on reg, reusing
// the one already there.
func failuresCounter(reg prometheus.Registerer) *prometheus.CounterVec {
	if reg == nil {
		return nil
	}
	cv := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dstatus",
			Name:      "translated_failures_total",
			Help:      "Total number of failed calls by method and final gRPC code.",
		},
		[]string{"method", "code"},
	)
	if err := reg.Register(cv); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
		panic(err)
	}
	return cv
}
