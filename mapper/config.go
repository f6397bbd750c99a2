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

package mapper

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"dirpx.dev/dstatus/code"
	"google.golang.org/grpc/codes"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every error reported while reading a Config.
var ErrInvalidConfig = errors.New("mapper: invalid config")

// Config is the file form of a code table:
//
//	fallback: INTERNAL
//	defaults:
//	  gone: NOT_FOUND
//	overrides:
//	  canceled: UNAVAILABLE
//	prefixes:
//	  - code: quota_exceeded
//	    prefix: billing.quota
//	    grpc: FAILED_PRECONDITION
//
// gRPC codes are written by name, as in the gRPC documentation.
type Config struct {
	Fallback  string            `yaml:"fallback,omitempty"`
	Defaults  map[string]string `yaml:"defaults,omitempty"`
	Overrides map[string]string `yaml:"overrides,omitempty"`
	Prefixes  []PrefixConfig    `yaml:"prefixes,omitempty"`
}

// PrefixConfig is one reason-prefix rule of a Config.
type PrefixConfig struct {
	Code   string `yaml:"code"`
	Prefix string `yaml:"prefix"`
	GRPC   string `yaml:"grpc"`
}

// LoadConfig decodes a YAML Config from r. Unknown fields are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// Options converts cfg into mapper options, validating every code.
// Prefixes are validated later, by New.
func (cfg Config) Options() ([]Option, error) {
	var opts []Option
	if cfg.Fallback != "" {
		gc, err := ParseCodeName(cfg.Fallback)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithFallback(gc))
	}
	for _, t := range []struct {
		rules map[string]string
		with  func(code.Code, codes.Code) Option
	}{
		{cfg.Defaults, WithDefault},
		{cfg.Overrides, WithOverride},
	} {
		for _, k := range slices.Sorted(maps.Keys(t.rules)) {
			c, gc, err := parseRule(k, t.rules[k])
			if err != nil {
				return nil, err
			}
			opts = append(opts, t.with(c, gc))
		}
	}
	for i, p := range cfg.Prefixes {
		c, gc, err := parseRule(p.Code, p.GRPC)
		if err != nil {
			return nil, fmt.Errorf("prefixes[%d]: %w", i, err)
		}
		opts = append(opts, WithPrefix(c, p.Prefix, gc))
	}
	return opts, nil
}

func parseRule(c, gc string) (code.Code, codes.Code, error) {
	dc, err := code.Parse(c)
	if err != nil {
		return "", 0, fmt.Errorf("%w: code %q: %w", ErrInvalidConfig, c, err)
	}
	g, err := ParseCodeName(gc)
	if err != nil {
		return "", 0, err
	}
	return dc, g, nil
}

// ParseCodeName parses a gRPC code written by name ("FAILED_PRECONDITION")
// or by number ("9").
func ParseCodeName(s string) (codes.Code, error) {
	var gc codes.Code
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		if n > uint64(codes.Unauthenticated) {
			return 0, fmt.Errorf("%w: grpc code %s out of range", ErrInvalidConfig, s)
		}
		return codes.Code(n), nil
	}
	if err := gc.UnmarshalJSON([]byte(strconv.Quote(s))); err != nil {
		return 0, fmt.Errorf("%w: grpc code %q: %w", ErrInvalidConfig, s, err)
	}
	return gc, nil
}

// Defaults returns a copy of the built-in table.
func Defaults() map[code.Code]codes.Code {
	return maps.Clone(defaultCodes)
}
