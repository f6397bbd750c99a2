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
	"maps"
	"strings"
	"unicode"

	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/code"
	"dirpx.dev/dstatus/mapper/internal/segmenttrie"
	"dirpx.dev/dstatus/reason"
	"google.golang.org/grpc/codes"
)

// ErrInvalidPrefix is returned by New when a prefix rule cannot be compiled.
var ErrInvalidPrefix = errors.New("mapper: invalid reason prefix")

// New builds an immutable apis.Mapper.
//
//  1. The builder is seeded with the library defaults.
//  2. Options are applied in order; later options win.
//  3. Prefix rules are normalized (reason.Normalize) and compiled into one
//     segment trie per code.
//  4. Everything is copied into a fresh snapshot; the mapper keeps no
//     reference to builder state.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	tries := make(map[code.Code]*segmenttrie.Trie[codes.Code], len(b.prefixes))
	for c, rules := range b.prefixes {
		if len(rules) == 0 {
			continue
		}
		t := segmenttrie.New[codes.Code]()
		for _, r := range rules {
			p := reason.Normalize(r.prefix)
			if err := t.Insert(p, r.val); err != nil {
				return nil, fmt.Errorf("%w: %q for code %q: %v", ErrInvalidPrefix, r.prefix, c, err)
			}
		}
		tries[c] = t
	}

	return &mapper{
		defaults:  maps.Clone(b.defaults),
		overrides: maps.Clone(b.overrides),
		tries:     tries,
		fallback:  b.fallback,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// mapper resolves in the order override, reason prefix, default, fallback.
// Lookups are O(reason depth) and safe for concurrent use.
type mapper struct {
	defaults  map[code.Code]codes.Code
	overrides map[code.Code]codes.Code
	tries     map[code.Code]*segmenttrie.Trie[codes.Code]
	fallback  codes.Code
}

// Code implements apis.Mapper.
func (m *mapper) Code(c code.Code, r reason.Reason) codes.Code {
	gc, _, _ := m.resolve(c, r)
	return gc
}

// Explain renders how (c, r) was resolved:
//
//	code="quota_exceeded" reason="billing.quota.storage"
//	source=prefix pattern="billing.quota" -> FAILED_PRECONDITION(9)
//
// source is one of override, prefix, default or fallback. The output is meant
// for humans and tests, not for parsing.
func (m *mapper) Explain(c code.Code, r reason.Reason) string {
	gc, src, pat := m.resolve(c, r)
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q reason=%q\n", c, r)
	_, _ = fmt.Fprintf(&b, "source=%s", src)
	if pat != "" {
		_, _ = fmt.Fprintf(&b, " pattern=%q", pat)
	}
	_, _ = fmt.Fprintf(&b, " -> %s(%d)", CodeName(gc), uint32(gc))
	return b.String()
}

func (m *mapper) resolve(c code.Code, r reason.Reason) (gc codes.Code, source, pattern string) {
	if v, ok := m.overrides[c]; ok {
		return v, "override", ""
	}
	if t := m.tries[c]; t != nil {
		if v, pat, ok := t.Match(string(r)); ok {
			return v, "prefix", pat
		}
	}
	if v, ok := m.defaults[c]; ok {
		return v, "default", ""
	}
	return m.fallback, "fallback", ""
}

// CodeName returns the canonical upper-snake name of a gRPC code, e.g.
// FAILED_PRECONDITION, as used in the gRPC protocol documentation.
func CodeName(gc codes.Code) string {
	s := gc.String()
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(rune(s[i-1])) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
