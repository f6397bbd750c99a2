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

package translate

import (
	"context"
	"errors"
	"fmt"

	"dirpx.dev/dstatus/apis"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var (
	// ErrNilTranslator is reported for a nil translator given to a Builder
	// or to OrElse.
	ErrNilTranslator = errors.New("translate: nil translator")

	// ErrNilFallback is reported when a Builder has no fallback.
	ErrNilFallback = errors.New("translate: nil fallback")
)

// Builder accumulates translators in evaluation order. It is not safe for
// concurrent use; the Pipelines it builds are.
type Builder struct {
	fallback Fallback
	links    []apis.Translator
}

// NewBuilder returns a builder whose pipelines end with fallback.
func NewBuilder(fallback Fallback) *Builder {
	return &Builder{fallback: fallback}
}

// Add registers ts after the translators already registered. Nil entries are
// accepted here and reported by Build.
func (b *Builder) Add(ts ...apis.Translator) *Builder {
	b.links = append(b.links, ts...)
	return b
}

// Build validates the registrations and returns an immutable Pipeline
// equivalent to OrElse over the registered translators, in order, followed by
// the fallback.
//
// Every nil registration is reported, wrapped around ErrNilTranslator with its
// zero-based index. The builder stays usable after Build; registering more
// translators does not affect pipelines built earlier.
func (b *Builder) Build() (*Pipeline, error) {
	var errs []error
	if isNil(b.fallback) {
		errs = append(errs, ErrNilFallback)
	}
	links := make([]apis.Translator, 0, len(b.links))
	for i, t := range b.links {
		if isNil(t) {
			errs = append(errs, fmt.Errorf("%w at index %d", ErrNilTranslator, i))
			continue
		}
		links = appendLinks(links, t)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &Pipeline{links: links, fallback: b.fallback}, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Pipeline {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}

// Pipeline is a built, immutable translation pipeline. It always answers.
type Pipeline struct {
	links    []apis.Translator
	fallback Fallback
}

var _ apis.Translator = (*Pipeline)(nil)

// Resolve runs the translators in order and returns the first answer, or the
// fallback's answer if every translator declined. It never returns nil.
//
// st and cause must be non-nil; md must be owned by the current request.
func (p *Pipeline) Resolve(ctx context.Context, st *status.Status, cause error, md metadata.MD) *status.Status {
	for _, t := range p.links {
		if s, ok := t.Translate(ctx, st, cause, md).Status(); ok {
			return s
		}
	}
	return fallback(ctx, p.fallback, st, cause, md)
}

// Translate implements apis.Translator. It never declines, so a Pipeline
// registered inside another Builder ends that pipeline's evaluation.
func (p *Pipeline) Translate(ctx context.Context, st *status.Status, cause error, md metadata.MD) apis.Result {
	return apis.Answer(p.Resolve(ctx, st, cause, md))
}

// Len returns the number of translators before the fallback, after
// flattening OrElse chains.
func (p *Pipeline) Len() int { return len(p.links) }
