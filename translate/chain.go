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
	"reflect"

	"dirpx.dev/dstatus/apis"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Func adapts a plain function to apis.Translator.
//
// Func values are not comparable, so two Func values are never "the same
// translator" for OrElse. Wrap a function with Of when identity matters.
type Func func(ctx context.Context, st *status.Status, cause error, md metadata.MD) apis.Result

// Translate implements apis.Translator.
func (f Func) Translate(ctx context.Context, st *status.Status, cause error, md metadata.MD) apis.Result {
	return f(ctx, st, cause, md)
}

// funcTranslator gives a Func pointer identity.
type funcTranslator struct {
	fn Func
}

// Of wraps fn into a translator with identity: the returned value is equal
// only to itself.
func Of(fn Func) apis.Translator {
	if fn == nil {
		return nil
	}
	return &funcTranslator{fn: fn}
}

func (t *funcTranslator) Translate(ctx context.Context, st *status.Status, cause error, md metadata.MD) apis.Result {
	return t.fn(ctx, st, cause, md)
}

// chain is an ordered list of translators; the first answer wins.
// It never contains another *chain.
type chain struct {
	links []apis.Translator
}

func (c *chain) Translate(ctx context.Context, st *status.Status, cause error, md metadata.MD) apis.Result {
	for _, t := range c.links {
		if r := t.Translate(ctx, st, cause, md); !r.Declined() {
			return r
		}
	}
	return apis.Decline()
}

// OrElse returns a translator that asks first and, only if first declines,
// asks next with the same arguments and the same metadata.
//
// If first and next are the same instance, first is returned as is.
// OrElse panics if either argument is nil.
func OrElse(first, next apis.Translator) apis.Translator {
	if isNil(first) || isNil(next) {
		panic(ErrNilTranslator)
	}
	if same(first, next) {
		return first
	}
	links := appendLinks(nil, first)
	links = appendLinks(links, next)
	return &chain{links: links}
}

// appendLinks appends t to dst, splicing in the links of a chain so that
// nesting never changes evaluation order.
func appendLinks(dst []apis.Translator, t apis.Translator) []apis.Translator {
	if c, ok := t.(*chain); ok {
		return append(dst, c.links...)
	}
	return append(dst, t)
}

// same reports whether a and b are the same translator instance. Values of
// non-comparable dynamic types (funcs, structs holding slices) are never the
// same, and comparing them never panics.
func same(a, b apis.Translator) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

// isNil reports whether v is nil or a typed nil (pointer, func, map...).
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
