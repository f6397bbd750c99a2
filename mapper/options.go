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
	"dirpx.dev/dstatus/code"
	"google.golang.org/grpc/codes"
)

// Option configures a mapper at build time.
type Option func(*builder)

// WithDefault sets or replaces the per-code default.
func WithDefault(c code.Code, gc codes.Code) Option {
	return func(b *builder) { b.defaults[c] = gc }
}

// WithOverride pins c to gc regardless of the reason. Overrides beat
// prefix rules and defaults.
func WithOverride(c code.Code, gc codes.Code) Option {
	return func(b *builder) { b.overrides[c] = gc }
}

// WithPrefix adds a reason-prefix rule for c. The longest matching prefix
// wins; "*" matches exactly one segment.
func WithPrefix(c code.Code, prefix string, gc codes.Code) Option {
	return func(b *builder) { b.prefixes[c] = append(b.prefixes[c], prefixRule{prefix, gc}) }
}

// WithFallback replaces codes.Internal as the answer for codes that have no
// rule at all.
func WithFallback(gc codes.Code) Option {
	return func(b *builder) { b.fallback = gc }
}
