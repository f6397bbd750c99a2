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
	"maps"

	"dirpx.dev/dstatus/code"
	"google.golang.org/grpc/codes"
)

type prefixRule struct {
	// prefix is the raw dotted reason prefix, possibly with "*" segments.
	// It is normalized and validated in New.
	prefix string
	val    codes.Code
}

// builder collects options before New freezes them into a mapper.
type builder struct {
	defaults  map[code.Code]codes.Code
	overrides map[code.Code]codes.Code
	prefixes  map[code.Code][]prefixRule
	fallback  codes.Code
}

// newBuilder returns a builder seeded with the library defaults.
func newBuilder() *builder {
	b := &builder{
		defaults:  make(map[code.Code]codes.Code, len(defaultCodes)),
		overrides: make(map[code.Code]codes.Code),
		prefixes:  make(map[code.Code][]prefixRule),
		fallback:  codes.Internal,
	}
	maps.Copy(b.defaults, defaultCodes)
	return b
}
