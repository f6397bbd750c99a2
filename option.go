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

package dstatus

import (
	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/reason"
)

// Option decorates a Failure under construction. See New.
type Option func(*Failure) *Failure

// WithReason sets the reason. The raw string goes through reason.Parse; an
// invalid reason is dropped rather than failing the construction of an error
// that is itself reporting a failure.
func WithReason(r string) Option {
	return func(f *Failure) *Failure {
		parsed, err := reason.Parse(r)
		if err != nil {
			return f
		}
		return f.WithReason(parsed)
	}
}

// WithMeta adds one annotation.
func WithMeta(k, v string) Option {
	return func(f *Failure) *Failure { return f.WithMeta(k, v) }
}

// WithDetail appends one structured detail.
func WithDetail(d apis.Detail) Option {
	return func(f *Failure) *Failure { return f.WithDetail(d) }
}

// WithCause wraps err.
func WithCause(err error) Option {
	return func(f *Failure) *Failure { return f.WithCause(err) }
}
