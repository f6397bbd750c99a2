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

package apis

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Translator converts a request failure into a gRPC status.
//
// Arguments:
//   - ctx is the request context (method, peer, deadline, values); never nil;
//   - st is the tentative status derived from cause before any translator
//     ran; never nil and never modified;
//   - cause is the original failure; never nil;
//   - md is the trailer metadata of the current request. It is shared by
//     every translator of the same run, and writes to it are kept whether
//     the translator answers or declines.
//
// Translate returns Answer(...) to finish the translation or Decline() to let
// the next translator decide. Implementations must be safe for concurrent use
// across independent requests; they never see the same md concurrently.
type Translator interface {
	Translate(ctx context.Context, st *status.Status, cause error, md metadata.MD) Result
}

// Result is the outcome of a single Translator call.
//
// The zero value is a decline. A Result built with Answer always carries a
// non-nil status, so "declined" and "answered with the tentative status" are
// never confused.
type Result struct {
	st *status.Status
}

// Decline returns the "no opinion" result.
func Decline() Result { return Result{} }

// Answer returns a definite result carrying st.
//
// A nil st is answered as codes.Unknown: a nil *status.Status means OK in
// grpc-go, which is never a valid translation of a failure, and must not be
// mistaken for a decline either.
func Answer(st *status.Status) Result {
	if st == nil {
		st = status.New(codes.Unknown, "")
	}
	return Result{st: st}
}

// Declined reports whether the translator abstained.
func (r Result) Declined() bool { return r.st == nil }

// Status returns the answered status and true, or (nil, false) on decline.
func (r Result) Status() (*status.Status, bool) {
	return r.st, r.st != nil
}
