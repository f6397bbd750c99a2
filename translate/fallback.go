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
	"io"
	"net"
	"os"

	"dirpx.dev/dstatus/apis"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Fallback is the terminal rule of a Pipeline. Unlike apis.Translator it
// returns a status directly and therefore cannot decline.
//
// Implementations must return a non-nil status; a Pipeline substitutes the
// tentative status for a nil one.
type Fallback interface {
	Fallback(ctx context.Context, st *status.Status, cause error, md metadata.MD) *status.Status
}

// FallbackFunc adapts a plain function to Fallback. A nil result is replaced
// by the tentative status.
type FallbackFunc func(ctx context.Context, st *status.Status, cause error, md metadata.MD) *status.Status

// Fallback implements Fallback.
func (f FallbackFunc) Fallback(ctx context.Context, st *status.Status, cause error, md metadata.MD) *status.Status {
	if s := f(ctx, st, cause, md); s != nil {
		return s
	}
	return st
}

type passthrough struct{}

// Passthrough returns the fallback that answers with the tentative status
// unchanged.
func Passthrough() Fallback { return passthrough{} }

func (passthrough) Fallback(_ context.Context, st *status.Status, _ error, _ metadata.MD) *status.Status {
	return st
}

type fixed struct {
	st *status.Status
}

// Fixed returns a catch-all fallback that always answers with the same
// status, whatever the failure was.
func Fixed(c codes.Code, msg string) Fallback {
	return fixed{st: status.New(c, msg)}
}

func (f fixed) Fallback(context.Context, *status.Status, error, metadata.MD) *status.Status {
	return f.st
}

type classify struct{}

// Classify returns the default fallback. When the tentative status is
// Unknown it recognizes common standard library failures:
//
//	os.ErrDeadlineExceeded, net.Error with Timeout()  DEADLINE_EXCEEDED
//	net.ErrClosed, io.ErrClosedPipe                   UNAVAILABLE
//	os.ErrNotExist                                    NOT_FOUND
//	os.ErrExist                                       ALREADY_EXISTS
//	os.ErrPermission                                  PERMISSION_DENIED
//	errors.ErrUnsupported                             UNIMPLEMENTED
//
// The tentative message is kept. Any other status passes through.
func Classify() Fallback { return classify{} }

func (classify) Fallback(_ context.Context, st *status.Status, cause error, _ metadata.MD) *status.Status {
	if st.Code() != codes.Unknown || cause == nil {
		return st
	}
	if c, ok := classifyCause(cause); ok {
		return status.New(c, st.Message())
	}
	return st
}

func classifyCause(err error) (codes.Code, bool) {
	var ne net.Error
	switch {
	case errors.Is(err, os.ErrDeadlineExceeded):
		return codes.DeadlineExceeded, true
	case errors.As(err, &ne) && ne.Timeout():
		return codes.DeadlineExceeded, true
	case errors.Is(err, net.ErrClosed), errors.Is(err, io.ErrClosedPipe):
		return codes.Unavailable, true
	case errors.Is(err, os.ErrNotExist):
		return codes.NotFound, true
	case errors.Is(err, os.ErrExist):
		return codes.AlreadyExists, true
	case errors.Is(err, os.ErrPermission):
		return codes.PermissionDenied, true
	case errors.Is(err, errors.ErrUnsupported):
		return codes.Unimplemented, true
	}
	return codes.Unknown, false
}

type terminal struct {
	f Fallback
}

// Terminal exposes f as a translator that always answers. It panics if f is
// nil.
func Terminal(f Fallback) apis.Translator {
	if isNil(f) {
		panic(ErrNilFallback)
	}
	return &terminal{f: f}
}

func (t *terminal) Translate(ctx context.Context, st *status.Status, cause error, md metadata.MD) apis.Result {
	return apis.Answer(fallback(ctx, t.f, st, cause, md))
}

// fallback runs f and substitutes st for a nil answer.
func fallback(ctx context.Context, f Fallback, st *status.Status, cause error, md metadata.MD) *status.Status {
	if s := f.Fallback(ctx, st, cause, md); s != nil {
		return s
	}
	return st
}
