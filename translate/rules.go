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
	"slices"
	"strconv"
	"time"

	"dirpx.dev/dstatus/adapter"
	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/code"
	"github.com/google/uuid"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/durationpb"
)

// MetaRetryAfter is the metadata key set by RetryHint, in milliseconds.
const MetaRetryAfter = "retry-after-ms"

// On returns a translator that calls fn when cause has an error of type E in
// its chain (errors.As) and declines otherwise.
//
//	translate.On(func(ctx context.Context, st *status.Status, e *QuotaError, md metadata.MD) apis.Result {
//	    return apis.Answer(status.New(codes.FailedPrecondition, e.Error()))
//	})
func On[E error](fn func(ctx context.Context, st *status.Status, cause E, md metadata.MD) apis.Result) apis.Translator {
	if fn == nil {
		return nil
	}
	return Of(func(ctx context.Context, st *status.Status, cause error, md metadata.MD) apis.Result {
		var e E
		if !errors.As(cause, &e) {
			return apis.Decline()
		}
		return fn(ctx, st, e, md)
	})
}

// Is returns a translator that answers c with the cause's text when cause
// matches target (errors.Is).
func Is(target error, c codes.Code) apis.Translator {
	return Of(func(_ context.Context, _ *status.Status, cause error, _ metadata.MD) apis.Result {
		if !errors.Is(cause, target) {
			return apis.Decline()
		}
		return apis.Answer(status.New(c, cause.Error()))
	})
}

// OnCode returns a translator that answers gc, keeping the tentative message,
// for causes carrying domain code c. It overrides whatever the mapper chose
// for c in this pipeline only.
func OnCode(c code.Code, gc codes.Code) apis.Translator {
	want := code.Normalize(string(c))
	return Of(func(_ context.Context, st *status.Status, cause error, _ metadata.MD) apis.Result {
		var ce apis.CodedError
		if !errors.As(cause, &ce) || code.Normalize(ce.ErrorCode()) != want {
			return apis.Decline()
		}
		return apis.Answer(status.New(gc, st.Message()))
	})
}

// Annotate returns a translator that appends values under key and declines,
// so the entries reach the response whichever translator answers later.
func Annotate(key string, values ...string) apis.Translator {
	values = slices.Clone(values)
	return Of(func(_ context.Context, _ *status.Status, _ error, md metadata.MD) apis.Result {
		md.Append(key, values...)
		return apis.Decline()
	})
}

// Describe returns a translator that answers, for domain failures, with the
// tentative status plus a google.rpc.ErrorInfo in the given domain and, when
// the failure has field-level details, a google.rpc.BadRequest. Other causes
// are declined.
func Describe(domain string) apis.Translator {
	return Of(func(_ context.Context, st *status.Status, cause error, _ metadata.MD) apis.Result {
		var ce apis.CodedError
		if !errors.As(cause, &ce) {
			return apis.Decline()
		}
		details := []protoadapt.MessageV1{
			protoadapt.MessageV1Of(adapter.ToErrorInfo(ce, domain)),
		}
		var de apis.DetailedError
		if errors.As(cause, &de) {
			if br := adapter.ToBadRequest(de.ErrorDetails()); br != nil {
				details = append(details, protoadapt.MessageV1Of(br))
			}
		}
		return withDetails(st, details...)
	})
}

// RetryHint returns a translator that answers, for tentative statuses with
// one of the given codes, with a google.rpc.RetryInfo carrying delay and
// sets MetaRetryAfter. Without codes it applies to UNAVAILABLE,
// RESOURCE_EXHAUSTED and ABORTED.
func RetryHint(delay time.Duration, cs ...codes.Code) apis.Translator {
	if len(cs) == 0 {
		cs = []codes.Code{codes.Unavailable, codes.ResourceExhausted, codes.Aborted}
	} else {
		cs = slices.Clone(cs)
	}
	ms := strconv.FormatInt(delay.Milliseconds(), 10)
	return Of(func(_ context.Context, st *status.Status, _ error, md metadata.MD) apis.Result {
		if !slices.Contains(cs, st.Code()) {
			return apis.Decline()
		}
		md.Set(MetaRetryAfter, ms)
		return withDetails(st, protoadapt.MessageV1Of(&errdetails.RetryInfo{
			RetryDelay: durationpb.New(delay),
		}))
	})
}

// Incident returns a translator that tags failures with a fresh random
// incident id under key and declines, so that a client report can be matched
// with server logs. Without codes it tags INTERNAL, UNKNOWN and DATA_LOSS.
func Incident(key string, cs ...codes.Code) apis.Translator {
	if len(cs) == 0 {
		cs = []codes.Code{codes.Internal, codes.Unknown, codes.DataLoss}
	} else {
		cs = slices.Clone(cs)
	}
	return Of(func(_ context.Context, st *status.Status, _ error, md metadata.MD) apis.Result {
		if slices.Contains(cs, st.Code()) {
			md.Set(key, uuid.NewString())
		}
		return apis.Decline()
	})
}

// withDetails answers st with details attached, or declines if st cannot
// carry details.
func withDetails(st *status.Status, details ...protoadapt.MessageV1) apis.Result {
	s, err := st.WithDetails(details...)
	if err != nil {
		return apis.Decline()
	}
	return apis.Answer(s)
}
