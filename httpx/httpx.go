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

// Package httpx writes translated failures as HTTP responses, for servers
// that expose the same handlers over gRPC and plain HTTP.
package httpx

import (
	"encoding/base64"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"dirpx.dev/dstatus/derive"
	"dirpx.dev/dstatus/internal/resolve"
	"dirpx.dev/dstatus/translate"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
)

// MetadataHeaderPrefix prefixes every trailer entry copied to the response
// headers.
const MetadataHeaderPrefix = "Grpc-Metadata-"

var (
	defaultDeriver  = sync.OnceValue(func() *derive.Deriver { return derive.New() })
	defaultPipeline = sync.OnceValue(func() *translate.Pipeline {
		return translate.NewBuilder(translate.Classify()).MustBuild()
	})
)

// Writer turns handler errors into HTTP responses. The zero value is usable:
// it derives with derive.New(), translates with a Classify-only pipeline and
// logs to slog.Default().
type Writer struct {
	Pipeline *translate.Pipeline
	Deriver  *derive.Deriver
	Logger   *slog.Logger
}

// Write resolves err with the request context and writes the result:
//   - the HTTP status from StatusFromCode;
//   - trailer metadata as Grpc-Metadata-* headers, "-bin" values base64
//     encoded;
//   - Retry-After, in whole seconds, when a google.rpc.RetryInfo is attached;
//   - the google.rpc.Status as protojson.
//
// No redaction happens here: whatever the pipeline answered is exposed.
func (w Writer) Write(rw http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}
	ctx := r.Context()
	out := resolve.Failure(ctx, w.pipeline(), w.deriver(), err)

	log := w.logger()
	switch {
	case out.Panic != nil:
		log.ErrorContext(ctx, "translator panicked",
			slog.String("path", r.URL.Path),
			slog.Any("panic", out.Panic),
			slog.Any("error", err),
		)
	case out.Coerced:
		log.WarnContext(ctx, "translation answered ok for a failed request",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}

	h := rw.Header()
	copyMetadata(h, out.MD)
	if secs, ok := retryAfter(out.Status); ok {
		h.Set("Retry-After", strconv.FormatInt(secs, 10))
	}
	h.Set("Content-Type", "application/json")
	rw.WriteHeader(StatusFromCode(out.Status.Code()))

	b, merr := protojson.MarshalOptions{UseProtoNames: false}.Marshal(out.Status.Proto())
	if merr != nil {
		log.ErrorContext(ctx, "cannot encode status", slog.Any("error", merr))
		return
	}
	if _, werr := rw.Write(b); werr != nil {
		log.DebugContext(ctx, "cannot write response", slog.Any("error", werr))
	}
}

func (w Writer) pipeline() *translate.Pipeline {
	if w.Pipeline != nil {
		return w.Pipeline
	}
	return defaultPipeline()
}

func (w Writer) deriver() *derive.Deriver {
	if w.Deriver != nil {
		return w.Deriver
	}
	return defaultDeriver()
}

func (w Writer) logger() *slog.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return slog.Default()
}

func copyMetadata(h http.Header, md metadata.MD) {
	for k, vs := range md {
		key := MetadataHeaderPrefix + k
		bin := strings.HasSuffix(k, "-bin")
		for _, v := range vs {
			if bin {
				v = base64.StdEncoding.EncodeToString([]byte(v))
			}
			h.Add(key, v)
		}
	}
}

// retryAfter returns the delay of the first RetryInfo detail, rounded up to
// whole seconds.
func retryAfter(st *status.Status) (int64, bool) {
	for _, d := range st.Details() {
		ri, ok := d.(*errdetails.RetryInfo)
		if !ok || ri.GetRetryDelay() == nil {
			continue
		}
		secs := int64(math.Ceil(ri.GetRetryDelay().AsDuration().Seconds()))
		return max(secs, 0), true
	}
	return 0, false
}

// StatusFromCode returns the HTTP status conventionally used for a gRPC code,
// as in the gRPC-HTTP transcoding mapping.
func StatusFromCode(c codes.Code) int {
	switch c {
	case codes.OK:
		return http.StatusOK
	case codes.Canceled:
		return 499
	case codes.InvalidArgument, codes.OutOfRange:
		return http.StatusBadRequest
	case codes.FailedPrecondition:
		return http.StatusBadRequest
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists, codes.Aborted:
		return http.StatusConflict
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.Unimplemented:
		return http.StatusNotImplemented
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
