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

// Package grpcx installs a translation pipeline on a gRPC server.
//
//	p := translate.NewBuilder(translate.Classify()).
//	    Add(translate.Describe("billing.example.com")).
//	    MustBuild()
//
//	srv := grpc.NewServer(
//	    grpc.ChainUnaryInterceptor(grpcx.UnaryServerInterceptor(p)),
//	    grpc.ChainStreamInterceptor(grpcx.StreamServerInterceptor(p)),
//	)
//
// For every handler error the interceptor derives the tentative status,
// gives the pipeline a fresh metadata map, sends the map as trailers when it
// is not empty and returns the final status. Successful calls are not
// touched.
package grpcx

import (
	"context"
	"errors"
	"log/slog"

	"dirpx.dev/dstatus/internal/resolve"
	"dirpx.dev/dstatus/mapper"
	"dirpx.dev/dstatus/translate"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// ErrNilPipeline is the panic value of the interceptor constructors when
// given a nil pipeline.
var ErrNilPipeline = errors.New("grpcx: nil pipeline")

type translator struct {
	p        *translate.Pipeline
	cfg      *config
	failures *prometheus.CounterVec
}

func newTranslator(p *translate.Pipeline, opts []Option) *translator {
	if p == nil {
		panic(ErrNilPipeline)
	}
	cfg := newConfig(opts)
	return &translator{p: p, cfg: cfg, failures: failuresCounter(cfg.reg)}
}

// UnaryServerInterceptor returns an interceptor that runs p on every error
// returned by a unary handler. It panics if p is nil.
func UnaryServerInterceptor(p *translate.Pipeline, opts ...Option) grpc.UnaryServerInterceptor {
	t := newTranslator(p, opts)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, t.translate(ctx, info.FullMethod, err, func(md metadata.MD) error {
			return grpc.SetTrailer(ctx, md)
		})
	}
}

// StreamServerInterceptor returns an interceptor that runs p on every error
// returned by a stream handler. It panics if p is nil.
func StreamServerInterceptor(p *translate.Pipeline, opts ...Option) grpc.StreamServerInterceptor {
	t := newTranslator(p, opts)
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		if err == nil {
			return nil
		}
		return t.translate(ss.Context(), info.FullMethod, err, func(md metadata.MD) error {
			ss.SetTrailer(md)
			return nil
		})
	}
}

func (t *translator) translate(ctx context.Context, method string, err error, setTrailer func(metadata.MD) error) error {
	out := resolve.Failure(ctx, t.p, t.cfg.deriver, err)

	log := t.cfg.logger
	switch {
	case out.Panic != nil:
		log.ErrorContext(ctx, "translator panicked",
			slog.String("method", method),
			slog.Any("panic", out.Panic),
			slog.Any("error", err),
		)
	case out.Coerced:
		log.WarnContext(ctx, "translation answered ok for a failed call",
			slog.String("method", method),
			slog.Any("error", err),
		)
	}

	if out.MD.Len() > 0 {
		if terr := setTrailer(out.MD); terr != nil {
			log.WarnContext(ctx, "cannot set trailers",
				slog.String("method", method),
				slog.Any("error", terr),
			)
		}
	}
	if t.failures != nil {
		t.failures.WithLabelValues(method, mapper.CodeName(out.Status.Code())).Inc()
	}
	return out.Status.Err()
}

// ErrorInfo returns the google.rpc.ErrorInfo detail carried by a gRPC
// error, as attached by translate.Describe. Useful in clients and tests.
func ErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	st, ok := status.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}
