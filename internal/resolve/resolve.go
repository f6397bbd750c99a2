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

// Package resolve runs a translation pipeline on behalf of the transport
// adapters and enforces what the pipeline itself does not: a failed call
// never reports OK, and a panicking translator does not take the server
// down.
package resolve

import (
	"context"

	"dirpx.dev/dstatus/derive"
	"dirpx.dev/dstatus/mapper"
	"dirpx.dev/dstatus/translate"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// InternalMessage is the message reported when the pipeline panicked.
const InternalMessage = "internal error"

// Outcome is the result of resolving one failure.
type Outcome struct {
	// Status is never nil and never OK.
	Status *status.Status
	// MD holds the trailer entries written by translators. It is empty, not
	// nil, when none were written, and empty after a panic.
	MD metadata.MD
	// Tentative is the status derived before translation.
	Tentative *status.Status
	// Panic is the recovered value when a translator panicked.
	Panic any
	// Coerced is set when the pipeline answered OK and the answer was
	// replaced by Unknown.
	Coerced bool
}

// Failure derives the tentative status of err and runs p on it with a fresh
// metadata map. err must be non-nil.
//
// The outcome is recorded on the span in ctx, if it is recording.
func Failure(ctx context.Context, p *translate.Pipeline, d *derive.Deriver, err error) (out Outcome) {
	tentative := d.Status(err)
	if tentative.Code() == codes.OK {
		tentative = status.New(codes.Unknown, err.Error())
	}
	out.Tentative = tentative
	out.MD = metadata.MD{}

	defer func() { record(ctx, out, err) }()
	defer func() {
		if r := recover(); r != nil {
			out.Status = status.New(codes.Internal, InternalMessage)
			out.MD = metadata.MD{}
			out.Panic = r
			out.Coerced = false
		}
	}()

	st := p.Resolve(ctx, tentative, err, out.MD)
	if st.Code() == codes.OK {
		st = status.New(codes.Unknown, tentative.Message())
		out.Coerced = true
	}
	out.Status = st
	return out
}

// Span attributes set by record.
const (
	AttrCode          = attribute.Key("dstatus.code")
	AttrTentativeCode = attribute.Key("dstatus.tentative_code")
	AttrGRPCStatus    = attribute.Key("rpc.grpc.status_code")
)

func record(ctx context.Context, out Outcome, err error) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.RecordError(err)
	span.SetAttributes(
		AttrCode.String(mapper.CodeName(out.Status.Code())),
		AttrTentativeCode.String(mapper.CodeName(out.Tentative.Code())),
		AttrGRPCStatus.Int(int(out.Status.Code())),
	)
	if out.Panic != nil {
		span.AddEvent("dstatus.translator_panic")
	}
	span.SetStatus(otelcodes.Error, out.Status.Message())
}
