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

// Package derive computes the tentative status of a failure: the status a
// server would report before any translator had a say.
//
// Derivation looks, in order, for:
//
//  1. a domain failure (apis.CodedError) anywhere in the chain, mapped
//     through an apis.Mapper and keeping the failure's own message;
//  2. an embedded gRPC status (status.FromError);
//  3. context.Canceled or context.DeadlineExceeded;
//
// and reports anything else as Unknown with the error text.
package derive

import (
	"context"
	"errors"

	"dirpx.dev/dstatus"
	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/code"
	"dirpx.dev/dstatus/mapper"
	"dirpx.dev/dstatus/reason"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Deriver derives tentative statuses. It is immutable and safe for
// concurrent use.
type Deriver struct {
	mapper apis.Mapper
}

// Option configures a Deriver.
type Option func(*Deriver)

// WithMapper replaces the default code table (mapper.MustNew()).
// A nil mapper is ignored.
func WithMapper(m apis.Mapper) Option {
	return func(d *Deriver) {
		if m != nil {
			d.mapper = m
		}
	}
}

// New returns a Deriver configured by opts.
func New(opts ...Option) *Deriver {
	d := &Deriver{}
	for _, opt := range opts {
		opt(d)
	}
	if d.mapper == nil {
		d.mapper = mapper.MustNew()
	}
	return d
}

// Status returns the tentative status for err. It never returns nil; a nil
// err yields OK.
func (d *Deriver) Status(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}

	var ce apis.CodedError
	if errors.As(err, &ce) {
		return status.New(d.mapper.Code(codeOf(ce), reasonOf(err)), messageOf(err))
	}
	if st, ok := status.FromError(err); ok {
		return st
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err)
	}
	return status.New(codes.Unknown, err.Error())
}

func codeOf(ce apis.CodedError) code.Code {
	return code.Code(code.Normalize(ce.ErrorCode()))
}

// reasonOf returns the first valid reason in the chain, or reason.Empty.
func reasonOf(err error) reason.Reason {
	var re apis.ReasonedError
	if !errors.As(err, &re) {
		return reason.Empty
	}
	r, perr := reason.Parse(re.ErrorReason())
	if perr != nil {
		return reason.Empty
	}
	return r
}

// messageOf prefers the message of a *dstatus.Failure, which leaves out the
// code and reason prefix rendered by its Error method.
func messageOf(err error) string {
	var f *dstatus.Failure
	if errors.As(err, &f) {
		return f.Message
	}
	return err.Error()
}
