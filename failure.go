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
	"fmt"
	"maps"
	"slices"

	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/code"
	"dirpx.dev/dstatus/reason"
)

// Failure is the domain error handlers return when they want their failure
// classified rather than reported as Unknown.
//
// It carries:
//   - Code: coarse classification, resolved to a tentative gRPC code by a
//     mapper (required);
//   - Reason: optional dotted refinement used by prefix rules;
//   - Message: human-oriented text, copied into the status message;
//   - Meta: flat string annotations, suitable for google.rpc.ErrorInfo;
//   - Details: structured facts (field violations and the like);
//   - Err: the wrapped underlying error.
//
// All With* helpers return a shallow copy; a Failure can be shared between
// goroutines and decorated without synchronization.
type Failure struct {
	Code    code.Code
	Reason  reason.Reason
	Message string
	Meta    map[string]string
	Details []apis.Detail
	Err     error
}

var (
	_ apis.CodedError    = (*Failure)(nil)
	_ apis.ReasonedError = (*Failure)(nil)
	_ apis.DetailedError = (*Failure)(nil)
	_ apis.CausedError   = (*Failure)(nil)
)

// New builds a Failure and applies opts in order.
//
//	return dstatus.New(code.QuotaExceeded, "storage quota exhausted",
//	    dstatus.WithReason("billing.quota.storage"),
//	    dstatus.WithMeta("limit", "10GiB"),
//	)
func New(c code.Code, msg string, opts ...Option) *Failure {
	f := &Failure{Code: c, Message: msg}
	for _, opt := range opts {
		f = opt(f)
	}
	return f
}

// Error renders "<code>: <message>" or "<code>:<reason>: <message>".
func (f *Failure) Error() string {
	if f == nil {
		return "<nil>"
	}
	if f.Reason != "" {
		return fmt.Sprintf("%s:%s: %s", f.Code, f.Reason, f.Message)
	}
	return fmt.Sprintf("%s: %s", f.Code, f.Message)
}

// Unwrap exposes Err to errors.Is / errors.As.
func (f *Failure) Unwrap() error { return f.Err }

// ErrorCode implements apis.CodedError.
func (f *Failure) ErrorCode() string { return string(f.Code) }

// ErrorReason implements apis.ReasonedError.
func (f *Failure) ErrorReason() string { return string(f.Reason) }

// ErrorDetails implements apis.DetailedError.
func (f *Failure) ErrorDetails() []apis.Detail { return f.Details }

// Cause implements apis.CausedError.
func (f *Failure) Cause() error { return f.Err }

// WithReason returns a copy of f with r set.
func (f *Failure) WithReason(r reason.Reason) *Failure {
	cp := *f
	cp.Reason = r
	return &cp
}

// WithMessage returns a copy of f with msg set.
func (f *Failure) WithMessage(msg string) *Failure {
	cp := *f
	cp.Message = msg
	return &cp
}

// WithMeta returns a copy of f with one more annotation. The Meta map is
// always copied.
func (f *Failure) WithMeta(k, v string) *Failure {
	cp := *f
	m := make(map[string]string, len(f.Meta)+1)
	maps.Copy(m, f.Meta)
	m[k] = v
	cp.Meta = m
	return &cp
}

// WithDetail returns a copy of f with d appended. The Details slice is always
// copied.
func (f *Failure) WithDetail(d apis.Detail) *Failure {
	cp := *f
	cp.Details = append(slices.Clip(f.Details), d)
	return &cp
}

// WithCause returns a copy of f wrapping err. A nil err returns f unchanged.
func (f *Failure) WithCause(err error) *Failure {
	if err == nil {
		return f
	}
	cp := *f
	cp.Err = err
	return &cp
}
