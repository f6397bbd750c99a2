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

package derive

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"dirpx.dev/dstatus"
	"dirpx.dev/dstatus/code"
	"dirpx.dev/dstatus/mapper"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestStatus(t *testing.T) {
	d := New(WithMapper(mapper.MustNew(
		mapper.WithPrefix(code.QuotaExceeded, "billing.quota", codes.FailedPrecondition),
	)))

	downstream := status.Error(codes.Unavailable, "ledger down")

	tests := []struct {
		name    string
		err     error
		code    codes.Code
		message string
	}{
		{"nil", nil, codes.OK, ""},
		{
			name:    "failure",
			err:     dstatus.New(code.NotFound, "no such bucket"),
			code:    codes.NotFound,
			message: "no such bucket",
		},
		{
			name: "failure with reason prefix",
			err: fmt.Errorf("charge: %w", dstatus.New(code.QuotaExceeded, "storage quota exhausted",
				dstatus.WithReason("billing.quota.storage"))),
			code:    codes.FailedPrecondition,
			message: "storage quota exhausted",
		},
		{
			name:    "failure wins over wrapped grpc status",
			err:     dstatus.New(code.DependencyFailed, "ledger refused", dstatus.WithCause(downstream)),
			code:    codes.FailedPrecondition,
			message: "ledger refused",
		},
		{"grpc status", downstream, codes.Unavailable, "ledger down"},
		{"canceled", fmt.Errorf("read: %w", context.Canceled), codes.Canceled, "read: context canceled"},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded, "context deadline exceeded"},
		{"plain", errors.New("boom"), codes.Unknown, "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := d.Status(tt.err)
			if st.Code() != tt.code || st.Message() != tt.message {
				t.Fatalf("Status = %v %q, want %v %q", st.Code(), st.Message(), tt.code, tt.message)
			}
		})
	}
}

func TestNew_DefaultMapper(t *testing.T) {
	d := New(WithMapper(nil))
	if got := d.Status(dstatus.New(code.Conflict, "x")).Code(); got != codes.Aborted {
		t.Fatalf("default table: conflict -> %v", got)
	}
}
