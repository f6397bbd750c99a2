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

package mapper

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/code"
	"dirpx.dev/dstatus/reason"
	"google.golang.org/grpc/codes"
)

var _ apis.Mapper = (*mapper)(nil)

func TestDefaults(t *testing.T) {
	m := MustNew()
	tests := []struct {
		c    code.Code
		want codes.Code
	}{
		{code.Invalid, codes.InvalidArgument},
		{code.NotFound, codes.NotFound},
		{code.Unavailable, codes.Unavailable},
		{code.QuotaExceeded, codes.ResourceExhausted},
		{code.Timeout, codes.DeadlineExceeded},
		{code.Code("never_registered"), codes.Internal},
	}
	for _, tt := range tests {
		if got := m.Code(tt.c, reason.Empty); got != tt.want {
			t.Errorf("Code(%q) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestPriority_OverrideOverPrefixOverDefault(t *testing.T) {
	r := reason.MustParse("storage.pg.connect")

	m := MustNew(
		WithDefault(code.Unavailable, codes.Unavailable),
		WithPrefix(code.Unavailable, "storage.pg", codes.Internal),
	)
	if got := m.Code(code.Unavailable, r); got != codes.Internal {
		t.Fatalf("prefix must beat default; got %v", got)
	}

	m = MustNew(
		WithPrefix(code.Unavailable, "storage.pg", codes.Internal),
		WithOverride(code.Unavailable, codes.Aborted),
	)
	if got := m.Code(code.Unavailable, r); got != codes.Aborted {
		t.Fatalf("override must win; got %v", got)
	}
}

func TestPrefix_LPMAndWildcard(t *testing.T) {
	m := MustNew(
		WithPrefix(code.QuotaExceeded, "billing", codes.ResourceExhausted),
		WithPrefix(code.QuotaExceeded, "billing.quota", codes.FailedPrecondition),
		WithPrefix(code.Unavailable, "auth.*.verify", codes.Unauthenticated),
	)
	if got := m.Code(code.QuotaExceeded, reason.MustParse("billing.quota.storage")); got != codes.FailedPrecondition {
		t.Fatalf("LPM failed; got %v", got)
	}
	if got := m.Code(code.QuotaExceeded, reason.MustParse("billing.invoice")); got != codes.ResourceExhausted {
		t.Fatalf("shorter prefix failed; got %v", got)
	}
	if got := m.Code(code.Unavailable, reason.MustParse("auth.saml.verify")); got != codes.Unauthenticated {
		t.Fatalf("wildcard failed; got %v", got)
	}
	// Prefix rules are per code.
	if got := m.Code(code.Invalid, reason.MustParse("billing.quota")); got != codes.InvalidArgument {
		t.Fatalf("rule leaked to another code; got %v", got)
	}
}

func TestPrefix_Normalized(t *testing.T) {
	m := MustNew(WithPrefix(code.Unavailable, "  STORAGE/PG.CONNECT-TIMEOUT  ", codes.Aborted))
	if got := m.Code(code.Unavailable, reason.MustParse("storage.pg.connect_timeout")); got != codes.Aborted {
		t.Fatalf("normalized prefix should match; got %v", got)
	}
}

func TestNew_InvalidPrefix(t *testing.T) {
	for _, p := range []string{"", "*", "a..b"} {
		_, err := New(WithPrefix(code.Unavailable, p, codes.Aborted))
		if !errors.Is(err, ErrInvalidPrefix) {
			t.Errorf("New(prefix %q) err = %v, want ErrInvalidPrefix", p, err)
		}
	}
}

func TestWithFallback(t *testing.T) {
	m := MustNew(WithFallback(codes.Unknown))
	if got := m.Code(code.Code("made_up"), reason.Empty); got != codes.Unknown {
		t.Fatalf("fallback = %v, want Unknown", got)
	}
}

func TestExplain_Sources(t *testing.T) {
	m := MustNew(WithPrefix(code.Unavailable, "storage.pg", codes.Aborted))
	exp := m.Explain(code.Unavailable, reason.MustParse("storage.pg.connect"))
	for _, sub := range []string{`source=prefix`, `pattern="storage.pg"`, `ABORTED(10)`} {
		if !strings.Contains(exp, sub) {
			t.Fatalf("Explain missing %q:\n%s", sub, exp)
		}
	}
}

func TestCodeName(t *testing.T) {
	tests := map[codes.Code]string{
		codes.OK:                 "OK",
		codes.FailedPrecondition: "FAILED_PRECONDITION",
		codes.ResourceExhausted:  "RESOURCE_EXHAUSTED",
		codes.DataLoss:           "DATA_LOSS",
		codes.Internal:           "INTERNAL",
	}
	for c, want := range tests {
		if got := CodeName(c); got != want {
			t.Errorf("CodeName(%v) = %q, want %q", c, got, want)
		}
	}
}

func TestConcurrency(t *testing.T) {
	m := MustNew(
		WithPrefix(code.Unavailable, "storage.pg", codes.Aborted),
		WithOverride(code.Canceled, codes.Unavailable),
	)
	r := reason.MustParse("storage.pg.connect")
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				_ = m.Code(code.Unavailable, r)
				_ = m.Code(code.Canceled, reason.Empty)
				_ = m.Explain(code.Invalid, r)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkCode_PrefixHit(b *testing.B) {
	m := MustNew(WithPrefix(code.Unavailable, "storage.pg", codes.Aborted))
	r := reason.MustParse("storage.pg.connect")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Code(code.Unavailable, r)
	}
}
