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

package reason

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Billing.Quota.Storage  ", "billing.quota.storage"},
		{"storage/pg/connect", "storage.pg.connect"},
		{"storage.pg.connect-timeout", "storage.pg.connect_timeout"},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Reason
		wantErr error
	}{
		{"dotted", "billing.quota.storage", "billing.quota.storage", nil},
		{"slashes", "storage/pg.connect-timeout", "storage.pg.connect_timeout", nil},
		{"empty is fine", "", Empty, nil},
		{"empty segment", "storage..pg", Empty, ErrReasonInvalidFormat},
		{"digit first", "1storage.pg", Empty, ErrReasonInvalidFormat},
		{"trailing dot", "storage.pg.", Empty, ErrReasonInvalidFormat},
		{"five segments", "a1.b1.c1.d1.e1", Empty, ErrReasonInvalidFormat},
		{"too short", "ab", Empty, ErrReasonInvalidLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse(%q) err = %v, want %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_TooLong(t *testing.T) {
	long := "billing"
	for len(long) <= MaxLength {
		long += "_quota"
	}
	if _, err := Parse(long); err != ErrReasonInvalidLength {
		t.Fatalf("Parse(long) err = %v, want ErrReasonInvalidLength", err)
	}
}

func TestMustParse(t *testing.T) {
	if r := MustParse("Auth/JWT"); r != "auth.jwt" {
		t.Fatalf("MustParse = %q", r)
	}
	for _, in := range []string{"", "a..b"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("MustParse(%q) should panic", in)
				}
			}()
			_ = MustParse(in)
		}()
	}
}

func TestText(t *testing.T) {
	var r Reason
	if err := r.UnmarshalText([]byte(" Storage/PG ")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if r != "storage.pg" {
		t.Fatalf("UnmarshalText = %q", r)
	}
	b, err := Empty.MarshalText()
	if err != nil || len(b) != 0 {
		t.Fatalf("Empty.MarshalText = %q, %v", b, err)
	}
	if _, err := Reason("Not Canonical").MarshalText(); err == nil {
		t.Fatalf("MarshalText must refuse non-canonical reasons")
	}
}
