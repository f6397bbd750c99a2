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

package segmenttrie

import "testing"

func TestMatch_LongestPrefix(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("billing", 1))
	must(t, tr.Insert("billing.quota", 2))
	must(t, tr.Insert("storage.pg.connect", 3))

	tests := []struct {
		reason  string
		want    int
		pattern string
		ok      bool
	}{
		{"billing.quota.storage", 2, "billing.quota", true},
		{"billing.invoice", 1, "billing", true},
		{"billing", 1, "billing", true},
		{"storage.pg.connect.timeout", 3, "storage.pg.connect", true},
		{"storage.pg", 0, "", false},
		{"billingx.quota", 0, "", false}, // no match across segment boundaries
		{"", 0, "", false},
	}
	for _, tt := range tests {
		v, p, ok := tr.Match(tt.reason)
		if ok != tt.ok || v != tt.want || p != tt.pattern {
			t.Errorf("Match(%q) = (%d, %q, %v), want (%d, %q, %v)", tt.reason, v, p, ok, tt.want, tt.pattern, tt.ok)
		}
	}
}

func TestMatch_Wildcard(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("auth.*.verify", 498))
	must(t, tr.Insert("auth.jwt.verify", 401))

	if v, p, ok := tr.Match("auth.jwt.verify"); !ok || v != 401 || p != "auth.jwt.verify" {
		t.Fatalf("exact must beat wildcard at equal depth: %d %q %v", v, p, ok)
	}
	if v, p, ok := tr.Match("auth.saml.verify.token"); !ok || v != 498 || p != "auth.*.verify" {
		t.Fatalf("wildcard match failed: %d %q %v", v, p, ok)
	}
	if _, _, ok := tr.Match("auth.verify"); ok {
		t.Fatalf("wildcard must not match zero segments")
	}
}

func TestMatch_DeeperWildcardBeatsShallowExact(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("a.*.c", 7))
	must(t, tr.Insert("a.b", 1))
	if v, p, ok := tr.Match("a.b.c"); !ok || v != 7 || p != "a.*.c" {
		t.Fatalf("Match(a.b.c) = %d %q %v, want 7 a.*.c", v, p, ok)
	}
}

func TestInsert_Invalid(t *testing.T) {
	tr := New[int]()
	for _, p := range []string{"", "UPPER.case", "a..b", "*", "*.*", "a.", "1a"} {
		if err := tr.Insert(p, 1); err != ErrInvalidPrefix {
			t.Errorf("Insert(%q) err = %v, want ErrInvalidPrefix", p, err)
		}
	}
	var nilTrie *Trie[int]
	if err := nilTrie.Insert("a.b", 1); err != ErrInvalidPrefix {
		t.Errorf("nil trie Insert err = %v", err)
	}
	if _, _, ok := nilTrie.Match("a.b"); ok {
		t.Errorf("nil trie must not match")
	}
}

func TestInsert_Replaces(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("billing.quota", 1))
	must(t, tr.Insert("billing.quota", 2))
	if v, _, _ := tr.Match("billing.quota"); v != 2 {
		t.Fatalf("second insert must replace the first, got %d", v)
	}
}

func BenchmarkMatch(b *testing.B) {
	tr := New[int]()
	for _, p := range []string{"billing", "billing.quota", "auth.*.verify", "storage.pg.connect"} {
		if err := tr.Insert(p, 1); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _, _ = tr.Match("billing.quota.storage.daily")
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
