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

// Package segmenttrie implements longest-prefix matching over dotted reasons.
package segmenttrie

import (
	"errors"
	"strings"
)

// wildcard matches exactly one segment.
const wildcard = "*"

// ErrInvalidPrefix is returned for empty prefixes, empty or malformed
// segments, and prefixes made only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// Trie indexes dotted prefixes. Each node is one segment. After the last
// Insert it is read-only and safe for concurrent Match calls.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the prefix as inserted, kept so Match does not build strings.
	pattern string
}

// New returns an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates prefix with val, replacing any previous value for the
// same prefix. The prefix must be canonical ("billing.quota", "auth.*.verify")
// and contain at least one non-wildcard segment.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	concrete := false
	for _, s := range segs {
		if s == wildcard {
			continue
		}
		if !validSegment(s) {
			return ErrInvalidPrefix
		}
		concrete = true
	}
	if !concrete {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		next, ok := cur.children[s]
		if !ok {
			next = New[T]()
			cur.children[s] = next
		}
		cur = next
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Match returns the value and pattern of the deepest prefix of reason. Exact
// and wildcard branches are both explored; at equal depth the exact branch
// wins. A malformed segment stops the walk at that point.
func (t *Trie[T]) Match(reason string) (val T, pattern string, ok bool) {
	if t == nil {
		return val, "", false
	}
	best := -1
	var walk func(n *Trie[T], off, depth int)
	walk = func(n *Trie[T], off, depth int) {
		if n.hasVal && depth > best {
			best, val, pattern = depth, n.val, n.pattern
		}
		if off >= len(reason) {
			return
		}
		end := strings.IndexByte(reason[off:], '.')
		if end < 0 {
			end = len(reason)
		} else {
			end += off
		}
		seg := reason[off:end]
		if !validSegment(seg) {
			return
		}
		next := end + 1
		if c, ok := n.children[seg]; ok {
			walk(c, next, depth+1)
		}
		if c, ok := n.children[wildcard]; ok {
			walk(c, next, depth+1)
		}
	}
	walk(t, 0, 0)
	return val, pattern, best >= 0
}

// validSegment reports whether seg matches [a-z][a-z0-9_]*.
func validSegment(seg string) bool {
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
