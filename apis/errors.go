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

package apis

// CodedError is a failure classified by a machine-readable domain code, such
// as "invalid", "not_found" or "quota_exceeded".
//
// The code is what the tentative status derivation feeds into a Mapper, and
// what code-matching translators compare against. Implementations return the
// canonical form enforced by package code; an unknown or malformed code is
// resolved like any other code without a rule, i.e. to codes.Internal.
type CodedError interface {
	error

	// ErrorCode returns the canonical domain code. Never empty.
	ErrorCode() string
}

// ReasonedError is a failure that refines its code with a dotted reason,
// e.g. code "unavailable" with reason "storage.pg.connect".
//
// Mappers use the reason for longest-prefix rules. An empty reason is valid
// and means "no refinement".
type ReasonedError interface {
	error

	// ErrorReason returns the canonical reason. May be empty.
	ErrorReason() string
}

// DetailedError is a failure that exposes structured details. Translators
// may copy them into status details or trailer metadata.
//
// The returned slice must not be modified by the callee. Nil means "no
// details".
type DetailedError interface {
	error

	// ErrorDetails returns structured details of the failure. May return nil.
	ErrorDetails() []Detail
}

// CausedError is a failure that exposes its direct underlying cause.
type CausedError interface {
	error

	// Cause returns the wrapped error, or nil.
	Cause() error
}
