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

// Package mapper provides the immutable code table that derives a tentative
// gRPC code from a domain code (dirpx.dev/dstatus/code) and an optional
// reason (dirpx.dev/dstatus/reason).
//
// # Resolution model
//
//  1. exact override for the code;
//  2. per-code longest-prefix match (LPM) on the reason;
//  3. per-code default (library or user adjusted);
//  4. global fallback (codes.Internal unless WithFallback says otherwise).
//
// Prefix rules are segment aware: reasons are "."-separated and "*" matches
// exactly one segment.
//
//	m, err := mapper.New(
//	    mapper.WithPrefix(code.QuotaExceeded, "billing.quota", codes.FailedPrecondition),
//	    mapper.WithOverride(code.Canceled, codes.Unavailable),
//	)
//
//	m.Code(code.QuotaExceeded, reason.MustParse("billing.quota.storage"))
//	// codes.FailedPrecondition
//
// The result is only the tentative status of a failure. Translators in
// package translate decide the final one.
//
// # Immutability
//
// New copies every option into a fresh snapshot, so a Mapper can be shared
// across goroutines for the lifetime of the server.
package mapper
