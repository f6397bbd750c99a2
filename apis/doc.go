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

// Package apis defines the public Go-level contracts for dstatus.
//
// Everything that turns a failed request into a gRPC status speaks in terms
// of the small interfaces declared here:
//
//   - Translator: one failure-translation rule. It either answers with a
//     definite *status.Status or declines, and may write trailer metadata
//     either way;
//   - Result: the tagged outcome of a Translator (Answer vs Decline);
//   - Mapper: the table that derives a tentative gRPC code from a domain
//     code/reason pair;
//   - CodedError, ReasonedError, DetailedError, CausedError: capabilities a
//     failure may expose so that translators can inspect it without
//     importing the concrete failure type.
//
// Composition of translators lives in package translate; transport adapters
// live in grpcx and httpx. This package must remain lightweight: only
// interfaces and very small value types.
package apis
