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

import (
	"dirpx.dev/dstatus/code"
	"dirpx.dev/dstatus/reason"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe code table. It resolves a domain
// code (and optionally a reason) into the gRPC code used as the tentative
// status of a failure.
type Mapper interface {
	// Code returns the gRPC code for the given domain code and reason.
	// If no reason-specific rule exists, the mapper must fall back to the
	// code-level rule, and finally to codes.Internal.
	Code(c code.Code, r reason.Reason) codes.Code

	// Explain returns a human-readable description of which rule matched.
	Explain(c code.Code, r reason.Reason) string
}
