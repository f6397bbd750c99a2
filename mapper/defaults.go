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
	"dirpx.dev/dstatus/code"
	"google.golang.org/grpc/codes"
)

// defaultCodes is the built-in table from domain codes to tentative gRPC
// codes. It only seeds the tentative status; translators make the final call.
var defaultCodes = map[code.Code]codes.Code{
	code.Internal: codes.Internal,

	// Input.
	code.Invalid:     codes.InvalidArgument,
	code.Missing:     codes.InvalidArgument,
	code.Unsupported: codes.Unimplemented,

	// Runtime and dependencies.
	code.Unavailable:      codes.Unavailable,
	code.Overloaded:       codes.Unavailable,
	code.Draining:         codes.Unavailable,
	code.Timeout:          codes.DeadlineExceeded,
	code.Canceled:         codes.Canceled,
	code.DependencyFailed: codes.FailedPrecondition,

	// Resource state.
	code.NotFound:           codes.NotFound,
	code.Gone:               codes.NotFound, // gRPC has no 410
	code.AlreadyExists:      codes.AlreadyExists,
	code.Conflict:           codes.Aborted,
	code.PreconditionFailed: codes.FailedPrecondition,

	// AuthN / AuthZ.
	code.Unauthenticated:  codes.Unauthenticated,
	code.TokenExpired:     codes.Unauthenticated,
	code.PermissionDenied: codes.PermissionDenied,

	// Rates and quotas.
	code.RateLimited:   codes.ResourceExhausted,
	code.QuotaExceeded: codes.ResourceExhausted,
}
