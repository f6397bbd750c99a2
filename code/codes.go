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

package code

// Generic failure classes.
const (
	// Internal is the catch-all for unclassified server-side failures.
	Internal Code = "internal"

	// Invalid means the request violates a structural or semantic rule.
	Invalid Code = "invalid"

	// Missing means a required value was not supplied.
	Missing Code = "missing"

	// Unsupported means the operation or option is not supported here.
	Unsupported Code = "unsupported"
)

// Runtime and dependency failures. Usually transient.
const (
	// Unavailable means a required dependency is unreachable.
	Unavailable Code = "unavailable"

	// Timeout means the operation ran out of its time budget.
	Timeout Code = "timeout"

	// Canceled means the caller abandoned the operation.
	Canceled Code = "canceled"

	// DependencyFailed means a reachable dependency refused the work.
	DependencyFailed Code = "dependency_failed"

	// Overloaded means the server sheds load.
	Overloaded Code = "overloaded"

	// Draining means the server is leaving rotation.
	Draining Code = "draining"
)

// Resource state.
const (
	NotFound           Code = "not_found"
	AlreadyExists      Code = "already_exists"
	Conflict           Code = "conflict"
	PreconditionFailed Code = "precondition_failed"
	Gone               Code = "gone"
)

// Authentication and authorization.
const (
	// Unauthenticated means no valid identity could be established.
	Unauthenticated Code = "unauthenticated"

	// PermissionDenied means the identity is known but not allowed.
	PermissionDenied Code = "permission_denied"

	// TokenExpired means the credential was valid but is past its lifetime.
	TokenExpired Code = "token_expired"
)

// Rates and quotas.
const (
	// RateLimited means the caller exceeded a request rate.
	RateLimited Code = "rate_limited"

	// QuotaExceeded means the caller or tenant exhausted an allocated quota.
	// Whether that is a retryable condition or a precondition the client must
	// fix is a policy decision; the default table says ResourceExhausted and
	// a translator can say otherwise.
	QuotaExceeded Code = "quota_exceeded"
)
