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

// Detail is one structured fact attached to a failure: a field that failed
// validation, a violated quota, a conflicting version.
//
// It is a view type. Adapters turn it into google.rpc error details
// (ErrorInfo metadata, BadRequest field violations) when a translator
// decides to expose it.
type Detail struct {
	// Type is a short classifier, e.g. "field", "quota", "conflict".
	Type string `json:"type,omitempty"`

	// Field is the logical path of the failing field, e.g. "deployment.replicas".
	// Empty for non-field details.
	Field string `json:"field,omitempty"`

	// Reason is a short explanation such as "required" or "too_long".
	Reason string `json:"reason,omitempty"`

	// Info carries extra string data that survives proto/JSON round-trips.
	Info map[string]string `json:"info,omitempty"`
}
