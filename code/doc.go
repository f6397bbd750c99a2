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

// Package code defines domain failure codes and their canonical form.
//
// A code is the coarse, transport-agnostic class of a failure ("invalid",
// "not_found", "quota_exceeded"). Codes are lowercase, underscore-separated
// and never empty. The mapper package turns them into tentative gRPC codes;
// translators may match on them to override that default.
package code
