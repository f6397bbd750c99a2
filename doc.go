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

// Package dstatus turns handler failures into gRPC statuses and trailers.
//
// The root package holds Failure, the classified domain error handlers
// return. The rest of the module is layered:
//
//   - apis: the Translator contract and the capability interfaces;
//   - translate: composition (OrElse, Builder, Pipeline) and stock rules;
//   - mapper, code, reason: the table that derives tentative gRPC codes;
//   - derive: tentative status derivation for arbitrary errors;
//   - adapter: Failure to google.rpc error details;
//   - grpcx, httpx, ginx: transport adapters that run a Pipeline per failure.
package dstatus
