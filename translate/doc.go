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

// Package translate composes apis.Translator rules into failure-translation
// pipelines.
//
// # Evaluation model
//
// A pipeline is an ordered list of translators followed by a Fallback:
//
//  1. translators run left to right, in registration order;
//  2. the first one that answers decides the status, and the rest are not
//     called;
//  3. a translator that declines still keeps whatever it wrote into the
//     trailer metadata, and later translators see those writes;
//  4. when every translator declines, the Fallback answers. A Fallback
//     cannot decline, so a built Pipeline always produces a status.
//
// OrElse composes two translators without a fallback; the result may still
// decline and can itself be registered in a Builder. Nested OrElse calls are
// flattened, so OrElse(OrElse(a, b), c) and OrElse(a, OrElse(b, c)) are the
// same three-step chain, and OrElse(a, a) is just a.
//
// # Building
//
//	p, err := translate.NewBuilder(translate.Classify()).
//	    Add(translate.Annotate("x-handled-by", "billing")).
//	    Add(translate.OnCode(code.QuotaExceeded, codes.FailedPrecondition)).
//	    Build()
//
// Build rejects nil entries, so a misconfigured pipeline fails at startup
// instead of on the first failed request. The returned Pipeline is an
// immutable snapshot that is safe for concurrent use; each request must pass
// its own metadata.MD.
//
// Nothing in this package recovers panics or enforces timeouts: a translator
// that misbehaves is the caller's problem, and the adapters in grpcx and
// httpx handle it.
package translate
