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

// Package adapter converts dstatus failures into google.rpc error details.
package adapter

import (
	"errors"
	"maps"
	"strings"

	"dirpx.dev/dstatus"
	"dirpx.dev/dstatus/apis"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
)

// MetaReason is the ErrorInfo metadata key that carries the failure reason.
const MetaReason = "reason"

// ToErrorInfo describes a coded failure as a google.rpc.ErrorInfo.
//
// Reason is the upper-cased domain code ("QUOTA_EXCEEDED"), following the
// ErrorInfo naming convention. Metadata holds the failure's Meta annotations
// plus its dotted reason under MetaReason. Nothing is redacted: callers
// decide what is safe to expose.
func ToErrorInfo(err apis.CodedError, domain string) *errdetails.ErrorInfo {
	if err == nil {
		return nil
	}
	info := &errdetails.ErrorInfo{
		Reason: strings.ToUpper(err.ErrorCode()),
		Domain: domain,
	}

	var f *dstatus.Failure
	if errors.As(err, &f) && len(f.Meta) > 0 {
		info.Metadata = maps.Clone(f.Meta)
	}
	var re apis.ReasonedError
	if errors.As(err, &re) && re.ErrorReason() != "" {
		if info.Metadata == nil {
			info.Metadata = make(map[string]string, 1)
		}
		info.Metadata[MetaReason] = re.ErrorReason()
	}
	return info
}

// ToBadRequest turns the field-level details of a failure into a
// google.rpc.BadRequest. Details without a Field are skipped; nil is
// returned when nothing is left.
func ToBadRequest(details []apis.Detail) *errdetails.BadRequest {
	var br *errdetails.BadRequest
	for _, d := range details {
		if d.Field == "" {
			continue
		}
		if br == nil {
			br = &errdetails.BadRequest{}
		}
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       d.Field,
			Description: d.Reason,
		})
	}
	return br
}
