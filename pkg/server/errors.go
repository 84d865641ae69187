// Copyright (c) 2025, Pulse Metrics Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"errors"
	"net/http"
	"time"

	pulseerrors "github.com/pulsemetrics/pulse/pkg/errors"
	"github.com/pulsemetrics/pulse/pkg/serializer"

	"github.com/google/uuid"
)

// ErrorResponse is the JSON body written for every error response.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// HTTPStatusFromCode maps a structured error code to an HTTP status code.
// Unknown codes map to 500.
func HTTPStatusFromCode(code pulseerrors.ErrorCode) int {
	switch code {
	case pulseerrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case pulseerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case pulseerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case pulseerrors.ErrCodeConflict:
		return http.StatusConflict
	case pulseerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case pulseerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case pulseerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// retryableFromCode reports whether a client may reasonably retry the
// request for the given error code.
func retryableFromCode(code pulseerrors.ErrorCode) bool {
	switch code {
	case pulseerrors.ErrCodeTimeout,
		pulseerrors.ErrCodeUnavailable,
		pulseerrors.ErrCodeRateLimitExceeded,
		pulseerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails combines two detail maps, with values from b overwriting
// values from a on key collisions. Returns nil when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}

	merged := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		merged[k] = v
	}
	return merged
}

// WriteError writes a structured error response. The request ID is taken
// from the request context when the middleware stored one, otherwise a
// fresh ID is generated so the response is always traceable.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code pulseerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr derives the response from err. Structured errors carry
// their own code, message, and context; anything else becomes a 500 with
// the fallback message. extraDetails are merged into the response details,
// and the underlying cause is exposed under the "error" key.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, extraDetails map[string]any) {

	var serr *pulseerrors.StructuredError
	if errors.As(err, &serr) {
		details := mergeDetails(serr.Context, extraDetails)
		if serr.Cause != nil {
			if details == nil {
				details = map[string]any{}
			}
			details["error"] = serr.Cause.Error()
		}

		WriteError(w, r, HTTPStatusFromCode(serr.Code), serr.Code, serr.Message,
			retryableFromCode(serr.Code), details)
		return
	}

	details := mergeDetails(nil, extraDetails)
	if err != nil {
		if details == nil {
			details = map[string]any{}
		}
		details["error"] = err.Error()
	}

	WriteError(w, r, http.StatusInternalServerError, pulseerrors.ErrCodeInternal,
		fallbackMessage, true, details)
}
