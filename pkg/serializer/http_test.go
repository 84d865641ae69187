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

package serializer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type testPayload struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func TestRespondJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := testPayload{
		Message: "success",
		Code:    200,
	}

	if err := RespondJSON(w, http.StatusOK, data); err != nil {
		t.Fatalf("RespondJSON failed: %v", err)
	}

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	contentType := w.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", contentType)
	}

	var result testPayload
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if result.Message != data.Message {
		t.Errorf("expected message %s, got %s", data.Message, result.Message)
	}

	if result.Code != data.Code {
		t.Errorf("expected code %d, got %d", data.Code, result.Code)
	}
}

func TestRespondJSON_DifferentStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"OK", http.StatusOK},
		{"Created", http.StatusCreated},
		{"BadRequest", http.StatusBadRequest},
		{"NotFound", http.StatusNotFound},
		{"InternalServerError", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			data := testPayload{Message: tt.name, Code: tt.statusCode}

			if err := RespondJSON(w, tt.statusCode, data); err != nil {
				t.Fatalf("RespondJSON failed: %v", err)
			}

			if w.Code != tt.statusCode {
				t.Errorf("expected status %d, got %d", tt.statusCode, w.Code)
			}
		})
	}
}

func TestRespondJSON_EncodingError(t *testing.T) {
	w := httptest.NewRecorder()

	// Channels cannot be marshaled to JSON
	badData := make(chan int)

	if err := RespondJSON(w, http.StatusOK, badData); err == nil {
		t.Error("expected error for unencodable data")
	}

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d for encoding error, got %d", http.StatusInternalServerError, w.Code)
	}

	if w.Body.Len() == 0 {
		t.Error("expected error message in body")
	}
}

func TestNewHttpReader_Defaults(t *testing.T) {
	r := NewHttpReader()

	if r.UserAgent != HttpReaderUserAgent {
		t.Errorf("expected user agent %q, got %q", HttpReaderUserAgent, r.UserAgent)
	}

	if r.Client == nil {
		t.Fatal("expected non-nil client")
	}

	if r.Client.Timeout != HttpReaderDefaultTimeout {
		t.Errorf("expected client timeout %v, got %v", HttpReaderDefaultTimeout, r.Client.Timeout)
	}
}

func TestNewHttpReader_Options(t *testing.T) {
	r := NewHttpReader(
		WithUserAgent("custom-agent"),
		WithTotalTimeout(5*time.Second),
		WithMaxIdleConns(42),
		WithInsecureSkipVerify(true),
	)

	if r.UserAgent != "custom-agent" {
		t.Errorf("expected custom user agent, got %q", r.UserAgent)
	}

	if r.Client.Timeout != 5*time.Second {
		t.Errorf("expected 5s client timeout, got %v", r.Client.Timeout)
	}

	tr, ok := r.Client.Transport.(*http.Transport)
	if !ok {
		t.Fatal("expected *http.Transport")
	}

	if tr.MaxIdleConns != 42 {
		t.Errorf("expected MaxIdleConns 42, got %d", tr.MaxIdleConns)
	}

	if tr.TLSClientConfig == nil || !tr.TLSClientConfig.InsecureSkipVerify {
		t.Error("expected InsecureSkipVerify on transport TLS config")
	}
}

func TestHttpReader_ReadWithContext(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/plain")
		if _, err := w.Write([]byte("hello")); err != nil {
			t.Errorf("write failed: %v", err)
		}
	}))
	defer server.Close()

	r := NewHttpReader()
	data, err := r.ReadWithContext(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("ReadWithContext failed: %v", err)
	}

	if string(data) != "hello" {
		t.Errorf("expected body %q, got %q", "hello", string(data))
	}

	if gotAgent != HttpReaderUserAgent {
		t.Errorf("expected user agent %q, got %q", HttpReaderUserAgent, gotAgent)
	}
}

func TestHttpReader_ReadNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	r := NewHttpReader()
	if _, err := r.Read(server.URL); err == nil {
		t.Error("expected error for non-200 status")
	}
}

func TestHttpReader_ReadEmptyURL(t *testing.T) {
	r := NewHttpReader()
	if _, err := r.Read(""); err == nil {
		t.Error("expected error for empty url")
	}
}

func TestReadJSON_Success(t *testing.T) {
	var gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		if err := RespondJSON(w, http.StatusOK, testPayload{Message: "hi", Code: 7}); err != nil {
			t.Errorf("RespondJSON failed: %v", err)
		}
	}))
	defer server.Close()

	var result testPayload
	if err := ReadJSON(context.Background(), nil, server.URL, &result); err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}

	if result.Message != "hi" || result.Code != 7 {
		t.Errorf("unexpected payload: %+v", result)
	}

	if gotAccept != "application/json" {
		t.Errorf("expected accept header application/json, got %q", gotAccept)
	}
}

func TestReadJSON_WrongContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		if _, err := w.Write([]byte("<html></html>")); err != nil {
			t.Errorf("write failed: %v", err)
		}
	}))
	defer server.Close()

	var result map[string]any
	if err := ReadJSON(context.Background(), nil, server.URL, &result); err == nil {
		t.Error("expected error for non-JSON content type")
	}
}

func TestReadJSON_InvalidBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte("{not json")); err != nil {
			t.Errorf("write failed: %v", err)
		}
	}))
	defer server.Close()

	var result map[string]any
	if err := ReadJSON(context.Background(), nil, server.URL, &result); err == nil {
		t.Error("expected error for invalid JSON body")
	}
}

func TestReadJSON_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var result map[string]any
	if err := ReadJSON(ctx, NewHttpReader(), server.URL, &result); err == nil {
		t.Error("expected error for canceled context")
	}
}
