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

// Package serializer provides encoding of instrument documents in multiple formats.
//
// # Overview
//
// The serializer package has two layers. The low-level layer is Stream, a
// structural JSON writer that the document generator drives one token at a
// time (begin object, field name, scalar, end object). The high-level layer
// renders whole Go values into JSON, YAML, or a flattened table, and ships
// small HTTP helpers used by the API server and the fetch command.
//
// # Stream
//
// Stream writes JSON incrementally without building an intermediate value
// tree. It enforces structural balance (every EndObject has a BeginObject,
// every value inside an object follows a Name) and latches the first error,
// after which all later operations are no-ops:
//
//	s := serializer.NewStream(w, serializer.WithPretty(true))
//	s.BeginObject()
//	s.Name("count")
//	s.Int(5)
//	s.EndObject()
//	if err := s.Close(); err != nil {
//	    return err
//	}
//
// Compact output is byte-identical to encoding/json; pretty output is
// byte-identical to json.MarshalIndent with a two-space indent. Fragments
// written with WithBaseIndent splice seamlessly into a pretty document via
// Raw.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, indented representation
//   - Suitable for API responses and programmatic consumption
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - Suitable for saved documents and version control
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Two-column FIELD/VALUE output with dotted-path keys
//   - Suitable for terminal viewing
//   - Write-only (no deserialization support)
//
// # Usage - Formats
//
// Write to stdout (YAML):
//
//	w := serializer.NewStdoutWriter(serializer.FormatYAML)
//	if err := w.Serialize(ctx, doc); err != nil {
//	    log.Fatal(err)
//	}
//
// Write to a file, falling back to stdout when the path is empty:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatJSON, path)
//	defer serializer.CloseQuietly(w)
//	if err := w.Serialize(ctx, doc); err != nil {
//	    log.Fatal(err)
//	}
//
// # HTTP Helpers
//
// RespondJSON buffers the encoded body before writing headers so an encoding
// failure can still become a clean 500. HttpReader is a tuned HTTP client for
// fetching documents from a running daemon; ReadJSON layers a typed GET with
// status and content-type checks on top of it:
//
//	var doc map[string]any
//	err := serializer.ReadJSON(ctx, nil, url, &doc)
//
// # Integration
//
// Used throughout pulse:
//   - pkg/document - Stream drives document generation
//   - pkg/server - RespondJSON for health and error responses
//   - pkg/cli - fetch and snapshot output formatting
package serializer
