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
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// StreamOption defines a configuration option for Stream.
type StreamOption func(*Stream)

// WithPretty enables indented output using a two-space indent. The layout
// matches json.MarshalIndent so pretty fragments splice cleanly.
func WithPretty(pretty bool) StreamOption {
	return func(s *Stream) {
		s.pretty = pretty
	}
}

// WithBaseIndent shifts all pretty indentation by depth levels. Use it for
// fragment streams whose output will be spliced into an outer document at
// that nesting depth. It has no effect on compact output.
func WithBaseIndent(depth int) StreamOption {
	return func(s *Stream) {
		if depth > 0 {
			s.base = depth
		}
	}
}

// streamFrame tracks one open container on the stream.
type streamFrame struct {
	array   bool
	members int
	named   bool // object frame has a field name awaiting its value
}

// Stream writes a JSON value incrementally to an underlying writer.
//
// Stream enforces structural balance: every value inside an object must
// follow a Name, every End must match a Begin, and only one top-level value
// may be written. The first write error or structural misuse latches; all
// later operations become no-ops that return the latched error, which
// Err, Flush, and Close also report. Output is buffered; call Flush or
// Close to push it to the underlying writer.
//
// Stream is not safe for concurrent use.
type Stream struct {
	w      *bufio.Writer
	pretty bool
	base   int
	stack  []streamFrame
	roots  int
	err    error
}

// NewStream creates a Stream writing to w.
func NewStream(w io.Writer, opts ...StreamOption) *Stream {
	s := &Stream{
		w: bufio.NewWriter(w),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BeginObject opens a JSON object.
func (s *Stream) BeginObject() error {
	if err := s.beginValue(); err != nil {
		return err
	}
	if err := s.write("{"); err != nil {
		return err
	}
	s.stack = append(s.stack, streamFrame{})
	return nil
}

// EndObject closes the innermost open object.
func (s *Stream) EndObject() error {
	if s.err != nil {
		return s.err
	}
	if len(s.stack) == 0 || s.stack[len(s.stack)-1].array {
		return s.fail(errors.New("EndObject without matching BeginObject"))
	}
	frame := s.stack[len(s.stack)-1]
	if frame.named {
		return s.fail(errors.New("EndObject with a field name awaiting its value"))
	}
	s.stack = s.stack[:len(s.stack)-1]
	if frame.members > 0 && s.pretty {
		if err := s.write("\n" + s.indent(len(s.stack))); err != nil {
			return err
		}
	}
	if err := s.write("}"); err != nil {
		return err
	}
	s.endValue()
	return nil
}

// BeginArray opens a JSON array.
func (s *Stream) BeginArray() error {
	if err := s.beginValue(); err != nil {
		return err
	}
	if err := s.write("["); err != nil {
		return err
	}
	s.stack = append(s.stack, streamFrame{array: true})
	return nil
}

// EndArray closes the innermost open array.
func (s *Stream) EndArray() error {
	if s.err != nil {
		return s.err
	}
	if len(s.stack) == 0 || !s.stack[len(s.stack)-1].array {
		return s.fail(errors.New("EndArray without matching BeginArray"))
	}
	frame := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	if frame.members > 0 && s.pretty {
		if err := s.write("\n" + s.indent(len(s.stack))); err != nil {
			return err
		}
	}
	if err := s.write("]"); err != nil {
		return err
	}
	s.endValue()
	return nil
}

// Name writes a field name inside the innermost open object. The next
// value operation completes the member.
func (s *Stream) Name(name string) error {
	if s.err != nil {
		return s.err
	}
	if len(s.stack) == 0 || s.stack[len(s.stack)-1].array {
		return s.fail(fmt.Errorf("Name %q outside of an object", name))
	}
	frame := &s.stack[len(s.stack)-1]
	if frame.named {
		return s.fail(fmt.Errorf("Name %q while another field name awaits its value", name))
	}
	if frame.members > 0 {
		if err := s.write(","); err != nil {
			return err
		}
	}
	if s.pretty {
		if err := s.write("\n" + s.indent(len(s.stack))); err != nil {
			return err
		}
	}
	if err := s.writeQuoted(name); err != nil {
		return err
	}
	sep := ":"
	if s.pretty {
		sep = ": "
	}
	if err := s.write(sep); err != nil {
		return err
	}
	frame.named = true
	return nil
}

// String writes a string value.
func (s *Stream) String(v string) error {
	if err := s.beginValue(); err != nil {
		return err
	}
	if err := s.writeQuoted(v); err != nil {
		return err
	}
	s.endValue()
	return nil
}

// Int writes a signed integer value.
func (s *Stream) Int(v int64) error {
	if err := s.beginValue(); err != nil {
		return err
	}
	if err := s.write(strconv.FormatInt(v, 10)); err != nil {
		return err
	}
	s.endValue()
	return nil
}

// Uint writes an unsigned integer value.
func (s *Stream) Uint(v uint64) error {
	if err := s.beginValue(); err != nil {
		return err
	}
	if err := s.write(strconv.FormatUint(v, 10)); err != nil {
		return err
	}
	s.endValue()
	return nil
}

// Float writes a floating-point value. NaN and infinities have no JSON
// representation and latch an error instead of emitting invalid output.
func (s *Stream) Float(v float64) error {
	if s.err != nil {
		return s.err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return s.fail(fmt.Errorf("unsupported float value %v", v))
	}
	// encoding/json owns the number formatting so output stays
	// byte-identical with marshaled documents.
	b, err := json.Marshal(v)
	if err != nil {
		return s.fail(err)
	}
	if err := s.beginValue(); err != nil {
		return err
	}
	if err := s.write(string(b)); err != nil {
		return err
	}
	s.endValue()
	return nil
}

// Bool writes a boolean value.
func (s *Stream) Bool(v bool) error {
	if err := s.beginValue(); err != nil {
		return err
	}
	lit := "false"
	if v {
		lit = "true"
	}
	if err := s.write(lit); err != nil {
		return err
	}
	s.endValue()
	return nil
}

// Null writes a JSON null.
func (s *Stream) Null() error {
	if err := s.beginValue(); err != nil {
		return err
	}
	if err := s.write("null"); err != nil {
		return err
	}
	s.endValue()
	return nil
}

// Any writes an arbitrary value through encoding/json. In pretty mode the
// marshaled value is indented to align with the stream's current depth.
func (s *Stream) Any(v any) error {
	if s.err != nil {
		return s.err
	}
	var b []byte
	var err error
	if s.pretty {
		b, err = json.MarshalIndent(v, s.indent(len(s.stack)), "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return s.fail(err)
	}
	if err := s.beginValue(); err != nil {
		return err
	}
	if err := s.write(string(b)); err != nil {
		return err
	}
	s.endValue()
	return nil
}

// Raw splices an already-encoded JSON value into the stream. The fragment
// is written verbatim; callers producing pretty documents must have encoded
// it with a matching base indent.
func (s *Stream) Raw(fragment []byte) error {
	if err := s.beginValue(); err != nil {
		return err
	}
	if _, err := s.w.Write(fragment); err != nil {
		return s.fail(err)
	}
	s.endValue()
	return nil
}

// Depth returns the number of open containers.
func (s *Stream) Depth() int {
	return len(s.stack)
}

// Err returns the latched error, if any.
func (s *Stream) Err() error {
	return s.err
}

// Flush pushes buffered output to the underlying writer.
func (s *Stream) Flush() error {
	if s.err != nil {
		return s.err
	}
	if err := s.w.Flush(); err != nil {
		return s.fail(err)
	}
	return nil
}

// Close verifies that every container has been closed and flushes buffered
// output. A Stream that Closes without error has produced exactly one
// syntactically valid JSON value (or nothing, if no value was written).
func (s *Stream) Close() error {
	if s.err != nil {
		return s.err
	}
	if n := len(s.stack); n > 0 {
		return s.fail(fmt.Errorf("Close with %d open container(s)", n))
	}
	if err := s.w.Flush(); err != nil {
		return s.fail(err)
	}
	return nil
}

// beginValue validates that a value may appear here and writes the member
// separator and indentation that precede it. Field-name bookkeeping for
// object members is handled by Name.
func (s *Stream) beginValue() error {
	if s.err != nil {
		return s.err
	}
	if len(s.stack) == 0 {
		if s.roots > 0 {
			return s.fail(errors.New("multiple top-level values"))
		}
		return nil
	}
	frame := s.stack[len(s.stack)-1]
	if !frame.array {
		if !frame.named {
			return s.fail(errors.New("value inside object requires a preceding Name"))
		}
		return nil
	}
	if frame.members > 0 {
		if err := s.write(","); err != nil {
			return err
		}
	}
	if s.pretty {
		if err := s.write("\n" + s.indent(len(s.stack))); err != nil {
			return err
		}
	}
	return nil
}

// endValue records a completed value on the innermost frame.
func (s *Stream) endValue() {
	if len(s.stack) == 0 {
		s.roots++
		return
	}
	frame := &s.stack[len(s.stack)-1]
	frame.named = false
	frame.members++
}

func (s *Stream) write(p string) error {
	if s.err != nil {
		return s.err
	}
	if _, err := s.w.WriteString(p); err != nil {
		return s.fail(err)
	}
	return nil
}

func (s *Stream) writeQuoted(v string) error {
	// encoding/json owns string escaping, including HTML-unsafe runes.
	b, err := json.Marshal(v)
	if err != nil {
		return s.fail(err)
	}
	return s.write(string(b))
}

func (s *Stream) indent(depth int) string {
	return strings.Repeat("  ", s.base+depth)
}

// fail latches the first error; later operations keep returning it.
func (s *Stream) fail(err error) error {
	if s.err == nil {
		s.err = err
	}
	return s.err
}
