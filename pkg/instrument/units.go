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

package instrument

import "time"

// Unit names a span of time used to express rates and durations.
// The lower-case plural form is the serialized representation.
type Unit string

const (
	UnitNanoseconds  Unit = "nanoseconds"
	UnitMicroseconds Unit = "microseconds"
	UnitMilliseconds Unit = "milliseconds"
	UnitSeconds      Unit = "seconds"
	UnitMinutes      Unit = "minutes"
	UnitHours        Unit = "hours"
)

// Units is the list of all supported time units.
var Units = []Unit{
	UnitNanoseconds,
	UnitMicroseconds,
	UnitMilliseconds,
	UnitSeconds,
	UnitMinutes,
	UnitHours,
}

// String returns the string representation of the Unit.
func (u Unit) String() string {
	return string(u)
}

// IsUnknown reports whether the unit is outside the supported set.
func (u Unit) IsUnknown() bool {
	for _, known := range Units {
		if u == known {
			return false
		}
	}
	return true
}

// Duration returns the span of one unit, or 0 for an unknown unit.
func (u Unit) Duration() time.Duration {
	switch u {
	case UnitNanoseconds:
		return time.Nanosecond
	case UnitMicroseconds:
		return time.Microsecond
	case UnitMilliseconds:
		return time.Millisecond
	case UnitSeconds:
		return time.Second
	case UnitMinutes:
		return time.Minute
	case UnitHours:
		return time.Hour
	default:
		return 0
	}
}

// ParseUnit parses a string into a Unit.
// Returns the Unit and true if parsing succeeds, or empty Unit and false if the string is invalid.
func ParseUnit(s string) (Unit, bool) {
	for _, u := range Units {
		if string(u) == s {
			return u, true
		}
	}
	return "", false
}
