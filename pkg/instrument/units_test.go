package instrument

import (
	"testing"
	"time"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Kind
		wantOK bool
	}{
		{name: "counter", input: "counter", want: KindCounter, wantOK: true},
		{name: "gauge", input: "gauge", want: KindGauge, wantOK: true},
		{name: "histogram", input: "histogram", want: KindHistogram, wantOK: true},
		{name: "meter", input: "meter", want: KindMeter, wantOK: true},
		{name: "timer", input: "timer", want: KindTimer, wantOK: true},
		{name: "unknown", input: "summary", want: "", wantOK: false},
		{name: "case sensitive", input: "Counter", want: "", wantOK: false},
		{name: "empty", input: "", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseKind(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseKind(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Unit
		wantOK bool
	}{
		{name: "nanoseconds", input: "nanoseconds", want: UnitNanoseconds, wantOK: true},
		{name: "seconds", input: "seconds", want: UnitSeconds, wantOK: true},
		{name: "hours", input: "hours", want: UnitHours, wantOK: true},
		{name: "singular rejected", input: "second", want: "", wantOK: false},
		{name: "unknown", input: "fortnights", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseUnit(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseUnit(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestUnitDuration(t *testing.T) {
	tests := []struct {
		unit Unit
		want time.Duration
	}{
		{UnitNanoseconds, time.Nanosecond},
		{UnitMicroseconds, time.Microsecond},
		{UnitMilliseconds, time.Millisecond},
		{UnitSeconds, time.Second},
		{UnitMinutes, time.Minute},
		{UnitHours, time.Hour},
		{Unit("fortnights"), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.unit), func(t *testing.T) {
			if got := tt.unit.Duration(); got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnitIsUnknown(t *testing.T) {
	for _, u := range Units {
		if u.IsUnknown() {
			t.Errorf("unit %s should be known", u)
		}
	}
	if !Unit("parsecs").IsUnknown() {
		t.Error("unexpected unit should be unknown")
	}
}
