package instrument

import (
	"math"
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually advanced clock shared by meter and timer tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMeterStartsAtZero(t *testing.T) {
	m := NewMeter("requests")

	if got := m.Count(); got != 0 {
		t.Errorf("expected count 0, got %d", got)
	}
	for name, rate := range map[string]float64{
		"mean": m.MeanRate(),
		"m1":   m.Rate1(),
		"m5":   m.Rate5(),
		"m15":  m.Rate15(),
	} {
		if rate != 0 {
			t.Errorf("expected %s rate 0 for idle meter, got %v", name, rate)
		}
		if math.IsNaN(rate) {
			t.Errorf("%s rate must not be NaN", name)
		}
	}
}

func TestMeterIdentity(t *testing.T) {
	m := NewMeter("requests", WithRateUnit(UnitMinutes))

	if got := m.EventType(); got != "requests" {
		t.Errorf("expected event type 'requests', got %q", got)
	}
	if got := m.RateUnit(); got != UnitMinutes {
		t.Errorf("expected rate unit minutes, got %s", got)
	}
	if got := m.Kind(); got != KindMeter {
		t.Errorf("expected kind %s, got %s", KindMeter, got)
	}
}

func TestMeterUnknownRateUnitIgnored(t *testing.T) {
	m := NewMeter("requests", WithRateUnit(Unit("fortnights")))

	if got := m.RateUnit(); got != UnitSeconds {
		t.Errorf("unknown unit should keep the seconds default, got %s", got)
	}
}

func TestMeterMeanRate(t *testing.T) {
	clock := newFakeClock()
	m := NewMeter("requests", WithMeterClock(clock.Now))

	m.Mark(10)
	clock.Advance(10 * time.Second)

	if got := m.Count(); got != 10 {
		t.Errorf("expected count 10, got %d", got)
	}
	if got := m.MeanRate(); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("expected mean rate 1/s, got %v", got)
	}
}

func TestMeterMovingRatesSeedOnFirstTick(t *testing.T) {
	clock := newFakeClock()
	m := NewMeter("requests", WithMeterClock(clock.Now))

	m.Mark(3)
	clock.Advance(5 * time.Second)

	for name, got := range map[string]float64{
		"m1":  m.Rate1(),
		"m5":  m.Rate5(),
		"m15": m.Rate15(),
	} {
		if math.Abs(got-0.6) > 1e-9 {
			t.Errorf("expected %s to seed at 0.6/s, got %v", name, got)
		}
	}
}

func TestMeterMovingRatesDecay(t *testing.T) {
	clock := newFakeClock()
	m := NewMeter("requests", WithMeterClock(clock.Now))

	m.Mark(3)
	clock.Advance(5 * time.Second)

	// Seed the averages, then let a minute pass with no events.
	if got := m.Rate1(); math.Abs(got-0.6) > 1e-9 {
		t.Fatalf("expected seeded m1 0.6/s, got %v", got)
	}
	clock.Advance(1 * time.Minute)

	if got := m.Rate1(); math.Abs(got-0.22072766) > 1e-6 {
		t.Errorf("expected m1 ~0.22072766 after a quiet minute, got %v", got)
	}
	if got := m.Rate5(); math.Abs(got-0.49123845) > 1e-6 {
		t.Errorf("expected m5 ~0.49123845 after a quiet minute, got %v", got)
	}
	if got := m.Rate15(); math.Abs(got-0.56130419) > 1e-6 {
		t.Errorf("expected m15 ~0.56130419 after a quiet minute, got %v", got)
	}
	if got := m.Count(); got != 3 {
		t.Errorf("count must not decay, got %d", got)
	}
}

func TestMeterRateUnitScaling(t *testing.T) {
	clock := newFakeClock()
	m := NewMeter("jobs", WithMeterClock(clock.Now), WithRateUnit(UnitMinutes))

	m.Mark(3)
	clock.Advance(5 * time.Second)

	if got := m.Rate1(); math.Abs(got-36.0) > 1e-9 {
		t.Errorf("expected 0.6/s to read as 36/min, got %v", got)
	}
}

func TestMeterConcurrentMark(t *testing.T) {
	m := NewMeter("requests")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				m.Mark(1)
			}
		}()
	}
	wg.Wait()

	if got := m.Count(); got != 4000 {
		t.Errorf("expected count 4000, got %d", got)
	}
}
