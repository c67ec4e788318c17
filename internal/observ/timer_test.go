package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerSummary(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("catalog")
	tm.End(idx, "83 entries")
	tm.End(99, "ignored")
	tm.Record("module:Main", 2*time.Millisecond, "")

	report := tm.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("phases = %d", len(report.Phases))
	}
	if report.Phases[1].DurationMS != 2 {
		t.Fatalf("recorded duration = %v", report.Phases[1].DurationMS)
	}
	s := tm.Summary()
	for _, want := range []string{"catalog", "// 83 entries", "module:Main", "total"} {
		if !strings.Contains(s, want) {
			t.Fatalf("summary missing %q:\n%s", want, s)
		}
	}
}

func TestTimerConcurrentRecord(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.End(tm.Begin("module"), "")
		}()
	}
	wg.Wait()
	if n := len(tm.Report().Phases); n != 16 {
		t.Fatalf("phases = %d", n)
	}
}

func TestEmptyReport(t *testing.T) {
	if r := NewTimer().Report(); r.TotalMS != 0 || len(r.Phases) != 0 {
		t.Fatalf("unexpected %+v", r)
	}
}
