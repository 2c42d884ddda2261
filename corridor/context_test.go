package corridor

import "testing"

func TestNopContextIsSafeNoop(t *testing.T) {
	ctx := NopContext()
	ctx.Progressf("hello %d", 1)
	ctx.Warningf("warn")
	ctx.Errorf("err")
	ctx.StartTimer(TimerTotal)
	ctx.StopTimer(TimerTotal)
	if d := ctx.AccumulatedTime(TimerTotal); d != 0 {
		t.Fatalf("expected NopContext timer to accumulate nothing, got %v", d)
	}
}

func TestBuildContextRecordsLogAndTimers(t *testing.T) {
	bc := NewBuildContext()
	ctx := NewContext(true, bc)

	ctx.Progressf("step %d", 1)
	ctx.Warningf("careful")
	ctx.Errorf("boom")

	if got := bc.LogCount(); got != 3 {
		t.Fatalf("LogCount() = %d, want 3", got)
	}

	ctx.StartTimer(TimerArchitect)
	ctx.StopTimer(TimerArchitect)
	if bc.AccumulatedTime(TimerArchitect) < 0 {
		t.Fatalf("expected non-negative accumulated time")
	}
}

func TestContextDisabledLoggingIsNoop(t *testing.T) {
	bc := NewBuildContext()
	ctx := NewContext(false, bc)
	ctx.Progressf("should not be recorded")
	if got := bc.LogCount(); got != 0 {
		t.Fatalf("LogCount() = %d, want 0 when logging disabled", got)
	}
}

func TestBuildContextRecordsRunInfoAndLayerStats(t *testing.T) {
	bc := NewBuildContext()
	ctx := NewContext(true, bc)

	ctx.SetRunInfo(RunInfo{Width: 16, Length: 16, Height: 3, Seed: 7, Fullness: 60})
	ctx.RecordLayerStats(0, LayerStats{Collapsed: 200, Void: 56})
	ctx.RecordLayerStats(1, LayerStats{Collapsed: 180, Void: 76})

	stats, ok := bc.LayerStats(0)
	if !ok || stats.Collapsed != 200 || stats.Void != 56 {
		t.Fatalf("LayerStats(0) = %+v, %v, want {200 56}, true", stats, ok)
	}
	if _, ok := bc.LayerStats(2); ok {
		t.Fatalf("expected no stats recorded for layer 2")
	}
}

func TestContextDisabledSkipsRunInfoAndLayerStats(t *testing.T) {
	bc := NewBuildContext()
	ctx := NewContext(false, bc)

	ctx.SetRunInfo(RunInfo{Width: 8, Length: 8, Height: 1, Seed: 1, Fullness: 100})
	ctx.RecordLayerStats(0, LayerStats{Collapsed: 64})

	if _, ok := bc.LayerStats(0); ok {
		t.Fatalf("expected no layer stats recorded when logging disabled")
	}
}
