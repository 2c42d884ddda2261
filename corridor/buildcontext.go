package corridor

import (
	"fmt"
	"sort"
	"time"
)

const maxLogMessages = 1000

// BuildContext is a ready-made Contexter, ported from recast.BuildContext
// for its log-buffer/timer mechanics and from the original C generator's
// cgsme_debug.c for the domain-specific summary it now carries: a
// BuildContext remembers the RunInfo a generation call ran with and the
// per-layer collapsed/void cell counts Generate records after each
// SolveLayer call, so DumpLog can
// print a configuration-and-yield summary alongside phase timings instead
// of just a bare duration table. Callers that want visibility into a
// generation run use NewContext(true, corridor.NewBuildContext()) instead
// of NopContext(); the core behaves identically either way.
type BuildContext struct {
	startTime [maxTimers]time.Time
	accTime   [maxTimers]time.Duration

	messages    [maxLogMessages]string
	numMessages int

	runInfo    RunInfo
	haveRun    bool
	layerStats map[int]LayerStats
}

// NewBuildContext creates a BuildContext with empty logs and zeroed timers.
func NewBuildContext() *BuildContext {
	return &BuildContext{layerStats: make(map[int]LayerStats)}
}

func (b *BuildContext) doResetLog() {
	b.numMessages = 0
}

func (b *BuildContext) doLog(category LogCategory, msg string) {
	if b.numMessages >= maxLogMessages {
		return
	}
	prefix := "PROG "
	switch category {
	case LogWarning:
		prefix = "WARN "
	case LogError:
		prefix = "ERR "
	}
	b.messages[b.numMessages] = prefix + msg
	b.numMessages++
}

func (b *BuildContext) doResetTimers() {
	for i := range b.accTime {
		b.accTime[i] = 0
	}
}

func (b *BuildContext) doStartTimer(label TimerLabel) {
	b.startTime[label] = time.Now()
}

func (b *BuildContext) doStopTimer(label TimerLabel) {
	b.accTime[label] += time.Since(b.startTime[label])
}

func (b *BuildContext) doAccumulatedTime(label TimerLabel) time.Duration {
	return b.accTime[label]
}

// AccumulatedTime returns the total time recorded for label.
func (b *BuildContext) AccumulatedTime(label TimerLabel) time.Duration {
	return b.accTime[label]
}

func (b *BuildContext) doSetRunInfo(info RunInfo) {
	b.runInfo = info
	b.haveRun = true
}

func (b *BuildContext) doRecordLayerStats(z int, stats LayerStats) {
	b.layerStats[z] = stats
}

// LayerStats returns the recorded stats for layer z and whether any were
// ever reported for it.
func (b *BuildContext) LayerStats(z int) (LayerStats, bool) {
	s, ok := b.layerStats[z]
	return s, ok
}

// LogCount returns the number of stored log messages.
func (b *BuildContext) LogCount() int { return b.numMessages }

// LogText returns the i'th stored log message.
func (b *BuildContext) LogText(i int) string { return b.messages[i] }

// DumpLog prints a header followed by every stored log message, the
// recorded RunInfo (if any), per-layer collapsed/void counts, and
// accumulated phase timings — a debugging convenience matching
// recast.BuildContext.DumpLog's message dump, extended with the decorated
// run-configuration summary cgsme_debug.c prints at shutdown.
func (b *BuildContext) DumpLog(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
	for i := 0; i < b.numMessages; i++ {
		fmt.Println(b.messages[i])
	}

	if b.haveRun {
		fmt.Printf("run: %dx%dx%d seed=%d fullness=%d\n",
			b.runInfo.Width, b.runInfo.Length, b.runInfo.Height,
			b.runInfo.Seed, b.runInfo.Fullness)
	}

	if len(b.layerStats) > 0 {
		zs := make([]int, 0, len(b.layerStats))
		for z := range b.layerStats {
			zs = append(zs, z)
		}
		sort.Ints(zs)
		for _, z := range zs {
			s := b.layerStats[z]
			fmt.Printf("layer %d: collapsed=%d void=%d\n", z, s.Collapsed, s.Void)
		}
	}

	for label := TimerLabel(0); label < maxTimers; label++ {
		fmt.Printf("timer %d: %v\n", label, b.accTime[label])
	}
}
