package corridor

import (
	"fmt"
	"time"
)

// LogCategory classifies a message logged through a Context.
type LogCategory int

const (
	LogProgress LogCategory = 1 + iota
	LogWarning
	LogError
)

// TimerLabel enumerates the named phases of the generation pipeline (§2),
// used to key accumulated timings on a Context. Mirrors the shape of
// recast.TimerLabel: a plain int enum plus a trailing max-value sentinel
// for iteration.
type TimerLabel int

const (
	TimerTotal TimerLabel = iota
	TimerArchitect
	TimerMaskGenerate
	TimerSolveLayer
	TimerEdgeSeal
	TimerRegionIdentify
	TimerWeld
	maxTimers
)

// RunInfo records the grid parameters a single Generate call ran with, so a
// BuildContext's final summary can report what configuration its timings
// belong to instead of a bare duration table.
type RunInfo struct {
	Width, Length, Height int32
	Seed                  uint32
	Fullness              int32
}

// LayerStats is the per-layer cell accounting Generate records once
// SolveLayer has finished a layer: how many cells ended up collapsed vs. voided out by
// the mask, seal, or void-trim passes.
type LayerStats struct {
	Collapsed int
	Void      int
}

// Contexter is the pluggable sidecar the core is instrumented against
// (spec §6's "debug/profile sidecar interface"). The core only ever calls
// through this interface; in release builds the nopContexter behind
// NopContext makes every call
// a no-op, and the core must not depend on any of Contexter's side
// effects for correctness.
type Contexter interface {
	doResetLog()
	doLog(category LogCategory, msg string)
	doResetTimers()
	doStartTimer(label TimerLabel)
	doStopTimer(label TimerLabel)
	doAccumulatedTime(label TimerLabel) time.Duration
	doSetRunInfo(info RunInfo)
	doRecordLayerStats(z int, stats LayerStats)
}

// Context gates calls to a Contexter behind enable flags, exactly as
// recast.Context does: disabling logging or timers makes the corresponding
// calls into free no-ops without the Contexter implementation needing to
// check anything itself.
type Context struct {
	logEnabled   bool
	timerEnabled bool
	Contexter
}

// NewContext wraps ctxer, enabling or disabling logging and timers
// together according to enabled.
func NewContext(enabled bool, ctxer Contexter) *Context {
	return &Context{logEnabled: enabled, timerEnabled: enabled, Contexter: ctxer}
}

// NopContext returns a Context backed by a Contexter whose every method is
// a no-op — the default the core runs under when the caller supplies
// nothing (spec §6: "the core treats these as no-ops in release builds").
func NopContext() *Context {
	return NewContext(false, nopContexter{})
}

func (c *Context) EnableLog(state bool)   { c.logEnabled = state }
func (c *Context) EnableTimer(state bool) { c.timerEnabled = state }

func (c *Context) ResetLog() {
	if c.logEnabled {
		c.doResetLog()
	}
}

func (c *Context) ResetTimers() {
	if c.timerEnabled {
		c.doResetTimers()
	}
}

func (c *Context) Log(category LogCategory, msg string) {
	if c.logEnabled {
		c.doLog(category, msg)
	}
}

func (c *Context) Progressf(format string, args ...interface{}) {
	c.Log(LogProgress, fmt.Sprintf(format, args...))
}

func (c *Context) Warningf(format string, args ...interface{}) {
	c.Log(LogWarning, fmt.Sprintf(format, args...))
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.Log(LogError, fmt.Sprintf(format, args...))
}

func (c *Context) StartTimer(label TimerLabel) {
	if c.timerEnabled {
		c.doStartTimer(label)
	}
}

func (c *Context) StopTimer(label TimerLabel) {
	if c.timerEnabled {
		c.doStopTimer(label)
	}
}

func (c *Context) AccumulatedTime(label TimerLabel) time.Duration {
	if !c.timerEnabled {
		return 0
	}
	return c.doAccumulatedTime(label)
}

// SetRunInfo records the grid parameters the current Generate call is
// running with (mirrors the original C generator's
// cgsme_profile_set_runinfo, which stashes the run configuration for a
// decorated summary line at shutdown instead of threading it through every
// log call by hand).
func (c *Context) SetRunInfo(info RunInfo) {
	if c.logEnabled {
		c.doSetRunInfo(info)
	}
}

// RecordLayerStats reports how many of a finished layer's cells ended up
// collapsed vs. voided, keyed by layer index. Generate calls this once
// per layer after that layer's SolveLayer returns, giving a BuildContext's summary something
// domain-specific to report beyond raw phase timings.
func (c *Context) RecordLayerStats(z int, stats LayerStats) {
	if c.logEnabled {
		c.doRecordLayerStats(z, stats)
	}
}

type nopContexter struct{}

func (nopContexter) doResetLog()                               {}
func (nopContexter) doLog(LogCategory, string)                  {}
func (nopContexter) doResetTimers()                             {}
func (nopContexter) doStartTimer(TimerLabel)                    {}
func (nopContexter) doStopTimer(TimerLabel)                     {}
func (nopContexter) doAccumulatedTime(TimerLabel) time.Duration { return 0 }
func (nopContexter) doSetRunInfo(RunInfo)                       {}
func (nopContexter) doRecordLayerStats(int, LayerStats)         {}
