package util

import "time"

// Profiler samples a monotonic clock for elapsed-time measurement. The
// zero value is ready to use.
type Profiler struct {
	start time.Time
}

// NewProfiler returns a Profiler started at the current instant.
func NewProfiler() Profiler { return Profiler{start: time.Now()} }

// Reset restarts the profiler at the current instant.
func (p *Profiler) Reset() { p.start = time.Now() }

// Elapsed returns the duration since the profiler was started or reset.
func (p Profiler) Elapsed() time.Duration { return time.Since(p.start) }

// ElapsedNanos returns Elapsed as an integer nanosecond count.
func (p Profiler) ElapsedNanos() int64 { return p.Elapsed().Nanoseconds() }

// ElapsedMicros returns Elapsed as an integer microsecond count.
func (p Profiler) ElapsedMicros() int64 { return p.Elapsed().Microseconds() }

// ElapsedMillis returns Elapsed as an integer millisecond count.
func (p Profiler) ElapsedMillis() int64 { return p.Elapsed().Milliseconds() }

// ElapsedSeconds returns Elapsed as a floating-point second count.
func (p Profiler) ElapsedSeconds() float64 { return p.Elapsed().Seconds() }
