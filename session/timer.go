package session

import (
	"time"
)

// FrameTimer measures the average duration of frames over a window of
// frames.
type FrameTimer struct {
	window  int
	samples []time.Duration
	prev    time.Time
	now     func() time.Time
}

// NewFrameTimer creates a timer averaging over window frames.
func NewFrameTimer(window int) *FrameTimer {
	return newFrameTimer(window, time.Now)
}

func newFrameTimer(window int, now func() time.Time) *FrameTimer {
	return &FrameTimer{
		window:  window,
		samples: make([]time.Duration, 0, window+1),
		prev:    now(),
		now:     now,
	}
}

// Tick marks the end of a frame. Once more than window frames have been
// seen, it returns the average duration of the first window of them, at
// least one nanosecond, and starts over.
func (ft *FrameTimer) Tick() (time.Duration, bool) {
	now := ft.now()
	ft.samples = append(ft.samples, now.Sub(ft.prev))
	ft.prev = now
	if len(ft.samples) <= ft.window {
		return 0, false
	}
	var sum time.Duration
	for _, d := range ft.samples[:ft.window] {
		sum += d
	}
	ft.samples = ft.samples[:0]
	return max(sum/time.Duration(ft.window), time.Nanosecond), true
}

// FPS converts an average frame duration to frames per second.
func FPS(avg time.Duration) int64 {
	return int64(time.Second / max(avg, time.Nanosecond))
}
