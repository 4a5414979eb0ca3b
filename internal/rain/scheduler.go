package rain

import (
	"sync"
	"time"
)

// Scheduler calls a frame function repeatedly until stopped.
type Scheduler interface {
	Start(frame func(time.Time))
	Stop()
}

// TickerScheduler drives frames from a time.Ticker on its own goroutine.
// The frame function runs on that goroutine, so it should only hand the
// tick to the owner of the state (for example via tea.Program.Send).
type TickerScheduler struct {
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewTickerScheduler creates a stopped scheduler.
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	if interval <= 0 {
		interval = time.Second / 20
	}
	return &TickerScheduler{interval: interval}
}

// Start begins calling frame every interval. A running loop is stopped
// first, so there is never more than one.
func (s *TickerScheduler) Start(frame func(time.Time)) {
	s.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()

	stop := make(chan struct{})
	done := make(chan struct{})
	s.stop, s.done = stop, done

	go func() {
		defer close(done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case t := <-ticker.C:
				select {
				case <-stop:
					return
				default:
				}
				frame(t)
			}
		}
	}()
}

// Stop ends the loop and waits for its goroutine to exit. It is safe to
// call on a stopped scheduler.
func (s *TickerScheduler) Stop() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// Running reports whether a loop is active.
func (s *TickerScheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop != nil
}

// ManualClock is a Scheduler that only fires when told to.
type ManualClock struct {
	Now      time.Time
	Interval time.Duration

	frame func(time.Time)
	ticks int
}

// NewManualClock creates a clock starting at now.
func NewManualClock(now time.Time, interval time.Duration) *ManualClock {
	return &ManualClock{Now: now, Interval: interval}
}

// Start registers the frame function.
func (c *ManualClock) Start(frame func(time.Time)) {
	c.frame = frame
}

// Stop unregisters the frame function.
func (c *ManualClock) Stop() {
	c.frame = nil
}

// Running reports whether a frame function is registered.
func (c *ManualClock) Running() bool {
	return c.frame != nil
}

// Tick advances the clock by n intervals, firing one frame per interval.
// It returns the number of frames fired.
func (c *ManualClock) Tick(n int) int {
	fired := 0
	for i := 0; i < n && c.frame != nil; i++ {
		c.Now = c.Now.Add(c.Interval)
		c.ticks++
		c.frame(c.Now)
		fired++
	}
	return fired
}

// Ticks returns the total number of frames fired.
func (c *ManualClock) Ticks() int {
	return c.ticks
}
