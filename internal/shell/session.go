package shell

import (
	"math/rand/v2"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Delay bounds the simulated processing time before a command runs.
type Delay struct {
	Min time.Duration
	Max time.Duration
}

// DefaultDelay matches the pacing of a real shell prompt.
var DefaultDelay = Delay{Min: 200 * time.Millisecond, Max: 400 * time.Millisecond}

// Session ties history, transcript and dispatcher together and allows at
// most one command in flight.
type Session struct {
	History    *History
	Transcript *Transcript
	Dispatcher *Dispatcher

	delay   Delay
	rng     *rand.Rand
	log     *zap.Logger
	pending string
	busy    bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithDelay sets the latency bounds. A zero Max disables the delay.
func WithDelay(d Delay) SessionOption {
	return func(s *Session) { s.delay = d }
}

// WithRand sets the random source used for the delay.
func WithRand(r *rand.Rand) SessionOption {
	return func(s *Session) { s.rng = r }
}

// WithClock sets the transcript clock.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.Transcript.now = now }
}

// WithLogger sets the session logger.
func WithLogger(l *zap.Logger) SessionOption {
	return func(s *Session) { s.log = l }
}

// NewSession creates a session around a dispatcher.
func NewSession(d *Dispatcher, opts ...SessionOption) *Session {
	s := &Session{
		History:    NewHistory(),
		Transcript: NewTranscript(nil),
		Dispatcher: d,
		delay:      DefaultDelay,
		rng:        rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Busy reports whether a command is waiting to run.
func (s *Session) Busy() bool {
	return s.busy
}

// Begin reserves the session for raw and returns how long to wait before
// Run. ok is false for blank input or when another command is in flight.
func (s *Session) Begin(raw string) (wait time.Duration, ok bool) {
	if s.busy || strings.TrimSpace(raw) == "" {
		return 0, false
	}
	s.busy = true
	s.pending = raw
	return s.nextDelay(), true
}

// Run executes the command reserved by Begin.
func (s *Session) Run() Result {
	raw := s.pending
	s.pending = ""
	s.busy = false
	return s.Execute(raw)
}

// Execute dispatches raw immediately and records it. /clear empties the
// transcript instead of appending.
func (s *Session) Execute(raw string) Result {
	if strings.TrimSpace(raw) == "" {
		return Result{}
	}

	res := s.Dispatcher.Dispatch(raw)
	if res.Clear {
		s.Transcript.Clear()
		s.log.Debug("transcript cleared")
		return res
	}

	s.Transcript.Append(raw, res.Output)
	s.History.Push(raw)
	if res.Output.Kind == OutputUnknown {
		s.log.Info("unknown command", zap.String("input", raw))
	}
	return res
}

// Notice appends an informational entry with no input.
func (s *Session) Notice(text string) {
	s.Transcript.Append("", Output{Kind: OutputNotice, Text: text})
}

func (s *Session) nextDelay() time.Duration {
	if s.delay.Max <= 0 {
		return 0
	}
	if s.delay.Max <= s.delay.Min {
		return s.delay.Max
	}
	span := s.delay.Max - s.delay.Min
	return s.delay.Min + time.Duration(s.rng.Int64N(int64(span)+1))
}
