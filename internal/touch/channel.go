package touch

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/navadeep2604/Reflex-Rush/internal/common/clock"
	"github.com/navadeep2604/Reflex-Rush/internal/models"
)

// DefaultDebounce is the minimum gap between accepted edges on a channel
const DefaultDebounce = 50 * time.Millisecond

// Channel latches the first debounced touch on one player's sensor.
// Trigger may be called from any goroutine at any time, including while
// a round is polling the channel, so all state lives in atomics.
type Channel struct {
	clock    clock.Clock
	debounce time.Duration

	captured   atomic.Bool
	capturedAt atomic.Int64
	jumpstart  atomic.Bool

	// lastEdge is the time of the last accepted edge in nanoseconds.
	// It deliberately survives Reset so rapid edges across a round
	// boundary are still rejected.
	lastEdge atomic.Int64
}

// Config for a touch channel
type Config struct {
	// Clock is the time source for edge timestamps
	Clock clock.Clock

	// Debounce is the minimum gap between accepted edges.
	// Defaults to DefaultDebounce when zero.
	Debounce time.Duration
}

// New creates a new touch channel
func New(cfg *Config) (*Channel, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	debounce := cfg.Debounce
	if debounce == 0 {
		debounce = DefaultDebounce
	}

	return &Channel{
		clock:    cfg.Clock,
		debounce: debounce,
	}, nil
}

// Trigger records a touch edge. It returns true if the edge was latched,
// false if the channel already captured this round or the edge arrived
// inside the debounce window.
func (c *Channel) Trigger() bool {
	if c.captured.Load() {
		return false
	}

	now := c.clock.Now().UnixNano()
	if now-c.lastEdge.Load() <= int64(c.debounce) {
		return false
	}

	// First debounced edge wins; later edges this round are ignored.
	if !c.captured.CompareAndSwap(false, true) {
		return false
	}

	c.capturedAt.Store(now)
	c.lastEdge.Store(now)
	return true
}

// Captured reports whether the channel has latched a touch this round
func (c *Channel) Captured() bool {
	return c.captured.Load()
}

// Jumpstarted reports whether the latched touch was flagged as a jumpstart
func (c *Channel) Jumpstarted() bool {
	return c.jumpstart.Load()
}

// MarkJumpstart flags the latched touch as premature. The recorded
// timestamp is forced to zero so it can never read as a valid reaction,
// and the flag sticks for the rest of the round.
func (c *Channel) MarkJumpstart() {
	c.jumpstart.Store(true)
	c.capturedAt.Store(0)
}

// Reset clears the capture state for a new round. The debounce window
// is not reset.
func (c *Channel) Reset() {
	c.captured.Store(false)
	c.capturedAt.Store(0)
	c.jumpstart.Store(false)
}

// Capture returns a snapshot of the channel's state for scoring
func (c *Channel) Capture() models.Capture {
	snap := models.Capture{
		Captured:  c.captured.Load(),
		Jumpstart: c.jumpstart.Load(),
	}

	if at := c.capturedAt.Load(); at != 0 {
		snap.CapturedAt = time.Unix(0, at)
	}

	return snap
}
