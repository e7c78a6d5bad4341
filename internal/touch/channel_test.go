package touch

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// fakeClock is a manually advanced clock for exercising debounce windows
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1700000000, 0)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.Advance(d)
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type channelSuite struct {
	suite.Suite
	clock   *fakeClock
	channel *Channel
}

func TestChannelSuite(t *testing.T) {
	suite.Run(t, new(channelSuite))
}

func (s *channelSuite) SetupTest() {
	s.clock = newFakeClock()

	channel, err := New(&Config{
		Clock: s.clock,
	})
	s.Require().NoError(err)

	s.channel = channel
}

func (s *channelSuite) TestNew_RequiresConfig() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)
}

func (s *channelSuite) TestTrigger_LatchesFirstEdge() {
	latched := s.channel.Trigger()

	s.True(latched)
	s.True(s.channel.Captured())

	snap := s.channel.Capture()
	s.True(snap.Captured)
	s.False(snap.Jumpstart)
	s.Equal(s.clock.Now().UnixNano(), snap.CapturedAt.UnixNano())
}

func (s *channelSuite) TestTrigger_SecondEdgeIgnored() {
	s.Require().True(s.channel.Trigger())
	first := s.channel.Capture().CapturedAt

	s.clock.Advance(500 * time.Millisecond)
	s.False(s.channel.Trigger())

	s.Equal(first.UnixNano(), s.channel.Capture().CapturedAt.UnixNano())
}

func (s *channelSuite) TestTrigger_DebouncePersistsAcrossReset() {
	s.Require().True(s.channel.Trigger())

	s.channel.Reset()

	// Inside the debounce window of the previous accepted edge.
	s.clock.Advance(30 * time.Millisecond)
	s.False(s.channel.Trigger())
	s.False(s.channel.Captured())

	s.clock.Advance(21 * time.Millisecond)
	s.True(s.channel.Trigger())
}

func (s *channelSuite) TestTrigger_DebounceBoundaryIsExclusive() {
	s.Require().True(s.channel.Trigger())
	s.channel.Reset()

	s.clock.Advance(50 * time.Millisecond)
	s.False(s.channel.Trigger())

	s.clock.Advance(time.Nanosecond)
	s.True(s.channel.Trigger())
}

func (s *channelSuite) TestMarkJumpstart_Sticks() {
	s.Require().True(s.channel.Trigger())

	s.channel.MarkJumpstart()

	snap := s.channel.Capture()
	s.True(snap.Captured)
	s.True(snap.Jumpstart)
	s.True(snap.CapturedAt.IsZero())
	s.True(s.channel.Jumpstarted())
}

func (s *channelSuite) TestReset_ClearsCaptureState() {
	s.Require().True(s.channel.Trigger())
	s.channel.MarkJumpstart()

	s.channel.Reset()

	snap := s.channel.Capture()
	s.False(snap.Captured)
	s.False(snap.Jumpstart)
	s.True(snap.CapturedAt.IsZero())
}

func (s *channelSuite) TestTrigger_ExactlyOnceUnderContention() {
	var wg sync.WaitGroup
	var latched sync.Map

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if s.channel.Trigger() {
				latched.Store(n, true)
			}
		}(i)
	}
	wg.Wait()

	count := 0
	latched.Range(func(_, _ any) bool {
		count++
		return true
	})

	s.Equal(1, count)
	s.True(s.channel.Captured())
}
