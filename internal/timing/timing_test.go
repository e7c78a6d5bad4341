package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type timingSuite struct {
	suite.Suite
}

func TestTimingSuite(t *testing.T) {
	suite.Run(t, new(timingSuite))
}

func (s *timingSuite) TestDurationBetween_StaysInRange() {
	roller := New(&Config{Seed: 42})

	min := 1000 * time.Millisecond
	max := 5000 * time.Millisecond

	for i := 0; i < 1000; i++ {
		d := roller.DurationBetween(min, max)
		s.GreaterOrEqual(d, min)
		s.Less(d, max)
	}
}

func (s *timingSuite) TestDurationBetween_SameSeedSameSequence() {
	a := New(&Config{Seed: 7})
	b := New(&Config{Seed: 7})

	for i := 0; i < 100; i++ {
		s.Equal(a.DurationBetween(500*time.Millisecond, 2*time.Second),
			b.DurationBetween(500*time.Millisecond, 2*time.Second))
	}
}

func (s *timingSuite) TestDurationBetween_DegenerateRange() {
	roller := New(&Config{Seed: 1})

	s.Equal(time.Second, roller.DurationBetween(time.Second, time.Second))
	s.Equal(time.Second, roller.DurationBetween(time.Second, 500*time.Millisecond))
}
