package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type gridSuite struct {
	suite.Suite
}

func TestGridSuite(t *testing.T) {
	suite.Run(t, new(gridSuite))
}

func (s *gridSuite) TestWrap_SplitsAtColumnWidth() {
	lines := Wrap("abcdefgh", 3, 8)

	s.Equal([]string{"abc", "def", "gh"}, lines)
}

func (s *gridSuite) TestWrap_ClipsAtRowLimit() {
	lines := Wrap(strings.Repeat("x", 100), 10, 3)

	s.Len(lines, 3)
	for _, line := range lines {
		s.Len(line, 10)
	}
}

func (s *gridSuite) TestWrap_DefaultsToBoardDimensions() {
	lines := Wrap(strings.Repeat("y", GridCols*GridRows*2), 0, 0)

	s.Len(lines, GridRows)
	s.Len(lines[0], GridCols)
}

func (s *gridSuite) TestWrap_EmptyText() {
	s.Empty(Wrap("", 0, 0))
}
