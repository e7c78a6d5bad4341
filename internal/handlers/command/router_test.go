package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/navadeep2604/Reflex-Rush/internal/leaderboard"
	"github.com/navadeep2604/Reflex-Rush/internal/services/game"
	"github.com/navadeep2604/Reflex-Rush/internal/services/game/mocks"
)

type routerSuite struct {
	suite.Suite
	ctx    context.Context
	ctrl   *gomock.Controller
	game   *mocks.MockService
	router *Router
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(routerSuite))
}

func (s *routerSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.game = mocks.NewMockService(s.ctrl)

	router, err := NewRouter(&Config{
		GameService: s.game,
		RemoteStart: true,
	})
	s.Require().NoError(err)
	s.router = router
}

func (s *routerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *routerSuite) TestSelectPlayers() {
	s.game.EXPECT().SelectPlayers(gomock.Any(), &game.SelectPlayersInput{Count: 3}).
		Return(&game.SelectPlayersOutput{Count: 3}, nil)

	responses := s.router.HandleLine(s.ctx, "SELECT_PLAYERS_3")
	s.Equal([]string{"OK: Players set to 3"}, responses)
}

func (s *routerSuite) TestSelectPlayers_OutOfRange() {
	for _, line := range []string{"SELECT_PLAYERS_0", "SELECT_PLAYERS_5"} {
		count := int(line[len(line)-1] - '0')
		s.game.EXPECT().SelectPlayers(gomock.Any(), &game.SelectPlayersInput{Count: count}).
			Return(nil, game.ErrInvalidPlayerCount)

		responses := s.router.HandleLine(s.ctx, line)
		s.Equal([]string{"ERROR: Invalid player count"}, responses)
	}
}

func (s *routerSuite) TestSelectPlayers_MalformedCount() {
	// No service call at all: the tokenizer rejects these outright
	for _, line := range []string{"SELECT_PLAYERS_", "SELECT_PLAYERS_2x", "SELECT_PLAYERS_two"} {
		responses := s.router.HandleLine(s.ctx, line)
		s.Equal([]string{"ERROR: Invalid player count"}, responses, line)
	}
}

func (s *routerSuite) TestSetPlayerName() {
	s.game.EXPECT().SetPlayerName(gomock.Any(), &game.SetPlayerNameInput{Player: 2, Name: "Maya"}).
		Return(&game.SetPlayerNameOutput{Player: 2, Name: "Maya"}, nil).Times(2)

	s.Equal([]string{"OK: Player 2 set to Maya"}, s.router.HandleLine(s.ctx, "SET_PLAYER_2 Maya"))
	s.Equal([]string{"OK: Player 2 set to Maya"}, s.router.HandleLine(s.ctx, "SET_PLAYER_2_Maya"))
}

func (s *routerSuite) TestSetPlayerName_Rejected() {
	s.game.EXPECT().SetPlayerName(gomock.Any(), &game.SetPlayerNameInput{Player: 9, Name: "Sam"}).
		Return(nil, game.ErrInvalidPlayerName)

	s.Equal([]string{"ERROR: Invalid player or name"}, s.router.HandleLine(s.ctx, "SET_PLAYER_9 Sam"))
}

func (s *routerSuite) TestSetPlayerName_Malformed() {
	for _, line := range []string{"SET_PLAYER_", "SET_PLAYER_2", "SET_PLAYER_x Maya", "SET_PLAYER_2-Maya"} {
		responses := s.router.HandleLine(s.ctx, line)
		s.Equal([]string{"ERROR: Invalid player or name"}, responses, line)
	}
}

func (s *routerSuite) TestStart() {
	started := make(chan struct{})
	s.game.EXPECT().StartRound(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, input *game.StartRoundInput) (*game.StartRoundOutput, error) {
			close(started)
			return &game.StartRoundOutput{}, nil
		})

	responses := s.router.HandleLine(s.ctx, "START")
	s.Equal([]string{"OK: Game started"}, responses)

	select {
	case <-started:
	case <-time.After(time.Second):
		s.Fail("round never started")
	}
}

func (s *routerSuite) TestStart_RemoteDisabled() {
	router, err := NewRouter(&Config{
		GameService: s.game,
		RemoteStart: false,
	})
	s.Require().NoError(err)

	// No response and no service call
	s.Nil(router.HandleLine(s.ctx, "START"))
}

func (s *routerSuite) TestViewHistory() {
	s.game.EXPECT().GetHistory(gomock.Any(), &game.GetHistoryInput{}).
		Return(&game.GetHistoryOutput{
			Snapshot: "chunk-onechunk-two",
			Chunks:   []string{"chunk-one", "chunk-two"},
		}, nil)

	responses := s.router.HandleLine(s.ctx, "VIEW_HISTORY")
	s.Equal([]string{"OK: Game history", "chunk-one", "chunk-two"}, responses)
}

func (s *routerSuite) TestViewLeaderboard() {
	s.game.EXPECT().GetLeaderboard(gomock.Any(), &game.GetLeaderboardInput{}).
		Return(&game.GetLeaderboardOutput{
			Entries: []leaderboard.Entry{
				{Slot: 0, Name: "Alice", Best: 120 * time.Millisecond},
				{Slot: 2, Name: "Cara", Best: 310 * time.Millisecond},
			},
		}, nil)

	responses := s.router.HandleLine(s.ctx, "VIEW_LEADERBOARD")
	s.Equal([]string{"OK: Leaderboard", "Alice: 120 ms", "Cara: 310 ms"}, responses)
}

func (s *routerSuite) TestDeleteHistory() {
	s.game.EXPECT().DeleteHistory(gomock.Any(), &game.DeleteHistoryInput{}).
		Return(&game.DeleteHistoryOutput{}, nil)

	s.Equal([]string{"OK: History deleted"}, s.router.HandleLine(s.ctx, "DELETE_HISTORY"))
}

func (s *routerSuite) TestDeleteHistory_Missing() {
	s.game.EXPECT().DeleteHistory(gomock.Any(), &game.DeleteHistoryInput{}).
		Return(nil, game.ErrHistoryNotFound)

	s.Equal([]string{"No history file found"}, s.router.HandleLine(s.ctx, "DELETE_HISTORY"))
}

func (s *routerSuite) TestUnknownCommand() {
	for _, line := range []string{"RESET", "start", "VIEW_HISTORY_ALL"} {
		responses := s.router.HandleLine(s.ctx, line)
		s.Equal([]string{"ERROR: Unknown command"}, responses, line)
	}
}

func (s *routerSuite) TestBlankLinesIgnored() {
	s.Nil(s.router.HandleLine(s.ctx, ""))
	s.Nil(s.router.HandleLine(s.ctx, "   \t"))
}

func (s *routerSuite) TestSurroundingWhitespaceTrimmed() {
	s.game.EXPECT().DeleteHistory(gomock.Any(), gomock.Any()).
		Return(&game.DeleteHistoryOutput{}, nil)

	s.Equal([]string{"OK: History deleted"}, s.router.HandleLine(s.ctx, "  DELETE_HISTORY  "))
}
