package game

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/navadeep2604/Reflex-Rush/internal/history"
	"github.com/navadeep2604/Reflex-Rush/internal/leaderboard"
	"github.com/navadeep2604/Reflex-Rush/internal/models"
	archiveRepo "github.com/navadeep2604/Reflex-Rush/internal/repositories/archive"
	archiveMocks "github.com/navadeep2604/Reflex-Rush/internal/repositories/archive/mocks"
	historyRepo "github.com/navadeep2604/Reflex-Rush/internal/repositories/history"
	historyMocks "github.com/navadeep2604/Reflex-Rush/internal/repositories/history/mocks"
	leaderboardRepo "github.com/navadeep2604/Reflex-Rush/internal/repositories/leaderboard"
	leaderboardMocks "github.com/navadeep2604/Reflex-Rush/internal/repositories/leaderboard/mocks"
	"github.com/navadeep2604/Reflex-Rush/internal/services/messaging"
	"github.com/navadeep2604/Reflex-Rush/internal/touch"
)

// scriptClock advances when the sequencer sleeps and fires scheduled
// callbacks at exact instants along the way, standing in for touches
// arriving asynchronously mid-round.
type scriptClock struct {
	mu     sync.Mutex
	now    time.Time
	events []clockEvent
}

type clockEvent struct {
	at   time.Time
	fire func()
}

func newScriptClock() *scriptClock {
	return &scriptClock{now: time.Unix(1700000000, 0)}
}

func (c *scriptClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *scriptClock) Sleep(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)

	for len(c.events) > 0 && !c.events[0].at.After(target) {
		event := c.events[0]
		c.events = c.events[1:]
		c.now = event.at

		// The callback may read the clock or trigger a channel.
		c.mu.Unlock()
		event.fire()
		c.mu.Lock()
	}

	c.now = target
	c.mu.Unlock()
}

// ScheduleAt arranges for fire to run when the clock reaches the given
// offset from its current time. Events must be scheduled in order.
func (c *scriptClock) ScheduleAt(offset time.Duration, fire func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, clockEvent{
		at:   c.now.Add(offset),
		fire: fire,
	})
}

// minRoller makes every phase exactly its minimum duration so tests can
// compute the phase boundaries: red 1000ms, yellow 500ms, green 1000ms
// with the default ranges.
type minRoller struct{}

func (minRoller) DurationBetween(min, max time.Duration) time.Duration {
	return min
}

// recordingHub captures every announced block
type recordingHub struct {
	mu     sync.Mutex
	blocks []string
}

func (h *recordingHub) Register(client messaging.Client) {}

func (h *recordingHub) Announce(text string) {
	h.mu.Lock()
	h.blocks = append(h.blocks, text)
	h.mu.Unlock()
}

func (h *recordingHub) Unregister(id string) {}

func (h *recordingHub) ClientCount() int { return 0 }

func (h *recordingHub) Blocks() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.blocks...)
}

type fixedUUID struct{}

func (fixedUUID) NewUUID() string { return "round-1" }

type serviceSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	clock    *scriptClock
	channels []*touch.Channel
	log      *history.Log
	board    *leaderboard.Store
	hub      *recordingHub
	svc      *service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(serviceSuite))
}

func (s *serviceSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.clock = newScriptClock()
	s.hub = &recordingHub{}

	s.channels = s.newChannels()

	historyLog, err := history.New(nil)
	s.Require().NoError(err)
	s.log = historyLog

	board, err := leaderboard.New(nil)
	s.Require().NoError(err)
	s.board = board

	svc, err := NewService(s.ctx, &Config{
		Clock:     s.clock,
		UUID:      fixedUUID{},
		Roller:    minRoller{},
		Channels:  s.channels,
		History:   s.log,
		Board:     s.board,
		Messaging: s.hub,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *serviceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *serviceSuite) newChannels() []*touch.Channel {
	channels := make([]*touch.Channel, DefaultMaxPlayers)
	for i := range channels {
		ch, err := touch.New(&touch.Config{Clock: s.clock})
		s.Require().NoError(err)
		channels[i] = ch
	}
	return channels
}

func (s *serviceSuite) TestNewService_Validation() {
	_, err := NewService(s.ctx, nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewService(s.ctx, &Config{
		Channels: s.channels,
		History:  s.log,
		Board:    s.board,
		RedRange: PhaseRange{Min: 2 * time.Second, Max: time.Second},
	})
	s.ErrorIs(err, ErrInvalidPhaseRange)

	_, err = NewService(s.ctx, &Config{
		Channels: s.channels[:2],
		History:  s.log,
		Board:    s.board,
	})
	s.ErrorIs(err, ErrChannelCountMismatch)
}

func (s *serviceSuite) TestSelectPlayers_Bounds() {
	for n := 1; n <= DefaultMaxPlayers; n++ {
		out, err := s.svc.SelectPlayers(s.ctx, &SelectPlayersInput{Count: n})
		s.Require().NoError(err)
		s.Equal(n, out.Count)
	}

	for _, n := range []int{0, 5, -1} {
		_, err := s.svc.SelectPlayers(s.ctx, &SelectPlayersInput{Count: n})
		s.ErrorIs(err, ErrInvalidPlayerCount)
	}

	// The last failure must not have disturbed the count
	session, err := s.svc.GetSession(s.ctx, &GetSessionInput{})
	s.Require().NoError(err)
	s.Equal(DefaultMaxPlayers, session.Session.NumberOfPlayers)
}

func (s *serviceSuite) TestSetPlayerName() {
	_, err := s.svc.SelectPlayers(s.ctx, &SelectPlayersInput{Count: 2})
	s.Require().NoError(err)

	out, err := s.svc.SetPlayerName(s.ctx, &SetPlayerNameInput{Player: 2, Name: "Maya"})
	s.Require().NoError(err)
	s.Equal("Maya", out.Name)

	session, err := s.svc.GetSession(s.ctx, &GetSessionInput{})
	s.Require().NoError(err)
	s.Equal("Maya", session.Session.Slots[1].Name)
	s.Equal("Player 1", session.Session.Slots[0].Name)
}

func (s *serviceSuite) TestSetPlayerName_Invalid() {
	_, err := s.svc.SelectPlayers(s.ctx, &SelectPlayersInput{Count: 2})
	s.Require().NoError(err)

	// Slot 3 exists on the board but is not active
	_, err = s.svc.SetPlayerName(s.ctx, &SetPlayerNameInput{Player: 3, Name: "Sam"})
	s.ErrorIs(err, ErrInvalidPlayerName)

	_, err = s.svc.SetPlayerName(s.ctx, &SetPlayerNameInput{Player: 0, Name: "Sam"})
	s.ErrorIs(err, ErrInvalidPlayerName)

	_, err = s.svc.SetPlayerName(s.ctx, &SetPlayerNameInput{Player: 1, Name: "   "})
	s.ErrorIs(err, ErrInvalidPlayerName)
}

// With minRoller the phases are red [0s, 1s), yellow [1s, 1.5s) and
// green [1.5s, 2.5s) from the moment StartRound begins.
const greenAt = 1500 * time.Millisecond

func (s *serviceSuite) TestStartRound_TwoPlayers() {
	_, err := s.svc.SelectPlayers(s.ctx, &SelectPlayersInput{Count: 2})
	s.Require().NoError(err)
	_, err = s.svc.SetPlayerName(s.ctx, &SetPlayerNameInput{Player: 1, Name: "Alice"})
	s.Require().NoError(err)
	_, err = s.svc.SetPlayerName(s.ctx, &SetPlayerNameInput{Player: 2, Name: "Bob"})
	s.Require().NoError(err)

	// Alice reacts 120ms after the green light; Bob never touches.
	s.clock.ScheduleAt(greenAt+120*time.Millisecond, func() {
		s.True(s.svc.TriggerTouch(0))
	})

	out, err := s.svc.StartRound(s.ctx, &StartRoundInput{})
	s.Require().NoError(err)

	s.Contains(out.ResultBlock, "Alice: 120 ms\n")
	s.Contains(out.ResultBlock, "Bob: No response\n")
	s.True(strings.HasPrefix(out.ResultBlock, "Game result: \n"))
	s.False(out.HistoryTruncated)

	s.Require().Len(out.Round.Results, 2)
	s.Equal(models.OutcomeReaction, out.Round.Results[0].Outcome.Kind)
	s.Equal(120*time.Millisecond, out.Round.Results[0].Outcome.Reaction)
	s.Equal(models.OutcomeNoResponse, out.Round.Results[1].Outcome.Kind)

	// History grew by exactly the block, leaderboard has Alice's time
	s.Equal(out.ResultBlock, s.log.Snapshot())
	entries := s.board.Entries()
	s.Require().Len(entries, 1)
	s.Equal(0, entries[0].Slot)
	s.Equal("Alice", entries[0].Name)
	s.Equal(120*time.Millisecond, entries[0].Best)

	// The block was announced to connected clients
	s.Contains(s.hub.Blocks(), out.ResultBlock)

	s.Equal(models.PhaseIdle, s.svc.Phase())
}

func (s *serviceSuite) TestStartRound_YellowTouchIsJumpstart() {
	_, err := s.svc.SelectPlayers(s.ctx, &SelectPlayersInput{Count: 1})
	s.Require().NoError(err)

	// Touch lands mid-yellow. Its raw timestamp is before the green
	// instant, but the jumpstart mark is what must decide the outcome.
	s.clock.ScheduleAt(1200*time.Millisecond, func() {
		s.True(s.svc.TriggerTouch(0))
	})

	out, err := s.svc.StartRound(s.ctx, &StartRoundInput{})
	s.Require().NoError(err)

	s.Require().Len(out.Round.Results, 1)
	s.Equal(models.OutcomeJumpstart, out.Round.Results[0].Outcome.Kind)
	s.Contains(out.ResultBlock, "Player 1: JS (Jumpstart)\n")

	// A jumpstart never reaches the leaderboard
	s.Empty(s.board.Entries())
}

func (s *serviceSuite) TestStartRound_RedTouchIsJumpstart() {
	_, err := s.svc.SelectPlayers(s.ctx, &SelectPlayersInput{Count: 1})
	s.Require().NoError(err)

	s.clock.ScheduleAt(400*time.Millisecond, func() {
		s.True(s.svc.TriggerTouch(0))
	})

	out, err := s.svc.StartRound(s.ctx, &StartRoundInput{})
	s.Require().NoError(err)

	s.Equal(models.OutcomeJumpstart, out.Round.Results[0].Outcome.Kind)
}

func (s *serviceSuite) TestStartRound_SecondStartFailsFast() {
	var racedErr error
	s.clock.ScheduleAt(700*time.Millisecond, func() {
		_, racedErr = s.svc.StartRound(s.ctx, &StartRoundInput{})
	})

	_, err := s.svc.StartRound(s.ctx, &StartRoundInput{})
	s.Require().NoError(err)

	s.ErrorIs(racedErr, ErrRoundInProgress)
}

func (s *serviceSuite) TestStartRound_InactiveSlotIgnored() {
	_, err := s.svc.SelectPlayers(s.ctx, &SelectPlayersInput{Count: 1})
	s.Require().NoError(err)

	// Slot 2 is not playing; its touch must not appear anywhere.
	s.clock.ScheduleAt(greenAt+80*time.Millisecond, func() {
		s.svc.TriggerTouch(2)
	})

	out, err := s.svc.StartRound(s.ctx, &StartRoundInput{})
	s.Require().NoError(err)

	s.Len(out.Round.Results, 1)
	s.Equal(models.OutcomeNoResponse, out.Round.Results[0].Outcome.Kind)
	s.Empty(s.board.Entries())
}

func (s *serviceSuite) TestStartRound_SlowerTimeKeepsBest() {
	_, err := s.svc.SelectPlayers(s.ctx, &SelectPlayersInput{Count: 1})
	s.Require().NoError(err)

	s.clock.ScheduleAt(greenAt+100*time.Millisecond, func() {
		s.svc.TriggerTouch(0)
	})
	_, err = s.svc.StartRound(s.ctx, &StartRoundInput{})
	s.Require().NoError(err)

	s.clock.ScheduleAt(greenAt+300*time.Millisecond, func() {
		s.svc.TriggerTouch(0)
	})
	_, err = s.svc.StartRound(s.ctx, &StartRoundInput{})
	s.Require().NoError(err)

	entries := s.board.Entries()
	s.Require().Len(entries, 1)
	s.Equal(100*time.Millisecond, entries[0].Best)
}

func (s *serviceSuite) TestStartRound_HistoryTruncationAnnounced() {
	smallLog, err := history.New(&history.Config{MaxSize: 40})
	s.Require().NoError(err)
	smallLog.Restore("previous round that nearly fills the log")

	svc, err := NewService(s.ctx, &Config{
		Clock:     s.clock,
		Roller:    minRoller{},
		Channels:  s.newChannels(),
		History:   smallLog,
		Board:     s.board,
		Messaging: s.hub,
	})
	s.Require().NoError(err)

	out, err := svc.StartRound(s.ctx, &StartRoundInput{})
	s.Require().NoError(err)

	s.True(out.HistoryTruncated)
	s.LessOrEqual(smallLog.Len(), 40)
	s.Contains(s.hub.Blocks(), MsgHistoryTruncated)
}

func (s *serviceSuite) TestStartRound_SaveFailureAnnounced() {
	historyMock := historyMocks.NewMockRepository(s.ctrl)
	leaderboardMock := leaderboardMocks.NewMockRepository(s.ctrl)

	historyMock.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, historyRepo.ErrHistoryNotFound)
	leaderboardMock.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, leaderboardRepo.ErrLeaderboardNotFound)

	historyMock.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	leaderboardMock.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	svc, err := NewService(s.ctx, &Config{
		Clock:           s.clock,
		Roller:          minRoller{},
		Channels:        s.newChannels(),
		History:         s.log,
		Board:           s.board,
		Messaging:       s.hub,
		HistoryRepo:     historyMock,
		LeaderboardRepo: leaderboardMock,
	})
	s.Require().NoError(err)

	out, err := svc.StartRound(s.ctx, &StartRoundInput{})
	s.Require().NoError(err)
	s.NotNil(out.Round)

	s.Contains(s.hub.Blocks(), MsgHistorySaveFailed)
	s.NotContains(s.hub.Blocks(), MsgLeaderboardSaveFailed)
}

func (s *serviceSuite) TestStartRound_ArchivesRound() {
	archiveMock := archiveMocks.NewMockRepository(s.ctrl)
	archiveMock.EXPECT().SaveRound(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, input *archiveRepo.SaveRoundInput) error {
			s.Equal("round-1", input.Round.ID)
			s.Len(input.Round.Results, 1)
			return nil
		})

	svc, err := NewService(s.ctx, &Config{
		Clock:       s.clock,
		UUID:        fixedUUID{},
		Roller:      minRoller{},
		Channels:    s.newChannels(),
		History:     s.log,
		Board:       s.board,
		ArchiveRepo: archiveMock,
	})
	s.Require().NoError(err)

	_, err = svc.StartRound(s.ctx, &StartRoundInput{})
	s.Require().NoError(err)
}

func (s *serviceSuite) TestGetHistory_Chunks() {
	s.log.Restore(strings.Repeat("x", 450))

	out, err := s.svc.GetHistory(s.ctx, &GetHistoryInput{})
	s.Require().NoError(err)
	s.Len(out.Snapshot, 450)
	s.Len(out.Chunks, 3)

	out, err = s.svc.GetHistory(s.ctx, &GetHistoryInput{ChunkSize: 100})
	s.Require().NoError(err)
	s.Len(out.Chunks, 5)
}

func (s *serviceSuite) TestDeleteHistory_InMemory() {
	_, err := s.svc.DeleteHistory(s.ctx, &DeleteHistoryInput{})
	s.ErrorIs(err, ErrHistoryNotFound)

	s.log.Restore("some rounds")

	_, err = s.svc.DeleteHistory(s.ctx, &DeleteHistoryInput{})
	s.Require().NoError(err)
	s.Equal(0, s.log.Len())
}

func (s *serviceSuite) TestNewService_RestoresPersistedState() {
	historyMock := historyMocks.NewMockRepository(s.ctrl)
	leaderboardMock := leaderboardMocks.NewMockRepository(s.ctrl)

	historyMock.EXPECT().Load(gomock.Any(), gomock.Any()).Return(&historyRepo.LoadOutput{
		Contents: "Game result: \nAlice: 150 ms\n",
	}, nil)
	leaderboardMock.EXPECT().Load(gomock.Any(), gomock.Any()).Return(&leaderboardRepo.LoadOutput{
		Encoded: "Alice,150\n,0\n,0\n,0\n",
	}, nil)

	_, err := NewService(s.ctx, &Config{
		Clock:           s.clock,
		Roller:          minRoller{},
		Channels:        s.newChannels(),
		History:         s.log,
		Board:           s.board,
		HistoryRepo:     historyMock,
		LeaderboardRepo: leaderboardMock,
	})
	s.Require().NoError(err)

	s.Equal("Game result: \nAlice: 150 ms\n", s.log.Snapshot())
	entries := s.board.Entries()
	s.Require().Len(entries, 1)
	s.Equal("Alice", entries[0].Name)
	s.Equal(150*time.Millisecond, entries[0].Best)
}

func (s *serviceSuite) TestNewService_DegradesWhenStorageDown() {
	historyMock := historyMocks.NewMockRepository(s.ctrl)
	historyMock.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	svc, err := NewService(s.ctx, &Config{
		Clock:       s.clock,
		Roller:      minRoller{},
		Channels:    s.newChannels(),
		History:     s.log,
		Board:       s.board,
		HistoryRepo: historyMock,
	})
	s.Require().NoError(err)
	s.Equal(0, s.log.Len())

	// The round still runs; the failed save is reported, not fatal.
	historyMock.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
	_, err = svc.StartRound(s.ctx, &StartRoundInput{})
	s.NoError(err)
}

func (s *serviceSuite) TestTriggerTouch_Bounds() {
	s.False(s.svc.TriggerTouch(-1))
	s.False(s.svc.TriggerTouch(DefaultMaxPlayers))
	s.True(s.svc.TriggerTouch(0))
}
