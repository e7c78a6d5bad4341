package game

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/navadeep2604/Reflex-Rush/internal/common/clock"
	"github.com/navadeep2604/Reflex-Rush/internal/common/uuid"
	"github.com/navadeep2604/Reflex-Rush/internal/display"
	"github.com/navadeep2604/Reflex-Rush/internal/history"
	"github.com/navadeep2604/Reflex-Rush/internal/leaderboard"
	"github.com/navadeep2604/Reflex-Rush/internal/models"
	archiveRepo "github.com/navadeep2604/Reflex-Rush/internal/repositories/archive"
	historyRepo "github.com/navadeep2604/Reflex-Rush/internal/repositories/history"
	leaderboardRepo "github.com/navadeep2604/Reflex-Rush/internal/repositories/leaderboard"
	"github.com/navadeep2604/Reflex-Rush/internal/scoring"
	"github.com/navadeep2604/Reflex-Rush/internal/services/messaging"
	"github.com/navadeep2604/Reflex-Rush/internal/timing"
	"github.com/navadeep2604/Reflex-Rush/internal/touch"
)

// Outbound notices broadcast outside of command responses
const (
	MsgHistoryTruncated      = "WARNING: History truncated"
	MsgHistorySaveFailed     = "ERROR: Failed to write history"
	MsgLeaderboardSaveFailed = "ERROR: Failed to write leaderboard"
)

// service implements the Service interface
type service struct {
	config    *Config
	clock     clock.Clock
	uuid      uuid.UUID
	roller    timing.Roller
	channels  []*touch.Channel
	log       *history.Log
	board     *leaderboard.Store
	device    display.Device
	messaging messaging.Service

	historyRepo     historyRepo.Repository
	leaderboardRepo leaderboardRepo.Repository
	archiveRepo     archiveRepo.Repository

	// mu serializes every operation against the running round, so
	// commands arriving mid-round are answered once the round ends.
	mu sync.Mutex

	// playing lets a second StartRound fail fast instead of queueing
	// behind the round it would only duplicate.
	playing atomic.Bool

	// phase is readable without the mutex so displays can follow the
	// sequence while the round goroutine holds mu.
	phase atomic.Value

	session models.Session
}

// NewService creates a new game service. Persisted history and
// leaderboard state is loaded immediately; a storage failure at this
// point degrades to empty in-memory state rather than failing.
func NewService(ctx context.Context, cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	maxPlayers := cfg.MaxPlayers
	if maxPlayers == 0 {
		maxPlayers = DefaultMaxPlayers
	}
	if maxPlayers < 1 {
		return nil, ErrInvalidMaxPlayers
	}

	redRange := cfg.RedRange
	if redRange == (PhaseRange{}) {
		redRange = DefaultRedRange
	}
	yellowRange := cfg.YellowRange
	if yellowRange == (PhaseRange{}) {
		yellowRange = DefaultYellowRange
	}
	greenRange := cfg.GreenRange
	if greenRange == (PhaseRange{}) {
		greenRange = DefaultGreenRange
	}
	if !redRange.Valid() || !yellowRange.Valid() || !greenRange.Valid() {
		return nil, ErrInvalidPhaseRange
	}

	pollInterval := cfg.PollInterval
	if pollInterval == 0 {
		pollInterval = DefaultPollInterval
	}
	if pollInterval < 0 {
		return nil, ErrInvalidPollInterval
	}

	if len(cfg.Channels) != maxPlayers {
		return nil, ErrChannelCountMismatch
	}
	if cfg.History == nil || cfg.Board == nil {
		return nil, ErrNilConfig
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	ids := cfg.UUID
	if ids == nil {
		ids = uuid.New()
	}

	roller := cfg.Roller
	if roller == nil {
		roller = timing.New(nil)
	}

	device := cfg.Device
	if device == nil {
		device = display.Noop{}
	}

	resolved := *cfg
	resolved.MaxPlayers = maxPlayers
	resolved.RedRange = redRange
	resolved.YellowRange = yellowRange
	resolved.GreenRange = greenRange
	resolved.PollInterval = pollInterval

	s := &service{
		config:          &resolved,
		clock:           clk,
		uuid:            ids,
		roller:          roller,
		channels:        cfg.Channels,
		log:             cfg.History,
		board:           cfg.Board,
		device:          device,
		messaging:       cfg.Messaging,
		historyRepo:     cfg.HistoryRepo,
		leaderboardRepo: cfg.LeaderboardRepo,
		archiveRepo:     cfg.ArchiveRepo,
	}
	s.phase.Store(models.PhaseIdle)

	s.session = models.Session{
		NumberOfPlayers: 1,
		Slots:           make([]models.Slot, maxPlayers),
	}
	for i := range s.session.Slots {
		s.session.Slots[i] = models.Slot{
			Index: i,
			Name:  models.DefaultSlotName(i),
		}
	}

	s.loadPersisted(ctx)

	return s, nil
}

// StartRound runs one full red/yellow/green sequence. Only one round
// can run at a time; a concurrent attempt fails with
// ErrRoundInProgress. Touch channels stay live the whole time via
// TriggerTouch, which never takes the service mutex.
func (s *service) StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if !s.playing.CompareAndSwap(false, true) {
		return nil, ErrRoundInProgress
	}
	defer s.playing.Store(false)

	s.mu.Lock()
	defer s.mu.Unlock()

	active := s.session.ActiveSlots()
	names := make([]string, len(active))
	for i, slot := range active {
		names[i] = slot.Name
	}

	// No round is active yet, so a trigger racing this reset can only
	// be a stale between-rounds touch.
	for _, ch := range s.channels {
		ch.Reset()
	}

	log.Printf("game: round starting with %d players", len(active))

	s.setPhase(models.PhaseRed)
	s.waitPhase(s.roller.DurationBetween(s.config.RedRange.Min, s.config.RedRange.Max), true)

	s.setPhase(models.PhaseYellow)
	s.waitPhase(s.roller.DurationBetween(s.config.YellowRange.Min, s.config.YellowRange.Max), true)

	// Catch a touch that landed in the final yellow tick, before the
	// green instant is recorded.
	s.pollJumpstarts()

	s.setPhase(models.PhaseGreen)
	greenStart := s.clock.Now()
	s.waitPhase(s.roller.DurationBetween(s.config.GreenRange.Min, s.config.GreenRange.Max), false)

	results := make([]models.SlotResult, len(active))
	outcomes := make([]models.Outcome, len(active))
	for i, slot := range active {
		outcome := scoring.Score(s.channels[slot.Index].Capture(), greenStart)
		outcomes[i] = outcome
		results[i] = models.SlotResult{
			Slot:    slot.Index,
			Name:    names[i],
			Outcome: outcome,
		}
	}

	block := scoring.RenderBlock(names, outcomes)
	round := &models.Round{
		ID:       s.uuid.NewUUID(),
		PlayedAt: s.clock.Now(),
		Results:  results,
	}

	s.setPhase(models.PhaseIdle)
	s.device.ShowResults(block)
	s.announce(block)

	truncated := s.log.Append(block)
	if truncated {
		log.Printf("game: history truncated at %d bytes", s.log.Len())
		s.announce(MsgHistoryTruncated)
	}

	for _, result := range results {
		s.board.Update(result.Slot, result.Name, result.Outcome)
	}

	s.persist(ctx)
	s.archive(ctx, round)

	log.Printf("game: round %s complete", round.ID)

	return &StartRoundOutput{
		Round:            round,
		ResultBlock:      block,
		HistoryTruncated: truncated,
	}, nil
}

// TriggerTouch fires a touch edge on a slot's channel
func (s *service) TriggerTouch(slot int) bool {
	if slot < 0 || slot >= len(s.channels) {
		return false
	}
	return s.channels[slot].Trigger()
}

// Phase returns the traffic light phase currently showing
func (s *service) Phase() models.Phase {
	return s.phase.Load().(models.Phase)
}

func (s *service) setPhase(phase models.Phase) {
	s.phase.Store(phase)
	s.device.ShowPhase(phase)
}

// waitPhase blocks for the phase duration. During red and yellow every
// tick polls the active channels so a premature touch is flagged the
// moment it lands, before any later timestamp could shadow it.
func (s *service) waitPhase(duration time.Duration, poll bool) {
	deadline := s.clock.Now().Add(duration)
	for {
		if poll {
			s.pollJumpstarts()
		}

		remaining := deadline.Sub(s.clock.Now())
		if remaining <= 0 {
			return
		}

		step := s.config.PollInterval
		if step > remaining {
			step = remaining
		}
		s.clock.Sleep(step)
	}
}

func (s *service) pollJumpstarts() {
	for _, slot := range s.session.ActiveSlots() {
		ch := s.channels[slot.Index]
		if ch.Captured() && !ch.Jumpstarted() {
			ch.MarkJumpstart()
			log.Printf("game: %s jumped the start", slot.Name)
		}
	}
}

func (s *service) announce(text string) {
	if s.messaging != nil {
		s.messaging.Announce(text)
	}
}

// persist writes the history and leaderboard blobs after a round. A
// write failure is reported outbound and the round result stands; the
// in-memory state is already updated.
func (s *service) persist(ctx context.Context) {
	if s.historyRepo != nil {
		err := s.historyRepo.Save(ctx, &historyRepo.SaveInput{
			Contents: s.log.Snapshot(),
		})
		if err != nil {
			log.Printf("game: failed to save history: %v", err)
			s.announce(MsgHistorySaveFailed)
		}
	}

	if s.leaderboardRepo != nil {
		err := s.leaderboardRepo.Save(ctx, &leaderboardRepo.SaveInput{
			Encoded: s.board.Encode(),
		})
		if err != nil {
			log.Printf("game: failed to save leaderboard: %v", err)
			s.announce(MsgLeaderboardSaveFailed)
		}
	}
}

func (s *service) archive(ctx context.Context, round *models.Round) {
	if s.archiveRepo == nil {
		return
	}

	err := s.archiveRepo.SaveRound(ctx, &archiveRepo.SaveRoundInput{
		Round: round,
	})
	if err != nil {
		log.Printf("game: failed to archive round %s: %v", round.ID, err)
	}
}
