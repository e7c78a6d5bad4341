package game

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/navadeep2604/Reflex-Rush/internal/models"
	historyRepo "github.com/navadeep2604/Reflex-Rush/internal/repositories/history"
	leaderboardRepo "github.com/navadeep2604/Reflex-Rush/internal/repositories/leaderboard"
)

// loadPersisted restores history and leaderboard state from storage.
// Missing records are normal on first run; any other failure is logged
// and the service carries on with empty in-memory state.
func (s *service) loadPersisted(ctx context.Context) {
	if s.historyRepo != nil {
		out, err := s.historyRepo.Load(ctx, &historyRepo.LoadInput{})
		switch {
		case err == nil:
			s.log.Restore(out.Contents)
			log.Printf("game: restored %d bytes of history", s.log.Len())
		case errors.Is(err, historyRepo.ErrHistoryNotFound):
			// first run
		default:
			log.Printf("game: history storage unavailable, starting empty: %v", err)
		}
	}

	if s.leaderboardRepo != nil {
		out, err := s.leaderboardRepo.Load(ctx, &leaderboardRepo.LoadInput{})
		switch {
		case err == nil:
			s.board.Decode(out.Encoded)
			log.Printf("game: restored leaderboard with %d entries", len(s.board.Entries()))
		case errors.Is(err, leaderboardRepo.ErrLeaderboardNotFound):
			// first run
		default:
			log.Printf("game: leaderboard storage unavailable, starting empty: %v", err)
		}
	}
}

// SelectPlayers sets how many slots take part in the next round
func (s *service) SelectPlayers(ctx context.Context, input *SelectPlayersInput) (*SelectPlayersOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Count < 1 || input.Count > s.config.MaxPlayers {
		return nil, ErrInvalidPlayerCount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.NumberOfPlayers = input.Count

	return &SelectPlayersOutput{
		Count: input.Count,
	}, nil
}

// SetPlayerName renames an active slot. The player number is one-based
// and must fall within the currently selected player count, not just
// the board's capacity.
func (s *service) SetPlayerName(ctx context.Context, input *SetPlayerNameInput) (*SetPlayerNameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidPlayerName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Player < 1 || input.Player > s.session.NumberOfPlayers {
		return nil, ErrInvalidPlayerName
	}

	s.session.Slots[input.Player-1].Name = name

	return &SetPlayerNameOutput{
		Player: input.Player,
		Name:   name,
	}, nil
}

// GetSession returns a copy of the current player configuration
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slots := make([]models.Slot, len(s.session.Slots))
	copy(slots, s.session.Slots)

	return &GetSessionOutput{
		Session: &models.Session{
			NumberOfPlayers: s.session.NumberOfPlayers,
			Slots:           slots,
		},
	}, nil
}

// GetHistory returns the accumulated result history
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return &GetHistoryOutput{
		Snapshot: s.log.Snapshot(),
		Chunks:   s.log.Chunks(input.ChunkSize),
	}, nil
}

// GetLeaderboard returns the best recorded time per slot
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return &GetLeaderboardOutput{
		Entries: s.board.Entries(),
	}, nil
}

// DeleteHistory clears the in-memory history and removes the stored
// record. ErrHistoryNotFound is returned when there is nothing to
// delete anywhere; a storage failure beyond that is logged and the
// in-memory clear stands.
func (s *service) DeleteHistory(ctx context.Context, input *DeleteHistoryInput) (*DeleteHistoryOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	hadContents := s.log.Len() > 0
	s.log.Clear()

	if s.historyRepo == nil {
		if !hadContents {
			return nil, ErrHistoryNotFound
		}
		return &DeleteHistoryOutput{}, nil
	}

	err := s.historyRepo.Delete(ctx, &historyRepo.DeleteInput{})
	switch {
	case err == nil:
		return &DeleteHistoryOutput{}, nil
	case errors.Is(err, historyRepo.ErrHistoryNotFound):
		if !hadContents {
			return nil, ErrHistoryNotFound
		}
		return &DeleteHistoryOutput{}, nil
	default:
		log.Printf("game: failed to delete stored history: %v", err)
		return &DeleteHistoryOutput{}, nil
	}
}
