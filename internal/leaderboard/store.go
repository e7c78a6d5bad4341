package leaderboard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/navadeep2604/Reflex-Rush/internal/models"
)

// DefaultCapacity is the number of slots the board tracks
const DefaultCapacity = 4

// Entry is one leaderboard row together with its slot position
type Entry struct {
	// Slot is the zero-based player position the time belongs to
	Slot int

	// Name is the player name that set the time
	Name string

	// Best is the fastest recorded reaction for the slot
	Best time.Duration
}

// Line formats the entry the way it is sent to clients
func (e Entry) Line() string {
	return fmt.Sprintf("%s: %d ms", e.Name, e.Best.Milliseconds())
}

// Store keeps the best reaction per slot. Rows are keyed by slot
// position, not by player name: when a slot is renamed, the next
// improvement overwrites the previous holder's name. Callers are
// expected to serialize access.
type Store struct {
	entries []models.LeaderboardEntry
}

// Config for the leaderboard store
type Config struct {
	// Capacity is the number of slots tracked.
	// Defaults to DefaultCapacity when zero.
	Capacity int
}

// New creates a new leaderboard store
func New(cfg *Config) (*Store, error) {
	capacity := DefaultCapacity
	if cfg != nil && cfg.Capacity != 0 {
		capacity = cfg.Capacity
	}

	if capacity < 1 {
		return nil, errors.New("capacity must be positive")
	}

	return &Store{
		entries: make([]models.LeaderboardEntry, capacity),
	}, nil
}

// Update records an outcome for a slot. Only valid reactions count, and
// only when the slot has no time yet or the new time is strictly faster.
// It reports whether the slot changed.
func (s *Store) Update(slot int, name string, outcome models.Outcome) bool {
	if slot < 0 || slot >= len(s.entries) {
		return false
	}

	if outcome.Kind != models.OutcomeReaction {
		return false
	}

	entry := &s.entries[slot]
	if entry.Best != 0 && outcome.Reaction >= entry.Best {
		return false
	}

	entry.Name = name
	entry.Best = outcome.Reaction
	return true
}

// Entries returns the rows that hold a recorded time, in slot order
func (s *Store) Entries() []Entry {
	var entries []Entry
	for i, e := range s.entries {
		if e.HasBest() {
			entries = append(entries, Entry{
				Slot: i,
				Name: e.Name,
				Best: e.Best,
			})
		}
	}

	return entries
}

// Encode serializes the board as one "name,milliseconds" line per slot,
// in slot order, including slots that hold no time yet.
func (s *Store) Encode() string {
	var b strings.Builder
	for _, e := range s.entries {
		fmt.Fprintf(&b, "%s,%d\n", e.Name, e.Best.Milliseconds())
	}

	return b.String()
}

// Decode replaces the board's contents from an encoded snapshot.
// Malformed lines leave their slot empty, and lines beyond the board's
// capacity are ignored.
func (s *Store) Decode(encoded string) {
	entries := make([]models.LeaderboardEntry, len(s.entries))

	lines := strings.Split(encoded, "\n")
	for i := 0; i < len(entries) && i < len(lines); i++ {
		name, msText, ok := strings.Cut(lines[i], ",")
		if !ok {
			continue
		}

		ms, err := strconv.Atoi(msText)
		if err != nil || ms <= 0 {
			continue
		}

		entries[i] = models.LeaderboardEntry{
			Name: name,
			Best: time.Duration(ms) * time.Millisecond,
		}
	}

	s.entries = entries
}
