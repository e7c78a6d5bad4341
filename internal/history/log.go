package history

import "errors"

const (
	// DefaultMaxSize is the byte bound on the in-memory history
	DefaultMaxSize = 10000

	// DefaultChunkSize is the transmission chunk size for history replay
	DefaultChunkSize = 200
)

// Log accumulates result blocks up to a fixed byte bound. When an append
// would push the log past the bound, the log restarts with just the new
// block so recent rounds are never lost to old ones. Callers are
// expected to serialize access.
type Log struct {
	maxSize   int
	chunkSize int
	contents  string
}

// Config for the history log
type Config struct {
	// MaxSize is the byte bound on the log.
	// Defaults to DefaultMaxSize when zero.
	MaxSize int

	// ChunkSize is the default chunk size for Chunks.
	// Defaults to DefaultChunkSize when zero.
	ChunkSize int
}

// New creates a new history log
func New(cfg *Config) (*Log, error) {
	maxSize := DefaultMaxSize
	chunkSize := DefaultChunkSize

	if cfg != nil {
		if cfg.MaxSize != 0 {
			maxSize = cfg.MaxSize
		}
		if cfg.ChunkSize != 0 {
			chunkSize = cfg.ChunkSize
		}
	}

	if maxSize < 1 {
		return nil, errors.New("max size must be positive")
	}

	if chunkSize < 1 {
		return nil, errors.New("chunk size must be positive")
	}

	return &Log{
		maxSize:   maxSize,
		chunkSize: chunkSize,
	}, nil
}

// Append adds a result block to the log. It reports whether existing
// contents were discarded, or the block clipped, to honor the bound.
func (l *Log) Append(block string) bool {
	clipped := false
	if len(block) > l.maxSize {
		block = block[:l.maxSize]
		clipped = true
	}

	if len(l.contents)+len(block) > l.maxSize {
		l.contents = block
		return true
	}

	l.contents += block
	return clipped
}

// Snapshot returns the full contents of the log
func (l *Log) Snapshot() string {
	return l.contents
}

// Len returns the current size of the log in bytes
func (l *Log) Len() int {
	return len(l.contents)
}

// Clear discards the log's contents
func (l *Log) Clear() {
	l.contents = ""
}

// Restore replaces the log's contents from a persisted snapshot. If the
// snapshot exceeds the bound, the newest tail is kept.
func (l *Log) Restore(contents string) {
	if len(contents) > l.maxSize {
		contents = contents[len(contents)-l.maxSize:]
	}

	l.contents = contents
}

// Chunks splits the log into successive fixed-size pieces for replay
// over a narrow channel. A non-positive size uses the configured chunk
// size.
func (l *Log) Chunks(size int) []string {
	if size <= 0 {
		size = l.chunkSize
	}

	var chunks []string
	for i := 0; i < len(l.contents); i += size {
		end := i + size
		if end > len(l.contents) {
			end = len(l.contents)
		}
		chunks = append(chunks, l.contents[i:end])
	}

	return chunks
}
