package climb

import "sync"

// DefaultBufferCapacity bounds live recordings to roughly twenty
// minutes at 50 Hz.
const DefaultBufferCapacity = 60000

// SessionBuffer is a bounded accumulation buffer for live recordings.
// Streaming collaborators append samples as they arrive; the analysis
// pipeline reads immutable snapshots. Once capacity is reached the
// oldest samples are discarded.
type SessionBuffer struct {
	mu        sync.Mutex
	capacity  int
	samples   []Sample
	discarded int
}

// NewSessionBuffer creates a buffer holding at most capacity samples.
// Non-positive capacity falls back to DefaultBufferCapacity.
func NewSessionBuffer(capacity int) *SessionBuffer {
	if capacity <= 0 {
		capacity = DefaultBufferCapacity
	}
	return &SessionBuffer{capacity: capacity}
}

// Append adds samples in arrival order, discarding the oldest entries
// once the buffer is full.
func (b *SessionBuffer) Append(samples ...Sample) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.samples = append(b.samples, samples...)
	if over := len(b.samples) - b.capacity; over > 0 {
		n := copy(b.samples, b.samples[over:])
		b.samples = b.samples[:n]
		b.discarded += over
		tracef("buffer: discarded %d oldest samples (capacity %d)", over, b.capacity)
	}
}

// Snapshot returns an immutable copy of the buffered session. The copy
// shares no memory with the buffer, so later appends cannot disturb an
// analysis in flight.
func (b *SessionBuffer) Snapshot() Session {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Sample, len(b.samples))
	copy(out, b.samples)
	return Session{Samples: out}
}

// Len returns the number of buffered samples.
func (b *SessionBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.samples)
}

// Discarded returns the total number of samples dropped to stay within
// capacity.
func (b *SessionBuffer) Discarded() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.discarded
}

// Reset empties the buffer for a new recording.
func (b *SessionBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.samples = b.samples[:0]
	b.discarded = 0
}
