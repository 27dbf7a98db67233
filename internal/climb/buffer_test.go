package climb

import "testing"

func TestSessionBufferBounded(t *testing.T) {
	buf := NewSessionBuffer(5)
	for i := 0; i < 8; i++ {
		buf.Append(Sample{Time: float64(i), Magnitude: 9.8})
	}

	if got := buf.Len(); got != 5 {
		t.Errorf("Len() = %d, want 5", got)
	}
	if got := buf.Discarded(); got != 3 {
		t.Errorf("Discarded() = %d, want 3", got)
	}

	snap := buf.Snapshot()
	if snap.Samples[0].Time != 3 {
		t.Errorf("oldest surviving sample at t=%v, want t=3", snap.Samples[0].Time)
	}
	if snap.Samples[len(snap.Samples)-1].Time != 7 {
		t.Errorf("newest sample at t=%v, want t=7", snap.Samples[len(snap.Samples)-1].Time)
	}
}

func TestSessionBufferBatchAppendOverCapacity(t *testing.T) {
	buf := NewSessionBuffer(3)
	batch := make([]Sample, 10)
	for i := range batch {
		batch[i] = Sample{Time: float64(i), Magnitude: 9.8}
	}
	buf.Append(batch...)

	if got := buf.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if snap := buf.Snapshot(); snap.Samples[0].Time != 7 {
		t.Errorf("oldest surviving sample at t=%v, want t=7", snap.Samples[0].Time)
	}
}

func TestSessionBufferSnapshotIsolation(t *testing.T) {
	buf := NewSessionBuffer(10)
	buf.Append(Sample{Time: 0, Magnitude: 9.8})
	snap := buf.Snapshot()

	buf.Append(Sample{Time: 1, Magnitude: 15})
	if len(snap.Samples) != 1 {
		t.Errorf("snapshot grew after a later append")
	}

	snap.Samples[0].Magnitude = 0
	if buf.Snapshot().Samples[0].Magnitude != 9.8 {
		t.Errorf("mutating a snapshot leaked into the buffer")
	}
}

func TestSessionBufferReset(t *testing.T) {
	buf := NewSessionBuffer(2)
	buf.Append(Sample{Time: 0, Magnitude: 9.8}, Sample{Time: 1, Magnitude: 9.9}, Sample{Time: 2, Magnitude: 9.7})
	buf.Reset()

	if buf.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", buf.Len())
	}
	if buf.Discarded() != 0 {
		t.Errorf("Discarded() after Reset = %d, want 0", buf.Discarded())
	}
}

func TestSessionBufferDefaultCapacity(t *testing.T) {
	buf := NewSessionBuffer(0)
	buf.Append(Sample{Time: 0, Magnitude: 9.8})
	if buf.Len() != 1 {
		t.Errorf("buffer with fallback capacity rejected an append")
	}
}
