package climb

import "fmt"

// MoveType labels the character of a detected move.
type MoveType string

const (
	// MoveStart marks the synthetic move prepended at the session start.
	MoveStart MoveType = "start"
	// MoveStatic covers controlled, low-acceleration movement.
	MoveStatic MoveType = "static"
	// MovePowerful covers strong pulls and lock-offs.
	MovePowerful MoveType = "powerful"
	// MoveDynamic covers fast weight transfers.
	MoveDynamic MoveType = "dynamic"
	// MoveDyno covers full jumps, the highest acceleration band.
	MoveDyno MoveType = "dyno"
)

// ValidMoveTypes contains all move type values.
var ValidMoveTypes = []MoveType{MoveStart, MoveStatic, MovePowerful, MoveDynamic, MoveDyno}

// Move is one detected climbing move and its per-move metrics. Moves
// are produced once per analysis pass and never mutated afterwards.
type Move struct {
	SequenceIndex int      `json:"sequence_index"` // 0 is the synthetic start move
	Time          float64  `json:"time"`           // seconds from session start
	RawMagnitude  float64  `json:"raw_magnitude"`  // smoothed acceleration at the peak (m/s²)
	AvgSpeed      float64  `json:"avg_speed"`      // windowed speed proxy, not physical speed
	Dynamics      float64  `json:"dynamics"`       // normalized intensity in [0,1]
	IsCrux        bool     `json:"is_crux"`
	Type          MoveType `json:"move_type"`
}

// MoveSet is the ordered result of analyzing one session: index 0 is
// the synthetic start move, detected moves follow in time order. A set
// is replaced wholesale on re-analysis, never patched.
type MoveSet []Move

// RealMoves returns the detected moves, excluding the synthetic start.
func (m MoveSet) RealMoves() []Move {
	if len(m) == 0 {
		return nil
	}
	return m[1:]
}

// CruxCount returns the number of moves flagged as crux.
func (m MoveSet) CruxCount() int {
	n := 0
	for _, mv := range m {
		if mv.IsCrux {
			n++
		}
	}
	return n
}

// SameShape reports whether two move sets would produce identical ring
// geometry: same length and, per move, same dynamics and crux flag.
// The update controller uses this to decide between a structural
// rebuild and leaving existing geometry alone.
func (m MoveSet) SameShape(o MoveSet) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if m[i].Dynamics != o[i].Dynamics || m[i].IsCrux != o[i].IsCrux {
			return false
		}
	}
	return true
}

// Check validates the ordering and range invariants of the move set
// and returns the violations found, empty when the set is sound.
func (m MoveSet) Check() []string {
	var issues []string
	for i, mv := range m {
		if mv.SequenceIndex != i {
			issues = append(issues, fmt.Sprintf("move %d: sequence index %d not contiguous", i, mv.SequenceIndex))
		}
		if mv.Dynamics < 0 || mv.Dynamics > 1 || !isFinite(mv.Dynamics) {
			issues = append(issues, fmt.Sprintf("move %d: dynamics %v outside [0,1]", i, mv.Dynamics))
		}
		if i > 0 && mv.Time < m[i-1].Time {
			issues = append(issues, fmt.Sprintf("move %d: time %.3f earlier than move %d", i, mv.Time, i-1))
		}
	}
	if len(m) > 0 {
		if m[0].Type != MoveStart {
			issues = append(issues, "move 0 is not the synthetic start move")
		}
		if m[0].IsCrux {
			issues = append(issues, "start move flagged as crux")
		}
	}
	return issues
}
