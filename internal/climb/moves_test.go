package climb

import (
	"strings"
	"testing"
)

func startMove() Move {
	return Move{SequenceIndex: 0, Time: 0, Dynamics: 0.3, Type: MoveStart}
}

func TestMoveSetRealMoves(t *testing.T) {
	set := MoveSet{
		startMove(),
		{SequenceIndex: 1, Time: 5, Dynamics: 0.5, Type: MoveDynamic},
		{SequenceIndex: 2, Time: 9, Dynamics: 1, IsCrux: true, Type: MoveDyno},
	}
	real := set.RealMoves()
	if len(real) != 2 {
		t.Fatalf("RealMoves() returned %d moves, want 2", len(real))
	}
	if real[0].SequenceIndex != 1 {
		t.Errorf("first real move has sequence index %d, want 1", real[0].SequenceIndex)
	}
	if (MoveSet{}).RealMoves() != nil {
		t.Errorf("empty set should have no real moves")
	}
}

func TestMoveSetCruxCount(t *testing.T) {
	set := MoveSet{
		startMove(),
		{SequenceIndex: 1, Time: 5, Dynamics: 0.5, Type: MoveStatic},
		{SequenceIndex: 2, Time: 9, Dynamics: 1, IsCrux: true, Type: MoveDyno},
		{SequenceIndex: 3, Time: 14, Dynamics: 0.9, IsCrux: true, Type: MovePowerful},
	}
	if got := set.CruxCount(); got != 2 {
		t.Errorf("CruxCount() = %d, want 2", got)
	}
}

func TestMoveSetSameShape(t *testing.T) {
	base := MoveSet{
		startMove(),
		{SequenceIndex: 1, Time: 5, Dynamics: 0.5, Type: MoveDynamic},
	}

	testCases := []struct {
		name  string
		other MoveSet
		want  bool
	}{
		{"identical", MoveSet{startMove(), {SequenceIndex: 1, Time: 5, Dynamics: 0.5, Type: MoveDynamic}}, true},
		{"different_length", MoveSet{startMove()}, false},
		{"different_dynamics", MoveSet{startMove(), {SequenceIndex: 1, Time: 5, Dynamics: 0.6, Type: MoveDynamic}}, false},
		{"different_crux", MoveSet{startMove(), {SequenceIndex: 1, Time: 5, Dynamics: 0.5, IsCrux: true, Type: MoveDynamic}}, false},
		{"time_only_change", MoveSet{startMove(), {SequenceIndex: 1, Time: 6, Dynamics: 0.5, Type: MoveDynamic}}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.SameShape(tc.other); got != tc.want {
				t.Errorf("SameShape() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMoveSetCheck(t *testing.T) {
	testCases := []struct {
		name      string
		set       MoveSet
		wantIssue string // substring of an expected issue, empty means sound
	}{
		{"empty", MoveSet{}, ""},
		{
			"sound",
			MoveSet{startMove(), {SequenceIndex: 1, Time: 5, Dynamics: 0.5, Type: MoveDynamic}},
			"",
		},
		{
			"broken_sequence",
			MoveSet{startMove(), {SequenceIndex: 3, Time: 5, Dynamics: 0.5, Type: MoveDynamic}},
			"not contiguous",
		},
		{
			"dynamics_out_of_range",
			MoveSet{startMove(), {SequenceIndex: 1, Time: 5, Dynamics: 1.2, Type: MoveDynamic}},
			"outside [0,1]",
		},
		{
			"time_regression",
			MoveSet{startMove(), {SequenceIndex: 1, Time: 5, Dynamics: 0.5, Type: MoveDynamic}, {SequenceIndex: 2, Time: 3, Dynamics: 0.4, Type: MoveStatic}},
			"earlier than",
		},
		{
			"missing_start",
			MoveSet{{SequenceIndex: 0, Time: 0, Dynamics: 0.5, Type: MoveDynamic}},
			"not the synthetic start",
		},
		{
			"crux_start",
			MoveSet{{SequenceIndex: 0, Time: 0, Dynamics: 0.3, IsCrux: true, Type: MoveStart}},
			"start move flagged",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			issues := tc.set.Check()
			if tc.wantIssue == "" {
				if len(issues) != 0 {
					t.Errorf("expected no issues, got %v", issues)
				}
				return
			}
			found := false
			for _, issue := range issues {
				if strings.Contains(issue, tc.wantIssue) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected an issue containing %q, got %v", tc.wantIssue, issues)
			}
		})
	}
}
