package engine

import (
	"errors"
	"testing"

	"github.com/copaamateur/copa-backend/models"
)

// fullStandings builds ranked groups where group A holds teams 10 and 11,
// B holds 20 and 21, and so on.
func fullStandings() map[string][]*TeamStats {
	standings := make(map[string][]*TeamStats)
	for i, label := range Copa24.GroupLabels {
		base := (i + 1) * 10
		standings[label] = []*TeamStats{
			{TeamID: base},
			{TeamID: base + 1},
			{TeamID: base + 2},
			{TeamID: base + 3},
		}
	}
	return standings
}

func TestGenerateKnockoutPairingTable(t *testing.T) {
	fixtures, err := GenerateKnockout(Copa24, fullStandings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fixtures) != 6 {
		t.Fatalf("expected 6 fixtures, got %d", len(fixtures))
	}

	// 1A-2D, 1D-2A, 1B-2E, 1E-2B, 1C-2F, 1F-2C.
	want := [][2]int{
		{10, 41},
		{40, 11},
		{20, 51},
		{50, 21},
		{30, 61},
		{60, 31},
	}
	for i, f := range fixtures {
		if f.HomeTeamID != want[i][0] || f.AwayTeamID != want[i][1] {
			t.Fatalf("fixture %d: got %d-%d, want %d-%d", i+1, f.HomeTeamID, f.AwayTeamID, want[i][0], want[i][1])
		}
		if f.MatchNumber != i+1 {
			t.Fatalf("fixture %d has match number %d", i+1, f.MatchNumber)
		}
		if f.Phase != models.PhaseRoundOf16 {
			t.Fatalf("fixture %d has phase %s", i+1, f.Phase)
		}
		if f.GroupName != nil {
			t.Fatalf("knockout fixture %d carries a group name", i+1)
		}
	}
}

func TestGenerateKnockoutIncompleteStandings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string][]*TeamStats)
	}{
		{
			name:   "missing group",
			mutate: func(s map[string][]*TeamStats) { delete(s, "E") },
		},
		{
			name:   "group with a single ranked team",
			mutate: func(s map[string][]*TeamStats) { s["C"] = s["C"][:1] },
		},
		{
			name:   "empty group",
			mutate: func(s map[string][]*TeamStats) { s["A"] = nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			standings := fullStandings()
			tt.mutate(standings)
			fixtures, err := GenerateKnockout(Copa24, standings)
			if !errors.Is(err, ErrIncompleteStandings) {
				t.Fatalf("expected ErrIncompleteStandings, got %v", err)
			}
			if fixtures != nil {
				t.Fatal("expected no fixtures on error")
			}
		})
	}
}
