package engine

import (
	"context"
	"errors"
	"testing"
)

func noHeadToHead(ctx context.Context, a, b int) (int, error) {
	return 0, nil
}

func TestRankTeamsKeyPrecedence(t *testing.T) {
	tests := []struct {
		name string
		rows []*TeamStats
		want []int
	}{
		{
			name: "points first",
			rows: []*TeamStats{
				{TeamID: 1, Points: 4},
				{TeamID: 2, Points: 9},
				{TeamID: 3, Points: 6},
			},
			want: []int{2, 3, 1},
		},
		{
			name: "goal difference breaks equal points",
			rows: []*TeamStats{
				{TeamID: 1, Points: 6, GoalDifference: -1},
				{TeamID: 2, Points: 6, GoalDifference: 3},
			},
			want: []int{2, 1},
		},
		{
			name: "goals for breaks equal gd",
			rows: []*TeamStats{
				{TeamID: 1, Points: 6, GoalDifference: 2, GoalsFor: 4},
				{TeamID: 2, Points: 6, GoalDifference: 2, GoalsFor: 7},
			},
			want: []int{2, 1},
		},
		{
			name: "fewer goals against wins",
			rows: []*TeamStats{
				{TeamID: 1, Points: 6, GoalsFor: 5, GoalsAgainst: 6},
				{TeamID: 2, Points: 6, GoalsFor: 5, GoalsAgainst: 2},
			},
			want: []int{2, 1},
		},
		{
			name: "fewer red cards wins",
			rows: []*TeamStats{
				{TeamID: 1, Points: 3, RedCards: 2},
				{TeamID: 2, Points: 3, RedCards: 0},
			},
			want: []int{2, 1},
		},
		{
			name: "fewer yellow cards wins",
			rows: []*TeamStats{
				{TeamID: 1, Points: 3, YellowCards: 5},
				{TeamID: 2, Points: 3, YellowCards: 1},
			},
			want: []int{2, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked, err := RankTeams(context.Background(), tt.rows, noHeadToHead)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for i, wantID := range tt.want {
				if ranked[i].TeamID != wantID {
					t.Fatalf("position %d: got team %d, want %d", i+1, ranked[i].TeamID, wantID)
				}
			}
		})
	}
}

func TestRankTeamsHeadToHeadSwap(t *testing.T) {
	// Both on 6 points and +2: the sort places team 1 first on goals
	// scored, but team 2 won the direct match and must be promoted.
	rows := []*TeamStats{
		{TeamID: 1, Points: 6, GoalDifference: 2, GoalsFor: 8},
		{TeamID: 2, Points: 6, GoalDifference: 2, GoalsFor: 5},
	}
	h2h := func(ctx context.Context, a, b int) (int, error) {
		if a == 1 && b == 2 {
			return -1, nil
		}
		return 0, nil
	}

	ranked, err := RankTeams(context.Background(), rows, h2h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ranked[0].TeamID != 2 || ranked[1].TeamID != 1 {
		t.Fatalf("expected head-to-head swap, got order %d, %d", ranked[0].TeamID, ranked[1].TeamID)
	}
}

func TestRankTeamsNoSwapWhenOnlyPointsTie(t *testing.T) {
	// Equal points but different goal difference: head-to-head must not
	// even be consulted.
	rows := []*TeamStats{
		{TeamID: 1, Points: 6, GoalDifference: 4},
		{TeamID: 2, Points: 6, GoalDifference: 1},
	}
	called := false
	h2h := func(ctx context.Context, a, b int) (int, error) {
		called = true
		return -1, nil
	}

	ranked, err := RankTeams(context.Background(), rows, h2h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if called {
		t.Fatal("head-to-head consulted for a pair not tied on points and gd")
	}
	if ranked[0].TeamID != 1 {
		t.Fatalf("expected team 1 first, got %d", ranked[0].TeamID)
	}
}

func TestRankTeamsHeadToHeadError(t *testing.T) {
	wantErr := errors.New("store unavailable")
	rows := []*TeamStats{
		{TeamID: 1, Points: 6},
		{TeamID: 2, Points: 6},
	}
	_, err := RankTeams(context.Background(), rows, func(ctx context.Context, a, b int) (int, error) {
		return 0, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped lookup error, got %v", err)
	}
}

func TestRankTeamsDoesNotModifyInput(t *testing.T) {
	rows := []*TeamStats{
		{TeamID: 1, Points: 1},
		{TeamID: 2, Points: 9},
	}
	if _, err := RankTeams(context.Background(), rows, noHeadToHead); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].TeamID != 1 || rows[1].TeamID != 2 {
		t.Fatal("input slice was reordered")
	}
}
