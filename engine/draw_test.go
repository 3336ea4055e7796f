package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func teamIDs(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = 100 + i
	}
	return ids
}

func TestGenerateDrawShape(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	draw, err := GenerateDraw(Copa24, teamIDs(24), rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(draw.Groups) != 6 {
		t.Fatalf("expected 6 groups, got %d", len(draw.Groups))
	}
	for _, label := range Copa24.GroupLabels {
		if len(draw.Groups[label]) != 4 {
			t.Fatalf("group %s has %d teams, want 4", label, len(draw.Groups[label]))
		}
	}
	if len(draw.Fixtures) != 36 {
		t.Fatalf("expected 36 fixtures, got %d", len(draw.Fixtures))
	}
	if len(draw.GroupByTeam) != 24 {
		t.Fatalf("expected 24 group assignments, got %d", len(draw.GroupByTeam))
	}

	// Every team appears in exactly 3 fixtures, all within its own group,
	// and never against itself.
	appearances := make(map[int]int)
	for _, f := range draw.Fixtures {
		if f.HomeTeamID == f.AwayTeamID {
			t.Fatalf("fixture %d pairs team %d with itself", f.MatchNumber, f.HomeTeamID)
		}
		if f.GroupName == nil {
			t.Fatalf("fixture %d has no group", f.MatchNumber)
		}
		if draw.GroupByTeam[f.HomeTeamID] != *f.GroupName || draw.GroupByTeam[f.AwayTeamID] != *f.GroupName {
			t.Fatalf("fixture %d crosses groups", f.MatchNumber)
		}
		appearances[f.HomeTeamID]++
		appearances[f.AwayTeamID]++
	}
	for id, n := range appearances {
		if n != 3 {
			t.Fatalf("team %d appears in %d fixtures, want 3", id, n)
		}
	}
}

func TestGenerateDrawMatchNumbersSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	draw, err := GenerateDraw(Copa24, teamIDs(24), rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, f := range draw.Fixtures {
		if f.MatchNumber != i+1 {
			t.Fatalf("fixture at index %d has match number %d", i, f.MatchNumber)
		}
	}
	// Group labels come out in A..F order, six fixtures each.
	for i, f := range draw.Fixtures {
		wantLabel := Copa24.GroupLabels[i/6]
		if *f.GroupName != wantLabel {
			t.Fatalf("fixture %d in group %s, want %s", f.MatchNumber, *f.GroupName, wantLabel)
		}
	}
}

func TestGenerateDrawWrongCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{0, 23, 25} {
		draw, err := GenerateDraw(Copa24, teamIDs(n), rng)
		if !errors.Is(err, ErrWrongTeamCount) {
			t.Fatalf("n=%d: expected ErrWrongTeamCount, got %v", n, err)
		}
		if draw != nil {
			t.Fatalf("n=%d: expected nil draw on error", n)
		}
	}
}

func TestGenerateDrawDuplicateTeam(t *testing.T) {
	ids := teamIDs(24)
	ids[5] = ids[17]
	rng := rand.New(rand.NewSource(1))
	_, err := GenerateDraw(Copa24, ids, rng)
	if !errors.Is(err, ErrDuplicateTeam) {
		t.Fatalf("expected ErrDuplicateTeam, got %v", err)
	}
}

func TestGenerateDrawDeterministicWithSeed(t *testing.T) {
	a, err := GenerateDraw(Copa24, teamIDs(24), rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := GenerateDraw(Copa24, teamIDs(24), rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for id, label := range a.GroupByTeam {
		if b.GroupByTeam[id] != label {
			t.Fatalf("same seed produced different draws for team %d", id)
		}
	}
}
