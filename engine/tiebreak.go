package engine

import (
	"context"
	"fmt"
	"sort"
)

// HeadToHeadFunc resolves the direct match between two teams. It returns
// +1 if teamA won that match, -1 if teamB won, and 0 on a draw or when no
// finished group match between the pair exists. Implementations typically
// query the match store, hence the context and error.
type HeadToHeadFunc func(ctx context.Context, teamA, teamB int) (int, error)

// RankTeams orders standings rows by the ranking policy:
//
//  1. points, descending
//  2. goal difference, descending
//  3. goals for, descending
//  4. goals against, ascending
//  5. red cards, ascending
//  6. yellow cards, ascending
//
// After the stable sort, one adjacent scan applies the head-to-head
// override: a pair tied on both points and goal difference is swapped when
// the direct match says the lower-placed team won. The scan is a single
// pass over adjacent pairs; chains of three or more teams tied on both
// keys are only guaranteed pairwise-correct, which is the behaviour the
// product relies on.
//
// The input slice is not modified.
func RankTeams(ctx context.Context, rows []*TeamStats, headToHead HeadToHeadFunc) ([]*TeamStats, error) {
	ranked := make([]*TeamStats, len(rows))
	copy(ranked, rows)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		if a.GoalsAgainst != b.GoalsAgainst {
			return a.GoalsAgainst < b.GoalsAgainst
		}
		if a.RedCards != b.RedCards {
			return a.RedCards < b.RedCards
		}
		return a.YellowCards < b.YellowCards
	})

	if headToHead == nil {
		return ranked, nil
	}

	for i := 0; i < len(ranked)-1; i++ {
		a, b := ranked[i], ranked[i+1]
		if a.Points != b.Points || a.GoalDifference != b.GoalDifference {
			continue
		}
		result, err := headToHead(ctx, a.TeamID, b.TeamID)
		if err != nil {
			return nil, fmt.Errorf("head-to-head lookup for teams %d and %d: %w", a.TeamID, b.TeamID, err)
		}
		if result == -1 {
			ranked[i], ranked[i+1] = b, a
		}
	}

	return ranked, nil
}
