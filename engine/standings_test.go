package engine

import (
	"reflect"
	"testing"

	"github.com/copaamateur/copa-backend/models"
)

func groupMatch(home, away, homeScore, awayScore int) *models.Match {
	group := "A"
	hs, as := homeScore, awayScore
	return &models.Match{
		HomeTeamID: home,
		AwayTeamID: away,
		Phase:      models.PhaseGroup,
		GroupName:  &group,
		HomeScore:  &hs,
		AwayScore:  &as,
		Status:     models.StatusFinished,
	}
}

// The literal group A scenario: W beats X 2-1, W beats Y 3-0, W beats Z
// 1-0, X beats Y 1-0, X loses to Z 0-1, Y draws Z 1-1.
const (
	teamW = 1
	teamX = 2
	teamY = 3
	teamZ = 4
)

func groupAScenario() []*models.Match {
	return []*models.Match{
		groupMatch(teamW, teamX, 2, 1),
		groupMatch(teamW, teamY, 3, 0),
		groupMatch(teamW, teamZ, 1, 0),
		groupMatch(teamX, teamY, 1, 0),
		groupMatch(teamX, teamZ, 0, 1),
		groupMatch(teamY, teamZ, 1, 1),
	}
}

func TestComputeStandingsGroupAScenario(t *testing.T) {
	stats := ComputeStandings(groupAScenario(), []int{teamW, teamX, teamY, teamZ})

	want := map[int]TeamStats{
		teamW: {TeamID: teamW, MatchesPlayed: 3, Wins: 3, GoalsFor: 6, GoalsAgainst: 1, GoalDifference: 5, Points: 9},
		teamX: {TeamID: teamX, MatchesPlayed: 3, Wins: 1, Losses: 2, GoalsFor: 2, GoalsAgainst: 3, GoalDifference: -1, Points: 3},
		teamY: {TeamID: teamY, MatchesPlayed: 3, Draws: 1, Losses: 2, GoalsFor: 1, GoalsAgainst: 5, GoalDifference: -4, Points: 1},
		teamZ: {TeamID: teamZ, MatchesPlayed: 3, Wins: 1, Draws: 1, Losses: 1, GoalsFor: 2, GoalsAgainst: 2, GoalDifference: 0, Points: 4},
	}
	for id, w := range want {
		got := stats[id]
		if got == nil {
			t.Fatalf("no stats for team %d", id)
		}
		if !reflect.DeepEqual(*got, w) {
			t.Fatalf("team %d: got %+v, want %+v", id, *got, w)
		}
	}
}

func TestComputeStandingsInvariants(t *testing.T) {
	stats := ComputeStandings(groupAScenario(), []int{teamW, teamX, teamY, teamZ})
	for id, s := range stats {
		if s.Points != 3*s.Wins+s.Draws {
			t.Fatalf("team %d: points=%d, want 3*%d+%d", id, s.Points, s.Wins, s.Draws)
		}
		if s.GoalDifference != s.GoalsFor-s.GoalsAgainst {
			t.Fatalf("team %d: gd=%d, want %d-%d", id, s.GoalDifference, s.GoalsFor, s.GoalsAgainst)
		}
		if s.MatchesPlayed != s.Wins+s.Draws+s.Losses {
			t.Fatalf("team %d: played=%d, w/d/l=%d/%d/%d", id, s.MatchesPlayed, s.Wins, s.Draws, s.Losses)
		}
	}
}

func TestComputeStandingsIdempotent(t *testing.T) {
	matches := groupAScenario()
	ids := []int{teamW, teamX, teamY, teamZ}
	first := ComputeStandings(matches, ids)
	second := ComputeStandings(matches, ids)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two runs over the same input differ: %+v vs %+v", first, second)
	}
}

func TestComputeStandingsZeroRowForIdleTeam(t *testing.T) {
	stats := ComputeStandings(nil, []int{teamW})
	s := stats[teamW]
	if s == nil {
		t.Fatal("expected an all-zero entry for a team with no matches")
	}
	if *s != (TeamStats{TeamID: teamW}) {
		t.Fatalf("expected all-zero stats, got %+v", *s)
	}
}

func TestComputeStandingsIgnoresNonGroupAndUnfinished(t *testing.T) {
	knockout := groupMatch(teamW, teamX, 4, 0)
	knockout.Phase = models.PhaseRoundOf16
	knockout.GroupName = nil

	pending := groupMatch(teamW, teamX, 0, 0)
	pending.HomeScore = nil
	pending.AwayScore = nil

	// Scores entered but status never flipped still count: non-null scores
	// are the authoritative played signal.
	scoredNotFlipped := groupMatch(teamW, teamX, 2, 0)
	scoredNotFlipped.Status = models.StatusScheduled

	stats := ComputeStandings([]*models.Match{knockout, pending, scoredNotFlipped}, []int{teamW, teamX})
	if stats[teamW].MatchesPlayed != 1 || stats[teamW].Points != 3 {
		t.Fatalf("unexpected home stats: %+v", *stats[teamW])
	}
	if stats[teamX].MatchesPlayed != 1 || stats[teamX].Losses != 1 {
		t.Fatalf("unexpected away stats: %+v", *stats[teamX])
	}
}

func TestComputeStandingsAggregatesCards(t *testing.T) {
	m := groupMatch(teamW, teamX, 1, 1)
	m.HomeYellowCards = 2
	m.HomeRedCards = 1
	m.AwayYellowCards = 3

	stats := ComputeStandings([]*models.Match{m}, []int{teamW, teamX})
	if stats[teamW].YellowCards != 2 || stats[teamW].RedCards != 1 {
		t.Fatalf("unexpected home cards: %+v", *stats[teamW])
	}
	if stats[teamX].YellowCards != 3 || stats[teamX].RedCards != 0 {
		t.Fatalf("unexpected away cards: %+v", *stats[teamX])
	}
}
