package engine

import "github.com/copaamateur/copa-backend/models"

// TeamStats is the per-team aggregate for one event, recomputed from
// scratch on every call so that edits or deletions of past results are
// always reflected.
type TeamStats struct {
	TeamID         int
	MatchesPlayed  int
	Wins           int
	Draws          int
	Losses         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	YellowCards    int
	RedCards       int
	Points         int
}

// ComputeStandings aggregates group-phase matches with both scores present
// into per-team statistics. Every enrolled team gets an entry, all-zero if
// it has no finished matches yet. Matches referencing teams outside the
// enrolled set are skipped. The function is pure and idempotent.
func ComputeStandings(matches []*models.Match, teamIDs []int) map[int]*TeamStats {
	stats := make(map[int]*TeamStats, len(teamIDs))
	for _, id := range teamIDs {
		stats[id] = &TeamStats{TeamID: id}
	}

	for _, m := range matches {
		if m.Phase != models.PhaseGroup || !m.Finished() {
			continue
		}
		home, homeOK := stats[m.HomeTeamID]
		away, awayOK := stats[m.AwayTeamID]
		if !homeOK || !awayOK {
			continue
		}

		homeScore, awayScore := *m.HomeScore, *m.AwayScore

		home.MatchesPlayed++
		away.MatchesPlayed++

		home.GoalsFor += homeScore
		home.GoalsAgainst += awayScore
		away.GoalsFor += awayScore
		away.GoalsAgainst += homeScore

		home.YellowCards += m.HomeYellowCards
		home.RedCards += m.HomeRedCards
		away.YellowCards += m.AwayYellowCards
		away.RedCards += m.AwayRedCards

		switch {
		case homeScore > awayScore:
			home.Wins++
			home.Points += 3
			away.Losses++
		case homeScore < awayScore:
			away.Wins++
			away.Points += 3
			home.Losses++
		default:
			home.Draws++
			away.Draws++
			home.Points++
			away.Points++
		}
	}

	// Goal difference is derived after aggregation, not incrementally.
	for _, s := range stats {
		s.GoalDifference = s.GoalsFor - s.GoalsAgainst
	}

	return stats
}
