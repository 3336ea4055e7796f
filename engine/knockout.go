package engine

import (
	"errors"
	"fmt"

	"github.com/copaamateur/copa-backend/models"
)

var ErrIncompleteStandings = errors.New("not every group has a resolvable top two")

// GenerateKnockout turns finalized, tie-broken group standings into the
// fixed round-of-16 pairings of the format. standings maps group label to
// that group's ranked rows, best first. Every group named by the pairing
// table must contribute its top two, otherwise ErrIncompleteStandings.
func GenerateKnockout(format Format, standings map[string][]*TeamStats) ([]Fixture, error) {
	qualifiers := make(map[string][2]int, len(standings))
	for _, label := range format.GroupLabels {
		rows := standings[label]
		if len(rows) < 2 {
			return nil, fmt.Errorf("%w: group %s has %d ranked teams", ErrIncompleteStandings, label, len(rows))
		}
		qualifiers[label] = [2]int{rows[0].TeamID, rows[1].TeamID}
	}

	fixtures := make([]Fixture, 0, len(format.RoundOf16))
	for i, tie := range format.RoundOf16 {
		fixtures = append(fixtures, Fixture{
			HomeTeamID:  qualifiers[tie.HomeGroup][tie.HomePos-1],
			AwayTeamID:  qualifiers[tie.AwayGroup][tie.AwayPos-1],
			Phase:       models.PhaseRoundOf16,
			MatchNumber: i + 1,
		})
	}

	return fixtures, nil
}
