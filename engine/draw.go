package engine

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/copaamateur/copa-backend/models"
)

var (
	ErrWrongTeamCount = errors.New("wrong number of teams for this format")
	ErrDuplicateTeam  = errors.New("duplicate team id in draw input")
)

// Fixture is a match skeleton produced by the generators. It carries no
// event id; the service fills that in when persisting.
type Fixture struct {
	HomeTeamID  int
	AwayTeamID  int
	Phase       models.MatchPhase
	GroupName   *string
	MatchNumber int
}

// Draw is the result of a group draw: the group label assigned to every
// team plus the full group-stage fixture list.
type Draw struct {
	// Groups holds team ids per label in drawn order.
	Groups map[string][]int
	// GroupByTeam is the inverse lookup.
	GroupByTeam map[int]string
	Fixtures    []Fixture
}

// GenerateDraw shuffles the given team ids uniformly (Fisher–Yates via
// rng.Shuffle), partitions them into format.GroupCount consecutive groups
// of format.GroupSize, and emits every intra-group pairing exactly once
// with a match number increasing across groups in label order.
func GenerateDraw(format Format, teamIDs []int, rng *rand.Rand) (*Draw, error) {
	if len(teamIDs) != format.TeamCount {
		return nil, fmt.Errorf("%w: got %d, need %d", ErrWrongTeamCount, len(teamIDs), format.TeamCount)
	}
	seen := make(map[int]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: team %d", ErrDuplicateTeam, id)
		}
		seen[id] = struct{}{}
	}

	shuffled := make([]int, len(teamIDs))
	copy(shuffled, teamIDs)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	draw := &Draw{
		Groups:      make(map[string][]int, format.GroupCount),
		GroupByTeam: make(map[int]string, len(teamIDs)),
	}

	matchNumber := 1
	for gi, label := range format.GroupLabels {
		group := shuffled[gi*format.GroupSize : (gi+1)*format.GroupSize]
		draw.Groups[label] = group
		for _, id := range group {
			draw.GroupByTeam[id] = label
		}

		// Each team plays the other three in its group once.
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				groupName := label
				draw.Fixtures = append(draw.Fixtures, Fixture{
					HomeTeamID:  group[i],
					AwayTeamID:  group[j],
					Phase:       models.PhaseGroup,
					GroupName:   &groupName,
					MatchNumber: matchNumber,
				})
				matchNumber++
			}
		}
	}

	return draw, nil
}
