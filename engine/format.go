// Package engine contains the pure tournament logic: the group draw,
// standings computation with tie-breaking, and knockout pairing. Nothing
// here touches the database; persistence is the caller's job.
package engine

// KnockoutTie describes one fixed round-of-16 pairing: the team finishing
// HomePos in HomeGroup hosts the team finishing AwayPos in AwayGroup.
type KnockoutTie struct {
	HomeGroup string
	HomePos   int
	AwayGroup string
	AwayPos   int
}

// Format is a named tournament configuration. The engine functions take it
// as a parameter so that alternate formats can be added without touching
// the algorithms, even though Copa24 is the only format the product ships.
type Format struct {
	Name        string
	TeamCount   int
	GroupCount  int
	GroupSize   int
	GroupLabels []string
	RoundOf16   []KnockoutTie
}

// Copa24: 24 teams, 6 groups of 4, round-robin groups, knockout from a
// round of 16 where each group winner meets the runner-up of the group two
// letters ahead (wrapping), and vice versa.
var Copa24 = Format{
	Name:        "copa24",
	TeamCount:   24,
	GroupCount:  6,
	GroupSize:   4,
	GroupLabels: []string{"A", "B", "C", "D", "E", "F"},
	RoundOf16: []KnockoutTie{
		{HomeGroup: "A", HomePos: 1, AwayGroup: "D", AwayPos: 2},
		{HomeGroup: "D", HomePos: 1, AwayGroup: "A", AwayPos: 2},
		{HomeGroup: "B", HomePos: 1, AwayGroup: "E", AwayPos: 2},
		{HomeGroup: "E", HomePos: 1, AwayGroup: "B", AwayPos: 2},
		{HomeGroup: "C", HomePos: 1, AwayGroup: "F", AwayPos: 2},
		{HomeGroup: "F", HomePos: 1, AwayGroup: "C", AwayPos: 2},
	},
}
