package models

import "time"

type MatchPhase string

const (
	PhaseGroup        MatchPhase = "group"
	PhaseRoundOf16    MatchPhase = "round_of_16"
	PhaseQuarterFinal MatchPhase = "quarter_final"
	PhaseSemiFinal    MatchPhase = "semi_final"
	PhaseFinal        MatchPhase = "final"
)

// Rank возвращает хронологический порядок фазы в турнире. Фазы вне
// известного набора уходят в конец.
func (p MatchPhase) Rank() int {
	switch p {
	case PhaseGroup:
		return 1
	case PhaseRoundOf16:
		return 2
	case PhaseQuarterFinal:
		return 3
	case PhaseSemiFinal:
		return 4
	case PhaseFinal:
		return 5
	default:
		return 6
	}
}

func (p MatchPhase) Valid() bool {
	return p.Rank() <= 5
}

type MatchStatus string

const (
	StatusScheduled  MatchStatus = "scheduled"
	StatusInProgress MatchStatus = "in_progress"
	StatusFinished   MatchStatus = "finished"
)

type Match struct {
	ID          int        `json:"id" db:"id"`
	EventID     int        `json:"event_id" db:"event_id"`
	HomeTeamID  int        `json:"home_team_id" db:"home_team_id"`
	AwayTeamID  int        `json:"away_team_id" db:"away_team_id"`
	Phase       MatchPhase `json:"phase" db:"phase"`
	GroupName   *string    `json:"group_name,omitempty" db:"group_name"`
	MatchNumber *int       `json:"match_number,omitempty" db:"match_number"`

	HomeScore *int `json:"home_score,omitempty" db:"home_score"`
	AwayScore *int `json:"away_score,omitempty" db:"away_score"`

	HomeYellowCards int `json:"home_yellow_cards" db:"home_yellow_cards"`
	HomeRedCards    int `json:"home_red_cards" db:"home_red_cards"`
	AwayYellowCards int `json:"away_yellow_cards" db:"away_yellow_cards"`
	AwayRedCards    int `json:"away_red_cards" db:"away_red_cards"`

	RefereeUserID *int        `json:"referee_user_id,omitempty" db:"referee_user_id"`
	MatchDate     *time.Time  `json:"match_date,omitempty" db:"match_date"`
	Status        MatchStatus `json:"status" db:"status"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
}

// Finished reports whether both scores are recorded. The presence of both
// scores, not the Status column, is the authoritative "played" signal;
// result recording keeps the two consistent by setting Status together
// with the scores.
func (m *Match) Finished() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}
