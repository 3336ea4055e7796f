package models

import "time"

// EventTeam связывает команду с событием и хранит её накопленную статистику
// группового этапа. Счётчики — денормализованный кеш: источником истины
// являются сыгранные матчи, и все поля пересчитываются из них целиком.
type EventTeam struct {
	ID             int     `json:"id" db:"id"`
	EventID        int     `json:"event_id" db:"event_id"`
	TeamID         int     `json:"team_id" db:"team_id"`
	GroupName      *string `json:"group_name,omitempty" db:"group_name"`
	MatchesPlayed  int     `json:"matches_played" db:"matches_played"`
	Wins           int     `json:"wins" db:"wins"`
	Draws          int     `json:"draws" db:"draws"`
	Losses         int     `json:"losses" db:"losses"`
	GoalsFor       int     `json:"goals_for" db:"goals_for"`
	GoalsAgainst   int     `json:"goals_against" db:"goals_against"`
	GoalDifference int     `json:"goal_difference" db:"goal_difference"`
	YellowCards    int     `json:"yellow_cards" db:"yellow_cards"`
	RedCards       int     `json:"red_cards" db:"red_cards"`
	Points         int     `json:"points" db:"points"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`

	Team *Team `json:"team,omitempty" db:"-"`
}
