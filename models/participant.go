package models

import "time"

// Participant — игрок в составе команды.
type Participant struct {
	ID        int        `json:"id" db:"id"`
	TeamID    *int       `json:"team_id,omitempty" db:"team_id"`
	Name      string     `json:"name" db:"name"`
	Position  *string    `json:"position,omitempty" db:"position"`
	Number    *int       `json:"number,omitempty" db:"number"`
	BirthDate *time.Time `json:"birth_date,omitempty" db:"birth_date"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`

	PhotoKey *string `json:"-" db:"photo_key"`
	PhotoURL *string `json:"photo_url,omitempty" db:"-"`
}
