package models

import "time"

// Event представляет один розыгрыш турнира (24 команды, 6 групп).
type Event struct {
	ID          int       `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description,omitempty" db:"description"`
	Date        time.Time `json:"date" db:"date"`
	Location    *string   `json:"location,omitempty" db:"location"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	PosterKey *string `json:"-" db:"poster_key"`
	PosterURL *string `json:"poster_url,omitempty" db:"-"`

	// Опциональные связанные сущности, заполняются сервисом.
	Teams   []EventTeam `json:"teams,omitempty" db:"-"`
	Matches []Match     `json:"matches,omitempty" db:"-"`
}
