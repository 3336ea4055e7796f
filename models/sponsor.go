package models

import "time"

type Sponsor struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Website   *string   `json:"website,omitempty" db:"website"`
	Tier      *string   `json:"tier,omitempty" db:"tier"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	LogoKey *string `json:"-" db:"logo_key"`
	LogoURL *string `json:"logo_url,omitempty" db:"-"`
}
