package models

import "time"

// Model is the embedded base for all entities. Identities are plain integer
// sequences; external attribution never relies on them, only on natural keys
// like a country's ISO2 code.
type Model struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m Model) GetID() int {
	return m.ID
}
