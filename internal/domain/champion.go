package domain

import (
	"gorm.io/datatypes"
)

type Champion struct {
	ID       string                    `json:"id" gorm:"primaryKey"` // e.g., "Aatrox"
	Name     string                    `json:"name" gorm:"not null"` // Display name
	ImageURL string                    `json:"imageUrl" gorm:"not null"`
	Key      string                    `json:"key" gorm:"not null"` // e.g., "266"
	Roles    datatypes.JSONSlice[Role] `json:"roles" gorm:"type:jsonb;default:'[]'"`
}

// ChampionWithEvaluation pairs a champion with its evaluation record.
// Evaluation is nil when the champion has never been rated, which is
// distinct from an evaluation with all-zero ratings.
type ChampionWithEvaluation struct {
	Champion
	Evaluation *ChampionEvaluation `json:"evaluation,omitempty"`
}
