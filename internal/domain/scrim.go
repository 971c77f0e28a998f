package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Composition maps each role to the champion name played in one game.
type Composition map[Role]string

// GameDraft links one game of a scrim to the draft it was played from.
// The draft id is not validated against the drafts table.
type GameDraft struct {
	GameNumber int    `json:"gameNumber"`
	DraftID    string `json:"draftId"`
}

type Scrim struct {
	ID            uuid.UUID                        `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Date          time.Time                        `json:"date" gorm:"not null"`
	Opponent      string                           `json:"opponent" gorm:"not null"`
	IsWin         bool                             `json:"isWin" gorm:"not null"`
	Score         string                           `json:"score" gorm:"not null"` // free text, e.g., "2-1"
	Comments      string                           `json:"comments" gorm:"not null;default:''"`
	NumberOfGames *int                             `json:"numberOfGames,omitempty"`
	Compositions  datatypes.JSONSlice[Composition] `json:"compositions" gorm:"type:jsonb;default:'[]'"`
	GameDrafts    datatypes.JSONSlice[GameDraft]   `json:"drafts" gorm:"type:jsonb;default:'[]'"`
}
