package domain

import (
	"github.com/google/uuid"
)

type Player struct {
	ID   uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name string    `json:"name" gorm:"uniqueIndex;not null"`
	Role string    `json:"role" gorm:"not null"`
}

// PlayerAvailability is a single boolean flag per (player, weekday) pair.
// The unique index backs the upsert so concurrent writes cannot create
// duplicate rows for the same pair.
type PlayerAvailability struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PlayerID    uuid.UUID `json:"playerId" gorm:"type:uuid;not null;uniqueIndex:idx_availability_player_day"`
	DayOfWeek   int       `json:"dayOfWeek" gorm:"not null;uniqueIndex:idx_availability_player_day"` // 0 = Sunday
	IsAvailable bool      `json:"isAvailable" gorm:"not null;default:false"`

	Player *Player `json:"-" gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE"`
}
