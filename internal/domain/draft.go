package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Draft is a saved team/enemy lineup snapshot. Each of the ten role slots
// optionally references a champion by id; stale references are tolerated
// and resolve to nothing on read.
type Draft struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`

	TeamTopChampionID  *string `json:"teamTopChampionId"`
	TeamJglChampionID  *string `json:"teamJglChampionId"`
	TeamMidChampionID  *string `json:"teamMidChampionId"`
	TeamAdcChampionID  *string `json:"teamAdcChampionId"`
	TeamSupChampionID  *string `json:"teamSupChampionId"`
	EnemyTopChampionID *string `json:"enemyTopChampionId"`
	EnemyJglChampionID *string `json:"enemyJglChampionId"`
	EnemyMidChampionID *string `json:"enemyMidChampionId"`
	EnemyAdcChampionID *string `json:"enemyAdcChampionId"`
	EnemySupChampionID *string `json:"enemySupChampionId"`

	TeamBans  datatypes.JSONSlice[string] `json:"teamBans" gorm:"type:jsonb;default:'[]'"`
	EnemyBans datatypes.JSONSlice[string] `json:"enemyBans" gorm:"type:jsonb;default:'[]'"`
}

// SlotChampionIDs returns the ten role-slot references in a fixed order:
// team TOP/JGL/MID/ADC/SUP, then enemy TOP/JGL/MID/ADC/SUP.
func (d *Draft) SlotChampionIDs() []*string {
	return []*string{
		d.TeamTopChampionID, d.TeamJglChampionID, d.TeamMidChampionID,
		d.TeamAdcChampionID, d.TeamSupChampionID,
		d.EnemyTopChampionID, d.EnemyJglChampionID, d.EnemyMidChampionID,
		d.EnemyAdcChampionID, d.EnemySupChampionID,
	}
}

// DraftVariant is an alternate team lineup attached to a draft. Variants
// are deleted with their draft.
type DraftVariant struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DraftID uuid.UUID `json:"draftId" gorm:"type:uuid;index;not null"`
	Name    string    `json:"name" gorm:"not null"`

	TopChampionID *string `json:"topChampionId"`
	JglChampionID *string `json:"jglChampionId"`
	MidChampionID *string `json:"midChampionId"`
	AdcChampionID *string `json:"adcChampionId"`
	SupChampionID *string `json:"supChampionId"`

	Draft *Draft `json:"-" gorm:"foreignKey:DraftID;constraint:OnDelete:CASCADE"`
}

// DraftWithDetails is the read view of a draft: variants attached and each
// role slot resolved to its champion when the reference is still valid.
type DraftWithDetails struct {
	Draft
	Variants []*DraftVariant `json:"variants"`

	TeamTopChampion  *Champion `json:"teamTopChampion,omitempty"`
	TeamJglChampion  *Champion `json:"teamJglChampion,omitempty"`
	TeamMidChampion  *Champion `json:"teamMidChampion,omitempty"`
	TeamAdcChampion  *Champion `json:"teamAdcChampion,omitempty"`
	TeamSupChampion  *Champion `json:"teamSupChampion,omitempty"`
	EnemyTopChampion *Champion `json:"enemyTopChampion,omitempty"`
	EnemyJglChampion *Champion `json:"enemyJglChampion,omitempty"`
	EnemyMidChampion *Champion `json:"enemyMidChampion,omitempty"`
	EnemyAdcChampion *Champion `json:"enemyAdcChampion,omitempty"`
	EnemySupChampion *Champion `json:"enemySupChampion,omitempty"`
}
