package domain

import (
	"github.com/google/uuid"
)

type SynergyType string

const (
	SynergyPositive SynergyType = "positive"
	SynergyNegative SynergyType = "negative"
)

func IsValidSynergyType(t SynergyType) bool {
	return t == SynergyPositive || t == SynergyNegative
}

// ChampionSynergy rates the relationship between an unordered champion pair.
type ChampionSynergy struct {
	ID          uuid.UUID   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Champion1ID string      `json:"champion1Id" gorm:"not null"`
	Champion2ID string      `json:"champion2Id" gorm:"not null"`
	SynergyType SynergyType `json:"synergyType" gorm:"not null"`
	Rating      int         `json:"rating" gorm:"not null;default:0"`
	Notes       string      `json:"notes" gorm:"not null;default:''"`
}
