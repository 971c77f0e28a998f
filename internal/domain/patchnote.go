package domain

import (
	"time"

	"github.com/google/uuid"
)

type PatchNoteCategory string

const (
	CategoryChampion PatchNoteCategory = "champion"
	CategoryItem     PatchNoteCategory = "item"
	CategorySystem   PatchNoteCategory = "system"
	CategoryMeta     PatchNoteCategory = "meta"
)

func IsValidPatchNoteCategory(c PatchNoteCategory) bool {
	switch c {
	case CategoryChampion, CategoryItem, CategorySystem, CategoryMeta:
		return true
	}
	return false
}

type PatchNote struct {
	ID        uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Version   string            `json:"version" gorm:"not null"`
	Title     string            `json:"title" gorm:"not null"`
	Content   string            `json:"content" gorm:"not null;default:''"`
	Category  PatchNoteCategory `json:"category" gorm:"not null"`
	CreatedAt time.Time         `json:"createdAt"`
}
