package postgres

import (
	"context"

	"github.com/dom/league-team-hub/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patchNoteRepository struct {
	db *gorm.DB
}

func NewPatchNoteRepository(db *gorm.DB) *patchNoteRepository {
	return &patchNoteRepository{db: db}
}

func (r *patchNoteRepository) Create(ctx context.Context, note *domain.PatchNote) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *patchNoteRepository) GetAll(ctx context.Context) ([]*domain.PatchNote, error) {
	var notes []*domain.PatchNote
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *patchNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.PatchNote{}, "id = ?", id).Error
}
