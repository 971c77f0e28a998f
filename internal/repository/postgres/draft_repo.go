package postgres

import (
	"context"

	"github.com/dom/league-team-hub/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type draftRepository struct {
	db *gorm.DB
}

func NewDraftRepository(db *gorm.DB) *draftRepository {
	return &draftRepository{db: db}
}

func (r *draftRepository) Create(ctx context.Context, draft *domain.Draft) error {
	return r.db.WithContext(ctx).Create(draft).Error
}

func (r *draftRepository) GetAll(ctx context.Context) ([]*domain.Draft, error) {
	var drafts []*domain.Draft
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&drafts).Error
	if err != nil {
		return nil, err
	}
	return drafts, nil
}

func (r *draftRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
	var draft domain.Draft
	err := r.db.WithContext(ctx).First(&draft, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

func (r *draftRepository) Update(ctx context.Context, draft *domain.Draft) error {
	return r.db.WithContext(ctx).Save(draft).Error
}

// Delete removes the draft; its variants go with it via the foreign key
// cascade. Deleting a missing draft is a no-op.
func (r *draftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Draft{}, "id = ?", id).Error
}

type draftVariantRepository struct {
	db *gorm.DB
}

func NewDraftVariantRepository(db *gorm.DB) *draftVariantRepository {
	return &draftVariantRepository{db: db}
}

func (r *draftVariantRepository) Create(ctx context.Context, variant *domain.DraftVariant) error {
	return r.db.WithContext(ctx).Create(variant).Error
}

func (r *draftVariantRepository) GetAll(ctx context.Context) ([]*domain.DraftVariant, error) {
	var variants []*domain.DraftVariant
	err := r.db.WithContext(ctx).Find(&variants).Error
	if err != nil {
		return nil, err
	}
	return variants, nil
}

func (r *draftVariantRepository) GetByDraftID(ctx context.Context, draftID uuid.UUID) ([]*domain.DraftVariant, error) {
	var variants []*domain.DraftVariant
	err := r.db.WithContext(ctx).Where("draft_id = ?", draftID).Find(&variants).Error
	if err != nil {
		return nil, err
	}
	return variants, nil
}

func (r *draftVariantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.DraftVariant{}, "id = ?", id).Error
}
