package postgres

import (
	"context"

	"github.com/dom/league-team-hub/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type scrimRepository struct {
	db *gorm.DB
}

func NewScrimRepository(db *gorm.DB) *scrimRepository {
	return &scrimRepository{db: db}
}

func (r *scrimRepository) Create(ctx context.Context, scrim *domain.Scrim) error {
	return r.db.WithContext(ctx).Create(scrim).Error
}

func (r *scrimRepository) GetAll(ctx context.Context) ([]*domain.Scrim, error) {
	var scrims []*domain.Scrim
	err := r.db.WithContext(ctx).Order("date ASC").Find(&scrims).Error
	if err != nil {
		return nil, err
	}
	return scrims, nil
}

func (r *scrimRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Scrim, error) {
	var scrim domain.Scrim
	err := r.db.WithContext(ctx).First(&scrim, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &scrim, nil
}

func (r *scrimRepository) Update(ctx context.Context, scrim *domain.Scrim) error {
	return r.db.WithContext(ctx).Save(scrim).Error
}

func (r *scrimRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Scrim{}, "id = ?", id).Error
}
