package postgres

import (
	"context"

	"github.com/dom/league-team-hub/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type synergyRepository struct {
	db *gorm.DB
}

func NewSynergyRepository(db *gorm.DB) *synergyRepository {
	return &synergyRepository{db: db}
}

func (r *synergyRepository) Create(ctx context.Context, synergy *domain.ChampionSynergy) error {
	return r.db.WithContext(ctx).Create(synergy).Error
}

func (r *synergyRepository) GetAll(ctx context.Context) ([]*domain.ChampionSynergy, error) {
	var synergies []*domain.ChampionSynergy
	err := r.db.WithContext(ctx).Find(&synergies).Error
	if err != nil {
		return nil, err
	}
	return synergies, nil
}

func (r *synergyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.ChampionSynergy{}, "id = ?", id).Error
}
