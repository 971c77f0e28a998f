package postgres

import (
	"context"

	"github.com/dom/league-team-hub/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type playerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) *playerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(ctx context.Context, player *domain.Player) error {
	return r.db.WithContext(ctx).Create(player).Error
}

func (r *playerRepository) GetAll(ctx context.Context) ([]*domain.Player, error) {
	var players []*domain.Player
	err := r.db.WithContext(ctx).Order("name ASC").Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	var player domain.Player
	err := r.db.WithContext(ctx).First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// Delete removes the player; availability rows cascade with it.
func (r *playerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Player{}, "id = ?", id).Error
}

type availabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) *availabilityRepository {
	return &availabilityRepository{db: db}
}

func (r *availabilityRepository) GetAll(ctx context.Context) ([]*domain.PlayerAvailability, error) {
	var availability []*domain.PlayerAvailability
	err := r.db.WithContext(ctx).Find(&availability).Error
	if err != nil {
		return nil, err
	}
	return availability, nil
}

// Upsert relies on the unique (player_id, day_of_week) index so that two
// simultaneous requests for the same pair serialize into one row.
func (r *availabilityRepository) Upsert(ctx context.Context, playerID uuid.UUID, dayOfWeek int, isAvailable bool) (*domain.PlayerAvailability, error) {
	row := &domain.PlayerAvailability{
		ID:          uuid.New(),
		PlayerID:    playerID,
		DayOfWeek:   dayOfWeek,
		IsAvailable: isAvailable,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_id"}, {Name: "day_of_week"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"is_available": isAvailable}),
	}).Create(row).Error
	if err != nil {
		return nil, err
	}

	var stored domain.PlayerAvailability
	err = r.db.WithContext(ctx).
		First(&stored, "player_id = ? AND day_of_week = ?", playerID, dayOfWeek).Error
	if err != nil {
		return nil, err
	}
	return &stored, nil
}
