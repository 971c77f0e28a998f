package postgres

import (
	"context"

	"github.com/dom/league-team-hub/internal/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type championRepository struct {
	db *gorm.DB
}

func NewChampionRepository(db *gorm.DB) *championRepository {
	return &championRepository{db: db}
}

func (r *championRepository) Create(ctx context.Context, champion *domain.Champion) error {
	return r.db.WithContext(ctx).Create(champion).Error
}

func (r *championRepository) CreateMany(ctx context.Context, champions []*domain.Champion) error {
	if len(champions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(champions).Error
}

func (r *championRepository) GetAll(ctx context.Context) ([]*domain.Champion, error) {
	var champions []*domain.Champion
	err := r.db.WithContext(ctx).Order("name ASC").Find(&champions).Error
	if err != nil {
		return nil, err
	}
	return champions, nil
}

func (r *championRepository) GetByID(ctx context.Context, id string) (*domain.Champion, error) {
	var champion domain.Champion
	err := r.db.WithContext(ctx).First(&champion, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &champion, nil
}

func (r *championRepository) UpdateRoles(ctx context.Context, id string, roles []domain.Role) (*domain.Champion, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Champion{}).
		Where("id = ?", id).
		Update("roles", datatypes.NewJSONSlice(roles))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *championRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Champion{}).Count(&count).Error
	return count, err
}
