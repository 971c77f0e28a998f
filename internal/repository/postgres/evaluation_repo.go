package postgres

import (
	"context"

	"github.com/dom/league-team-hub/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type evaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) *evaluationRepository {
	return &evaluationRepository{db: db}
}

func (r *evaluationRepository) GetAll(ctx context.Context) ([]*domain.ChampionEvaluation, error) {
	var evaluations []*domain.ChampionEvaluation
	err := r.db.WithContext(ctx).Find(&evaluations).Error
	if err != nil {
		return nil, err
	}
	return evaluations, nil
}

func (r *evaluationRepository) GetByChampionID(ctx context.Context, championID string) (*domain.ChampionEvaluation, error) {
	var evaluation domain.ChampionEvaluation
	err := r.db.WithContext(ctx).First(&evaluation, "champion_id = ?", championID).Error
	if err != nil {
		return nil, err
	}
	return &evaluation, nil
}

// Upsert runs a single INSERT ... ON CONFLICT (champion_id) DO UPDATE that
// only touches the submitted columns. Concurrent partial updates for
// different fields therefore merge instead of overwriting each other; the
// worst case for the same field is last-committed-wins.
func (r *evaluationRepository) Upsert(ctx context.Context, championID string, patch domain.EvaluationPatch) (*domain.ChampionEvaluation, error) {
	row := patch.Evaluation(championID)
	assignments := patch.Assignments()

	conflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "champion_id"}},
		DoNothing: true,
	}
	if len(assignments) > 0 {
		conflict.DoNothing = false
		conflict.DoUpdates = clause.Assignments(assignments)
	}

	if err := r.db.WithContext(ctx).Clauses(conflict).Create(row).Error; err != nil {
		return nil, err
	}

	return r.GetByChampionID(ctx, championID)
}
