package service

import (
	"context"
	"strings"
	"time"

	"github.com/dom/league-team-hub/internal/domain"
	"github.com/dom/league-team-hub/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ScrimService struct {
	scrimRepo repository.ScrimRepository
}

func NewScrimService(scrimRepo repository.ScrimRepository) *ScrimService {
	return &ScrimService{scrimRepo: scrimRepo}
}

// CreateScrimInput carries the user-settable fields of a new scrim.
type CreateScrimInput struct {
	Date          *time.Time           `json:"date"`
	Opponent      string               `json:"opponent"`
	IsWin         bool                 `json:"isWin"`
	Score         string               `json:"score"`
	Comments      string               `json:"comments"`
	NumberOfGames *int                 `json:"numberOfGames"`
	Compositions  []domain.Composition `json:"compositions"`
	GameDrafts    []domain.GameDraft   `json:"drafts"`
}

// UpdateScrimInput is a partial update: nil fields keep their stored value.
type UpdateScrimInput struct {
	Date          *time.Time            `json:"date"`
	Opponent      *string               `json:"opponent"`
	IsWin         *bool                 `json:"isWin"`
	Score         *string               `json:"score"`
	Comments      *string               `json:"comments"`
	NumberOfGames *int                  `json:"numberOfGames"`
	Compositions  *[]domain.Composition `json:"compositions"`
	GameDrafts    *[]domain.GameDraft   `json:"drafts"`
}

func (s *ScrimService) List(ctx context.Context) ([]*domain.Scrim, error) {
	return s.scrimRepo.GetAll(ctx)
}

func (s *ScrimService) Create(ctx context.Context, in CreateScrimInput) (*domain.Scrim, error) {
	if strings.TrimSpace(in.Opponent) == "" {
		return nil, domain.NewValidationError("opponent name is required", "opponent")
	}
	if strings.TrimSpace(in.Score) == "" {
		return nil, domain.NewValidationError("score is required", "score")
	}

	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	if in.Compositions == nil {
		in.Compositions = []domain.Composition{}
	}
	if in.GameDrafts == nil {
		in.GameDrafts = []domain.GameDraft{}
	}

	scrim := &domain.Scrim{
		ID:            uuid.New(),
		Date:          date,
		Opponent:      in.Opponent,
		IsWin:         in.IsWin,
		Score:         in.Score,
		Comments:      in.Comments,
		NumberOfGames: in.NumberOfGames,
		Compositions:  datatypes.NewJSONSlice(in.Compositions),
		GameDrafts:    datatypes.NewJSONSlice(in.GameDrafts),
	}

	if err := s.scrimRepo.Create(ctx, scrim); err != nil {
		return nil, err
	}
	return scrim, nil
}

func (s *ScrimService) Update(ctx context.Context, id uuid.UUID, in UpdateScrimInput) (*domain.Scrim, error) {
	if in.Opponent != nil && strings.TrimSpace(*in.Opponent) == "" {
		return nil, domain.NewValidationError("opponent name cannot be empty", "opponent")
	}
	if in.Score != nil && strings.TrimSpace(*in.Score) == "" {
		return nil, domain.NewValidationError("score cannot be empty", "score")
	}

	scrim, err := s.scrimRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Date != nil {
		scrim.Date = *in.Date
	}
	if in.Opponent != nil {
		scrim.Opponent = *in.Opponent
	}
	if in.IsWin != nil {
		scrim.IsWin = *in.IsWin
	}
	if in.Score != nil {
		scrim.Score = *in.Score
	}
	if in.Comments != nil {
		scrim.Comments = *in.Comments
	}
	if in.NumberOfGames != nil {
		scrim.NumberOfGames = in.NumberOfGames
	}
	if in.Compositions != nil {
		scrim.Compositions = datatypes.NewJSONSlice(*in.Compositions)
	}
	if in.GameDrafts != nil {
		scrim.GameDrafts = datatypes.NewJSONSlice(*in.GameDrafts)
	}

	if err := s.scrimRepo.Update(ctx, scrim); err != nil {
		return nil, err
	}
	return scrim, nil
}

func (s *ScrimService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.scrimRepo.Delete(ctx, id)
}
