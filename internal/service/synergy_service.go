package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dom/league-team-hub/internal/domain"
	"github.com/dom/league-team-hub/internal/repository"
	"github.com/google/uuid"
)

type SynergyService struct {
	synergyRepo repository.SynergyRepository
}

func NewSynergyService(synergyRepo repository.SynergyRepository) *SynergyService {
	return &SynergyService{synergyRepo: synergyRepo}
}

// CreateSynergyInput carries the user-settable fields of a new synergy.
type CreateSynergyInput struct {
	Champion1ID string             `json:"champion1Id"`
	Champion2ID string             `json:"champion2Id"`
	SynergyType domain.SynergyType `json:"synergyType"`
	Rating      int                `json:"rating"`
	Notes       string             `json:"notes"`
}

func (s *SynergyService) List(ctx context.Context) ([]*domain.ChampionSynergy, error) {
	return s.synergyRepo.GetAll(ctx)
}

func (s *SynergyService) Create(ctx context.Context, in CreateSynergyInput) (*domain.ChampionSynergy, error) {
	if strings.TrimSpace(in.Champion1ID) == "" {
		return nil, domain.NewValidationError("champion 1 id is required", "champion1Id")
	}
	if strings.TrimSpace(in.Champion2ID) == "" {
		return nil, domain.NewValidationError("champion 2 id is required", "champion2Id")
	}
	if !domain.IsValidSynergyType(in.SynergyType) {
		return nil, domain.NewValidationError("synergyType must be positive or negative", "synergyType")
	}
	if in.Rating < domain.RatingMin || in.Rating > domain.RatingMax {
		return nil, domain.NewValidationError(
			fmt.Sprintf("rating must be between %d and %d", domain.RatingMin, domain.RatingMax),
			"rating",
		)
	}

	synergy := &domain.ChampionSynergy{
		ID:          uuid.New(),
		Champion1ID: in.Champion1ID,
		Champion2ID: in.Champion2ID,
		SynergyType: in.SynergyType,
		Rating:      in.Rating,
		Notes:       in.Notes,
	}
	if err := s.synergyRepo.Create(ctx, synergy); err != nil {
		return nil, err
	}
	return synergy, nil
}

func (s *SynergyService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.synergyRepo.Delete(ctx, id)
}
