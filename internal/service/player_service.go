package service

import (
	"context"
	"strings"

	"github.com/dom/league-team-hub/internal/domain"
	"github.com/dom/league-team-hub/internal/repository"
	"github.com/google/uuid"
)

type PlayerService struct {
	playerRepo       repository.PlayerRepository
	availabilityRepo repository.AvailabilityRepository
}

func NewPlayerService(playerRepo repository.PlayerRepository, availabilityRepo repository.AvailabilityRepository) *PlayerService {
	return &PlayerService{
		playerRepo:       playerRepo,
		availabilityRepo: availabilityRepo,
	}
}

func (s *PlayerService) List(ctx context.Context) ([]*domain.Player, error) {
	return s.playerRepo.GetAll(ctx)
}

func (s *PlayerService) Create(ctx context.Context, name, role string) (*domain.Player, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewValidationError("player name is required", "name")
	}
	if strings.TrimSpace(role) == "" {
		return nil, domain.NewValidationError("player role is required", "role")
	}

	player := &domain.Player{
		ID:   uuid.New(),
		Name: name,
		Role: role,
	}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// Delete removes the player and, through the store cascade, every
// availability record for that player. Deleting a missing player is a no-op.
func (s *PlayerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.playerRepo.Delete(ctx, id)
}

func (s *PlayerService) ListAvailability(ctx context.Context) ([]*domain.PlayerAvailability, error) {
	return s.availabilityRepo.GetAll(ctx)
}

// SetAvailability upserts the flag for one (player, day) pair. The day is
// validated before any store call; re-posting the same pair overwrites the
// existing record instead of duplicating it.
func (s *PlayerService) SetAvailability(ctx context.Context, playerID uuid.UUID, dayOfWeek int, isAvailable bool) (*domain.PlayerAvailability, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, domain.NewValidationError("dayOfWeek must be between 0 and 6", "dayOfWeek")
	}

	return s.availabilityRepo.Upsert(ctx, playerID, dayOfWeek, isAvailable)
}
