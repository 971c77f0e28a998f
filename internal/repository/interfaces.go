package repository

import (
	"context"

	"github.com/dom/league-team-hub/internal/domain"
	"github.com/google/uuid"
)

type ChampionRepository interface {
	Create(ctx context.Context, champion *domain.Champion) error
	CreateMany(ctx context.Context, champions []*domain.Champion) error
	GetAll(ctx context.Context) ([]*domain.Champion, error)
	GetByID(ctx context.Context, id string) (*domain.Champion, error)
	UpdateRoles(ctx context.Context, id string, roles []domain.Role) (*domain.Champion, error)
	Count(ctx context.Context) (int64, error)
}

type EvaluationRepository interface {
	GetAll(ctx context.Context) ([]*domain.ChampionEvaluation, error)
	GetByChampionID(ctx context.Context, championID string) (*domain.ChampionEvaluation, error)
	// Upsert merges the submitted rating fields into the champion's
	// evaluation row as a single statement, creating the row with zero
	// defaults when none exists.
	Upsert(ctx context.Context, championID string, patch domain.EvaluationPatch) (*domain.ChampionEvaluation, error)
}

type DraftRepository interface {
	Create(ctx context.Context, draft *domain.Draft) error
	GetAll(ctx context.Context) ([]*domain.Draft, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	Update(ctx context.Context, draft *domain.Draft) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type DraftVariantRepository interface {
	Create(ctx context.Context, variant *domain.DraftVariant) error
	GetAll(ctx context.Context) ([]*domain.DraftVariant, error)
	GetByDraftID(ctx context.Context, draftID uuid.UUID) ([]*domain.DraftVariant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ScrimRepository interface {
	Create(ctx context.Context, scrim *domain.Scrim) error
	GetAll(ctx context.Context) ([]*domain.Scrim, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Scrim, error)
	Update(ctx context.Context, scrim *domain.Scrim) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PlayerRepository interface {
	Create(ctx context.Context, player *domain.Player) error
	GetAll(ctx context.Context) ([]*domain.Player, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AvailabilityRepository interface {
	GetAll(ctx context.Context) ([]*domain.PlayerAvailability, error)
	// Upsert writes the flag for a (player, day) pair, overwriting any
	// existing record for that pair instead of inserting a duplicate.
	Upsert(ctx context.Context, playerID uuid.UUID, dayOfWeek int, isAvailable bool) (*domain.PlayerAvailability, error)
}

type SynergyRepository interface {
	Create(ctx context.Context, synergy *domain.ChampionSynergy) error
	GetAll(ctx context.Context) ([]*domain.ChampionSynergy, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PatchNoteRepository interface {
	Create(ctx context.Context, note *domain.PatchNote) error
	GetAll(ctx context.Context) ([]*domain.PatchNote, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Repositories struct {
	Champion     ChampionRepository
	Evaluation   EvaluationRepository
	Draft        DraftRepository
	DraftVariant DraftVariantRepository
	Scrim        ScrimRepository
	Player       PlayerRepository
	Availability AvailabilityRepository
	Synergy      SynergyRepository
	PatchNote    PatchNoteRepository
}
