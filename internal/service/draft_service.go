package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dom/league-team-hub/internal/domain"
	"github.com/dom/league-team-hub/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DraftService struct {
	draftRepo    repository.DraftRepository
	variantRepo  repository.DraftVariantRepository
	championRepo repository.ChampionRepository
}

func NewDraftService(draftRepo repository.DraftRepository, variantRepo repository.DraftVariantRepository, championRepo repository.ChampionRepository) *DraftService {
	return &DraftService{
		draftRepo:    draftRepo,
		variantRepo:  variantRepo,
		championRepo: championRepo,
	}
}

// DraftInput carries every user-settable draft field. PUT replaces the
// draft's mutable fields with these values; createdAt never changes.
type DraftInput struct {
	Name               string   `json:"name"`
	TeamTopChampionID  *string  `json:"teamTopChampionId"`
	TeamJglChampionID  *string  `json:"teamJglChampionId"`
	TeamMidChampionID  *string  `json:"teamMidChampionId"`
	TeamAdcChampionID  *string  `json:"teamAdcChampionId"`
	TeamSupChampionID  *string  `json:"teamSupChampionId"`
	EnemyTopChampionID *string  `json:"enemyTopChampionId"`
	EnemyJglChampionID *string  `json:"enemyJglChampionId"`
	EnemyMidChampionID *string  `json:"enemyMidChampionId"`
	EnemyAdcChampionID *string  `json:"enemyAdcChampionId"`
	EnemySupChampionID *string  `json:"enemySupChampionId"`
	TeamBans           []string `json:"teamBans"`
	EnemyBans          []string `json:"enemyBans"`
}

func (in DraftInput) apply(draft *domain.Draft) {
	draft.Name = in.Name
	draft.TeamTopChampionID = in.TeamTopChampionID
	draft.TeamJglChampionID = in.TeamJglChampionID
	draft.TeamMidChampionID = in.TeamMidChampionID
	draft.TeamAdcChampionID = in.TeamAdcChampionID
	draft.TeamSupChampionID = in.TeamSupChampionID
	draft.EnemyTopChampionID = in.EnemyTopChampionID
	draft.EnemyJglChampionID = in.EnemyJglChampionID
	draft.EnemyMidChampionID = in.EnemyMidChampionID
	draft.EnemyAdcChampionID = in.EnemyAdcChampionID
	draft.EnemySupChampionID = in.EnemySupChampionID
	if in.TeamBans == nil {
		in.TeamBans = []string{}
	}
	if in.EnemyBans == nil {
		in.EnemyBans = []string{}
	}
	draft.TeamBans = datatypes.NewJSONSlice(in.TeamBans)
	draft.EnemyBans = datatypes.NewJSONSlice(in.EnemyBans)
}

// ListWithDetails returns every draft with its variants and each role slot
// resolved to a champion record. A slot whose champion id no longer exists
// stays unresolved without failing the draft.
func (s *DraftService) ListWithDetails(ctx context.Context) ([]*domain.DraftWithDetails, error) {
	drafts, err := s.draftRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}

	variants, err := s.variantRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list draft variants: %w", err)
	}

	champions, err := s.championRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list champions: %w", err)
	}

	variantsByDraft := make(map[uuid.UUID][]*domain.DraftVariant)
	for _, v := range variants {
		variantsByDraft[v.DraftID] = append(variantsByDraft[v.DraftID], v)
	}

	championsByID := make(map[string]*domain.Champion, len(champions))
	for _, c := range champions {
		championsByID[c.ID] = c
	}

	resolve := func(id *string) *domain.Champion {
		if id == nil {
			return nil
		}
		return championsByID[*id]
	}

	result := make([]*domain.DraftWithDetails, len(drafts))
	for i, d := range drafts {
		detail := &domain.DraftWithDetails{
			Draft:    *d,
			Variants: variantsByDraft[d.ID],
		}
		if detail.Variants == nil {
			detail.Variants = []*domain.DraftVariant{}
		}
		detail.TeamTopChampion = resolve(d.TeamTopChampionID)
		detail.TeamJglChampion = resolve(d.TeamJglChampionID)
		detail.TeamMidChampion = resolve(d.TeamMidChampionID)
		detail.TeamAdcChampion = resolve(d.TeamAdcChampionID)
		detail.TeamSupChampion = resolve(d.TeamSupChampionID)
		detail.EnemyTopChampion = resolve(d.EnemyTopChampionID)
		detail.EnemyJglChampion = resolve(d.EnemyJglChampionID)
		detail.EnemyMidChampion = resolve(d.EnemyMidChampionID)
		detail.EnemyAdcChampion = resolve(d.EnemyAdcChampionID)
		detail.EnemySupChampion = resolve(d.EnemySupChampionID)
		result[i] = detail
	}
	return result, nil
}

func (s *DraftService) Create(ctx context.Context, in DraftInput) (*domain.Draft, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.NewValidationError("draft name is required", "name")
	}

	draft := &domain.Draft{ID: uuid.New()}
	in.apply(draft)

	if err := s.draftRepo.Create(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *DraftService) Update(ctx context.Context, id uuid.UUID, in DraftInput) (*domain.Draft, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.NewValidationError("draft name cannot be empty", "name")
	}

	draft, err := s.draftRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in.apply(draft)

	if err := s.draftRepo.Update(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *DraftService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.draftRepo.Delete(ctx, id)
}

// VariantInput carries the user-settable fields of a draft variant.
type VariantInput struct {
	Name          string  `json:"name"`
	TopChampionID *string `json:"topChampionId"`
	JglChampionID *string `json:"jglChampionId"`
	MidChampionID *string `json:"midChampionId"`
	AdcChampionID *string `json:"adcChampionId"`
	SupChampionID *string `json:"supChampionId"`
}

func (s *DraftService) AddVariant(ctx context.Context, draftID uuid.UUID, in VariantInput) (*domain.DraftVariant, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.NewValidationError("variant name is required", "name")
	}

	// The parent draft must exist; variants cannot dangle.
	if _, err := s.draftRepo.GetByID(ctx, draftID); err != nil {
		return nil, err
	}

	variant := &domain.DraftVariant{
		ID:            uuid.New(),
		DraftID:       draftID,
		Name:          in.Name,
		TopChampionID: in.TopChampionID,
		JglChampionID: in.JglChampionID,
		MidChampionID: in.MidChampionID,
		AdcChampionID: in.AdcChampionID,
		SupChampionID: in.SupChampionID,
	}

	if err := s.variantRepo.Create(ctx, variant); err != nil {
		return nil, err
	}
	return variant, nil
}

func (s *DraftService) DeleteVariant(ctx context.Context, id uuid.UUID) error {
	return s.variantRepo.Delete(ctx, id)
}
