package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dom/league-team-hub/internal/config"
	"github.com/dom/league-team-hub/internal/domain"
	"github.com/dom/league-team-hub/internal/repository"
	"go.uber.org/zap"
)

const (
	dataDragonBaseURL = "https://ddragon.leagueoflegends.com"
)

type ChampionService struct {
	championRepo   repository.ChampionRepository
	evaluationRepo repository.EvaluationRepository
	cfg            *config.Config
	logger         *zap.Logger
	httpClient     *http.Client
}

func NewChampionService(championRepo repository.ChampionRepository, evaluationRepo repository.EvaluationRepository, cfg *config.Config, logger *zap.Logger) *ChampionService {
	return &ChampionService{
		championRepo:   championRepo,
		evaluationRepo: evaluationRepo,
		cfg:            cfg,
		logger:         logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListWithEvaluations returns every champion with its evaluation attached
// when one exists. The join happens here rather than in the store; both
// tables are scanned once and matched through a map keyed by champion id.
func (s *ChampionService) ListWithEvaluations(ctx context.Context) ([]*domain.ChampionWithEvaluation, error) {
	champions, err := s.championRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list champions: %w", err)
	}

	evaluations, err := s.evaluationRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}

	byChampion := make(map[string]*domain.ChampionEvaluation, len(evaluations))
	for _, e := range evaluations {
		byChampion[e.ChampionID] = e
	}

	result := make([]*domain.ChampionWithEvaluation, len(champions))
	for i, c := range champions {
		result[i] = &domain.ChampionWithEvaluation{
			Champion:   *c,
			Evaluation: byChampion[c.ID],
		}
	}
	return result, nil
}

// UpdateRoles replaces a champion's role set. Every submitted token must be
// one of the five valid roles; otherwise nothing is written and the invalid
// tokens are reported back.
func (s *ChampionService) UpdateRoles(ctx context.Context, championID string, roles []domain.Role) (*domain.Champion, error) {
	var invalid []string
	for _, role := range roles {
		if !domain.IsValidRole(role) {
			invalid = append(invalid, string(role))
		}
	}
	if len(invalid) > 0 {
		return nil, domain.NewValidationError("invalid roles", invalid...)
	}

	return s.championRepo.UpdateRoles(ctx, championID, roles)
}

// Evaluate merges a partial rating update into the champion's evaluation,
// creating it with zero defaults on first rating. Out-of-range ratings are
// rejected before any store call.
func (s *ChampionService) Evaluate(ctx context.Context, championID string, patch domain.EvaluationPatch) (*domain.ChampionEvaluation, error) {
	if championID == "" {
		return nil, domain.NewValidationError("championId is required", "championId")
	}
	if invalid := patch.InvalidFields(); len(invalid) > 0 {
		return nil, domain.NewValidationError(
			fmt.Sprintf("ratings must be between %d and %d", domain.RatingMin, domain.RatingMax),
			invalid...,
		)
	}

	return s.evaluationRepo.Upsert(ctx, championID, patch)
}

type DataDragonVersionResponse []string

type DataDragonChampionsResponse struct {
	Type    string                        `json:"type"`
	Format  string                        `json:"format"`
	Version string                        `json:"version"`
	Data    map[string]DataDragonChampion `json:"data"`
}

type DataDragonChampion struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Name  string `json:"name"`
	Image struct {
		Full string `json:"full"`
	} `json:"image"`
}

// Seed populates the champion catalog from Data Dragon. It is idempotent:
// when the catalog already has rows it does nothing, so it is safe to run
// on every process start.
func (s *ChampionService) Seed(ctx context.Context) (int, error) {
	count, err := s.championRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count champions: %w", err)
	}
	if count > 0 {
		s.logger.Info("champion catalog already seeded", zap.Int64("champions", count))
		return 0, nil
	}

	version, err := s.getLatestVersion()
	if err != nil {
		return 0, fmt.Errorf("failed to get latest version: %w", err)
	}

	championsURL := fmt.Sprintf("%s/cdn/%s/data/en_US/champion.json", dataDragonBaseURL, version)
	resp, err := s.httpClient.Get(championsURL)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch champions: %w", err)
	}
	defer resp.Body.Close()

	var championsResp DataDragonChampionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&championsResp); err != nil {
		return 0, fmt.Errorf("failed to decode champions: %w", err)
	}

	champions := make([]*domain.Champion, 0, len(championsResp.Data))
	for _, c := range championsResp.Data {
		champions = append(champions, &domain.Champion{
			ID:       c.ID,
			Key:      c.Key,
			Name:     c.Name,
			ImageURL: fmt.Sprintf("%s/cdn/%s/img/champion/%s", dataDragonBaseURL, version, c.Image.Full),
		})
	}

	if err := s.championRepo.CreateMany(ctx, champions); err != nil {
		return 0, fmt.Errorf("failed to insert champions: %w", err)
	}

	s.logger.Info("seeded champion catalog",
		zap.Int("champions", len(champions)),
		zap.String("version", version))
	return len(champions), nil
}

func (s *ChampionService) getLatestVersion() (string, error) {
	if s.cfg.DataDragonVersion != "" {
		return s.cfg.DataDragonVersion, nil
	}

	resp, err := s.httpClient.Get(dataDragonBaseURL + "/api/versions.json")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var versions DataDragonVersionResponse
	if err := json.NewDecoder(resp.Body).Decode(&versions); err != nil {
		return "", err
	}

	if len(versions) == 0 {
		return "", fmt.Errorf("no versions available")
	}

	return versions[0], nil
}
