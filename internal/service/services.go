package service

import (
	"github.com/dom/league-team-hub/internal/config"
	"github.com/dom/league-team-hub/internal/repository"
	"go.uber.org/zap"
)

type Services struct {
	Champion   *ChampionService
	Draft      *DraftService
	Scrim      *ScrimService
	Statistics *StatisticsService
	Player     *PlayerService
	Synergy    *SynergyService
	PatchNote  *PatchNoteService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, logger *zap.Logger) *Services {
	return &Services{
		Champion:   NewChampionService(repos.Champion, repos.Evaluation, cfg, logger),
		Draft:      NewDraftService(repos.Draft, repos.DraftVariant, repos.Champion),
		Scrim:      NewScrimService(repos.Scrim),
		Statistics: NewStatisticsService(repos.Scrim, repos.Draft),
		Player:     NewPlayerService(repos.Player, repos.Availability),
		Synergy:    NewSynergyService(repos.Synergy),
		PatchNote:  NewPatchNoteService(repos.PatchNote),
	}
}
