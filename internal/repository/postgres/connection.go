package postgres

import (
	"github.com/dom/league-team-hub/internal/domain"
	"github.com/dom/league-team-hub/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.Champion{},
		&domain.ChampionEvaluation{},
		&domain.Draft{},
		&domain.DraftVariant{},
		&domain.Scrim{},
		&domain.Player{},
		&domain.PlayerAvailability{},
		&domain.ChampionSynergy{},
		&domain.PatchNote{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Champion:     NewChampionRepository(db),
		Evaluation:   NewEvaluationRepository(db),
		Draft:        NewDraftRepository(db),
		DraftVariant: NewDraftVariantRepository(db),
		Scrim:        NewScrimRepository(db),
		Player:       NewPlayerRepository(db),
		Availability: NewAvailabilityRepository(db),
		Synergy:      NewSynergyRepository(db),
		PatchNote:    NewPatchNoteRepository(db),
	}
}
