package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/dom/league-team-hub/internal/domain"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var faker = gofakeit.New(0)

// ChampionBuilder builds champion catalog rows for tests
type ChampionBuilder struct {
	champion *domain.Champion
}

func NewChampionBuilder(id string) *ChampionBuilder {
	return &ChampionBuilder{
		champion: &domain.Champion{
			ID:       id,
			Name:     id,
			ImageURL: fmt.Sprintf("https://ddragon.leagueoflegends.com/cdn/14.1.1/img/champion/%s.png", id),
			Key:      fmt.Sprintf("%d", faker.Number(1, 900)),
			Roles:    datatypes.NewJSONSlice([]domain.Role{}),
		},
	}
}

func (b *ChampionBuilder) WithName(name string) *ChampionBuilder {
	b.champion.Name = name
	return b
}

func (b *ChampionBuilder) WithRoles(roles ...domain.Role) *ChampionBuilder {
	b.champion.Roles = datatypes.NewJSONSlice(roles)
	return b
}

func (b *ChampionBuilder) Build(t *testing.T, db *gorm.DB) *domain.Champion {
	t.Helper()
	if err := db.Create(b.champion).Error; err != nil {
		t.Fatalf("failed to create test champion: %v", err)
	}
	return b.champion
}

// DraftBuilder builds draft rows for tests
type DraftBuilder struct {
	draft *domain.Draft
}

func NewDraftBuilder() *DraftBuilder {
	return &DraftBuilder{
		draft: &domain.Draft{
			ID:        uuid.New(),
			Name:      fmt.Sprintf("draft_%s", uuid.New().String()[:8]),
			CreatedAt: time.Now(),
			TeamBans:  datatypes.NewJSONSlice([]string{}),
			EnemyBans: datatypes.NewJSONSlice([]string{}),
		},
	}
}

func (b *DraftBuilder) WithName(name string) *DraftBuilder {
	b.draft.Name = name
	return b
}

// WithTeamChampions fills the five team slots in role order. Empty strings
// leave the slot unset.
func (b *DraftBuilder) WithTeamChampions(top, jgl, mid, adc, sup string) *DraftBuilder {
	b.draft.TeamTopChampionID = optional(top)
	b.draft.TeamJglChampionID = optional(jgl)
	b.draft.TeamMidChampionID = optional(mid)
	b.draft.TeamAdcChampionID = optional(adc)
	b.draft.TeamSupChampionID = optional(sup)
	return b
}

// WithEnemyChampions fills the five enemy slots in role order. Empty strings
// leave the slot unset.
func (b *DraftBuilder) WithEnemyChampions(top, jgl, mid, adc, sup string) *DraftBuilder {
	b.draft.EnemyTopChampionID = optional(top)
	b.draft.EnemyJglChampionID = optional(jgl)
	b.draft.EnemyMidChampionID = optional(mid)
	b.draft.EnemyAdcChampionID = optional(adc)
	b.draft.EnemySupChampionID = optional(sup)
	return b
}

func (b *DraftBuilder) WithTeamBans(bans ...string) *DraftBuilder {
	b.draft.TeamBans = datatypes.NewJSONSlice(bans)
	return b
}

func (b *DraftBuilder) Build(t *testing.T, db *gorm.DB) *domain.Draft {
	t.Helper()
	if err := db.Create(b.draft).Error; err != nil {
		t.Fatalf("failed to create test draft: %v", err)
	}
	return b.draft
}

// BuildStruct returns the draft without persisting it
func (b *DraftBuilder) BuildStruct() *domain.Draft {
	return b.draft
}

// ScrimBuilder builds scrim rows for tests
type ScrimBuilder struct {
	scrim *domain.Scrim
}

func NewScrimBuilder() *ScrimBuilder {
	return &ScrimBuilder{
		scrim: &domain.Scrim{
			ID:           uuid.New(),
			Date:         time.Now(),
			Opponent:     faker.Company(),
			IsWin:        false,
			Score:        "0-2",
			Compositions: datatypes.NewJSONSlice([]domain.Composition{}),
			GameDrafts:   datatypes.NewJSONSlice([]domain.GameDraft{}),
		},
	}
}

func (b *ScrimBuilder) WithOpponent(opponent string) *ScrimBuilder {
	b.scrim.Opponent = opponent
	return b
}

func (b *ScrimBuilder) WithDate(date time.Time) *ScrimBuilder {
	b.scrim.Date = date
	return b
}

func (b *ScrimBuilder) WithWin(score string) *ScrimBuilder {
	b.scrim.IsWin = true
	b.scrim.Score = score
	return b
}

func (b *ScrimBuilder) WithLoss(score string) *ScrimBuilder {
	b.scrim.IsWin = false
	b.scrim.Score = score
	return b
}

func (b *ScrimBuilder) WithComments(comments string) *ScrimBuilder {
	b.scrim.Comments = comments
	return b
}

func (b *ScrimBuilder) WithGameDrafts(drafts ...domain.GameDraft) *ScrimBuilder {
	b.scrim.GameDrafts = datatypes.NewJSONSlice(drafts)
	return b
}

func (b *ScrimBuilder) WithCompositions(comps ...domain.Composition) *ScrimBuilder {
	b.scrim.Compositions = datatypes.NewJSONSlice(comps)
	return b
}

func (b *ScrimBuilder) Build(t *testing.T, db *gorm.DB) *domain.Scrim {
	t.Helper()
	if err := db.Create(b.scrim).Error; err != nil {
		t.Fatalf("failed to create test scrim: %v", err)
	}
	return b.scrim
}

// BuildStruct returns the scrim without persisting it
func (b *ScrimBuilder) BuildStruct() *domain.Scrim {
	return b.scrim
}

// PlayerBuilder builds roster rows for tests
type PlayerBuilder struct {
	player *domain.Player
}

func NewPlayerBuilder() *PlayerBuilder {
	return &PlayerBuilder{
		player: &domain.Player{
			ID:   uuid.New(),
			Name: fmt.Sprintf("%s_%s", faker.Gamertag(), uuid.New().String()[:8]),
			Role: string(domain.RoleMid),
		},
	}
}

func (b *PlayerBuilder) WithName(name string) *PlayerBuilder {
	b.player.Name = name
	return b
}

func (b *PlayerBuilder) WithRole(role domain.Role) *PlayerBuilder {
	b.player.Role = string(role)
	return b
}

func (b *PlayerBuilder) Build(t *testing.T, db *gorm.DB) *domain.Player {
	t.Helper()
	if err := db.Create(b.player).Error; err != nil {
		t.Fatalf("failed to create test player: %v", err)
	}
	return b.player
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
