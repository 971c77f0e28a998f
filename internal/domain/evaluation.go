package domain

import (
	"github.com/google/uuid"
)

// Rating bounds shared by evaluations and synergies.
const (
	RatingMin = 0
	RatingMax = 3
)

// ChampionEvaluation holds the eight strategic ratings for a champion.
// There is at most one row per champion; partial updates merge into it.
type ChampionEvaluation struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ChampionID string    `json:"championId" gorm:"uniqueIndex;not null"`
	PrioLane   int       `json:"prioLane" gorm:"not null;default:0"`
	Strongside int       `json:"strongside" gorm:"not null;default:0"`
	Weakside   int       `json:"weakside" gorm:"not null;default:0"`
	Engage     int       `json:"engage" gorm:"not null;default:0"`
	Peeling    int       `json:"peeling" gorm:"not null;default:0"`
	Split      int       `json:"split" gorm:"not null;default:0"`
	Hypercarry int       `json:"hypercarry" gorm:"not null;default:0"`
	Controle   int       `json:"controle" gorm:"not null;default:0"`
}

// EvaluationPatch is the explicit whitelist of rating fields accepted by a
// partial evaluation update. A nil field was not submitted and keeps its
// stored value.
type EvaluationPatch struct {
	PrioLane   *int `json:"prioLane"`
	Strongside *int `json:"strongside"`
	Weakside   *int `json:"weakside"`
	Engage     *int `json:"engage"`
	Peeling    *int `json:"peeling"`
	Split      *int `json:"split"`
	Hypercarry *int `json:"hypercarry"`
	Controle   *int `json:"controle"`
}

type evaluationField struct {
	name   string // JSON field name
	column string // database column name
	value  *int
}

func (p EvaluationPatch) fields() []evaluationField {
	return []evaluationField{
		{"prioLane", "prio_lane", p.PrioLane},
		{"strongside", "strongside", p.Strongside},
		{"weakside", "weakside", p.Weakside},
		{"engage", "engage", p.Engage},
		{"peeling", "peeling", p.Peeling},
		{"split", "split", p.Split},
		{"hypercarry", "hypercarry", p.Hypercarry},
		{"controle", "controle", p.Controle},
	}
}

// InvalidFields returns the names of submitted ratings outside [RatingMin, RatingMax].
func (p EvaluationPatch) InvalidFields() []string {
	var invalid []string
	for _, f := range p.fields() {
		if f.value != nil && (*f.value < RatingMin || *f.value > RatingMax) {
			invalid = append(invalid, f.name)
		}
	}
	return invalid
}

// Assignments returns the submitted columns for an upsert's update clause.
func (p EvaluationPatch) Assignments() map[string]interface{} {
	set := make(map[string]interface{})
	for _, f := range p.fields() {
		if f.value != nil {
			set[f.column] = *f.value
		}
	}
	return set
}

// Evaluation builds the row to insert when no evaluation exists yet:
// submitted fields keep their values, omitted fields default to zero.
func (p EvaluationPatch) Evaluation(championID string) *ChampionEvaluation {
	eval := &ChampionEvaluation{
		ID:         uuid.New(),
		ChampionID: championID,
	}
	targets := []*int{
		&eval.PrioLane, &eval.Strongside, &eval.Weakside, &eval.Engage,
		&eval.Peeling, &eval.Split, &eval.Hypercarry, &eval.Controle,
	}
	for i, f := range p.fields() {
		if f.value != nil {
			*targets[i] = *f.value
		}
	}
	return eval
}
