package service

import (
	"context"
	"math"
	"sort"

	"github.com/dom/league-team-hub/internal/domain"
	"github.com/dom/league-team-hub/internal/repository"
)

const topChampionsLimit = 10

type StatisticsService struct {
	scrimRepo repository.ScrimRepository
	draftRepo repository.DraftRepository
}

func NewStatisticsService(scrimRepo repository.ScrimRepository, draftRepo repository.DraftRepository) *StatisticsService {
	return &StatisticsService{
		scrimRepo: scrimRepo,
		draftRepo: draftRepo,
	}
}

// Compute loads the current scrim and draft snapshots and derives the full
// report from them. Nothing is cached; every call recomputes from scratch.
func (s *StatisticsService) Compute(ctx context.Context) (*domain.ScrimStatistics, error) {
	scrims, err := s.scrimRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	drafts, err := s.draftRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return ComputeScrimStatistics(scrims, drafts), nil
}

// ComputeScrimStatistics aggregates win/loss totals, per-draft performance,
// champion usage and the per-day performance series from full snapshots.
// Draft ids referenced by game links are counted as-is, even when no draft
// with that id exists anymore.
func ComputeScrimStatistics(scrims []*domain.Scrim, drafts []*domain.Draft) *domain.ScrimStatistics {
	stats := &domain.ScrimStatistics{
		TotalScrims: len(scrims),
	}

	for _, scrim := range scrims {
		if scrim.IsWin {
			stats.Wins++
		} else {
			stats.Losses++
		}
	}
	stats.Winrate = roundedPercentage(stats.Wins, stats.TotalScrims)

	stats.DraftPerformance = draftPerformance(scrims)
	stats.TopChampions = topChampions(drafts)
	stats.PerformanceOverTime = performanceOverTime(scrims)

	return stats
}

// draftPerformance counts one game per game-draft link, crediting the
// scrim's overall outcome to each linked draft. Sorted by total games
// descending; ties keep first-seen order so repeated runs are identical.
func draftPerformance(scrims []*domain.Scrim) []domain.DraftPerformance {
	usage := make(map[string]*domain.DraftPerformance)
	var order []string

	for _, scrim := range scrims {
		for _, game := range scrim.GameDrafts {
			if game.DraftID == "" {
				continue
			}
			perf, ok := usage[game.DraftID]
			if !ok {
				perf = &domain.DraftPerformance{DraftID: game.DraftID}
				usage[game.DraftID] = perf
				order = append(order, game.DraftID)
			}
			perf.Total++
			if scrim.IsWin {
				perf.Wins++
			} else {
				perf.Losses++
			}
		}
	}

	result := make([]domain.DraftPerformance, 0, len(order))
	for _, draftID := range order {
		perf := usage[draftID]
		perf.Winrate = roundedPercentage(perf.Wins, perf.Total)
		result = append(result, *perf)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total > result[j].Total
	})
	return result
}

// topChampions counts every non-empty champion reference across all ten
// role slots (team and enemy) of every draft, keeping the ten most used.
func topChampions(drafts []*domain.Draft) []domain.ChampionUsage {
	counts := make(map[string]int)
	var order []string

	for _, draft := range drafts {
		for _, championID := range draft.SlotChampionIDs() {
			if championID == nil || *championID == "" {
				continue
			}
			if _, ok := counts[*championID]; !ok {
				order = append(order, *championID)
			}
			counts[*championID]++
		}
	}

	result := make([]domain.ChampionUsage, 0, len(order))
	for _, championID := range order {
		result = append(result, domain.ChampionUsage{
			ChampionID: championID,
			Count:      counts[championID],
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	if len(result) > topChampionsLimit {
		result = result[:topChampionsLimit]
	}
	return result
}

// performanceOverTime buckets scrims by UTC calendar date. The ISO date
// keys sort lexicographically, which is also chronological.
func performanceOverTime(scrims []*domain.Scrim) []domain.DailyPerformance {
	byDate := make(map[string]*domain.DailyPerformance)

	for _, scrim := range scrims {
		key := scrim.Date.UTC().Format("2006-01-02")
		day, ok := byDate[key]
		if !ok {
			day = &domain.DailyPerformance{Date: key}
			byDate[key] = day
		}
		if scrim.IsWin {
			day.Victories++
		} else {
			day.Defeats++
		}
		day.Total++
	}

	result := make([]domain.DailyPerformance, 0, len(byDate))
	for _, day := range byDate {
		result = append(result, *day)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})
	return result
}

func roundedPercentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
