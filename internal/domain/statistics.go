package domain

// ScrimStatistics is the full report derived from the current scrim and
// draft snapshots. It is recomputed on every request.
type ScrimStatistics struct {
	TotalScrims         int                `json:"totalScrims"`
	Wins                int                `json:"wins"`
	Losses              int                `json:"losses"`
	Winrate             int                `json:"winrate"` // rounded percentage, 0 when no scrims
	DraftPerformance    []DraftPerformance `json:"draftPerformance"`
	TopChampions        []ChampionUsage    `json:"topChampions"`
	PerformanceOverTime []DailyPerformance `json:"performanceOverTime"`
}

// DraftPerformance accumulates game outcomes per draft id referenced by
// scrim game links, sorted by total games descending.
type DraftPerformance struct {
	DraftID string `json:"draftId"`
	Wins    int    `json:"wins"`
	Losses  int    `json:"losses"`
	Total   int    `json:"total"`
	Winrate int    `json:"winrate"`
}

type ChampionUsage struct {
	ChampionID string `json:"championId"`
	Count      int    `json:"count"`
}

// DailyPerformance buckets scrim outcomes by UTC calendar date.
type DailyPerformance struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Victories int    `json:"victories"`
	Defeats   int    `json:"defeats"`
	Total     int    `json:"total"`
}
