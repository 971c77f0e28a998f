package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/dom/league-team-hub/internal/domain"
	"github.com/dom/league-team-hub/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateScrim(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("creates with compositions and game links", func(t *testing.T) {
		ts.DB.Truncate(t)

		resp := testutil.PostJSON(t, ts.APIURL("/scrims"), map[string]interface{}{
			"date":     "2024-03-01T18:00:00Z",
			"opponent": "Cloud Nine",
			"isWin":    true,
			"score":    "2-1",
			"comments": "strong early games",
			"compositions": []map[string]string{
				{"TOP": "Gnar", "JGL": "LeeSin", "MID": "Ahri", "ADC": "Jinx", "SUP": "Thresh"},
			},
			"drafts": []map[string]interface{}{
				{"gameNumber": 1, "draftId": "some-draft"},
			},
		})

		var scrim domain.Scrim
		testutil.AssertJSONResponse(t, resp, http.StatusOK, &scrim)
		assert.Equal(t, "Cloud Nine", scrim.Opponent)
		assert.True(t, scrim.IsWin)
		assert.Equal(t, "2-1", scrim.Score)
		require.Len(t, scrim.Compositions, 1)
		assert.Equal(t, "Ahri", scrim.Compositions[0][domain.RoleMid])
		require.Len(t, scrim.GameDrafts, 1)
		assert.Equal(t, 1, scrim.GameDrafts[0].GameNumber)
	})

	t.Run("date defaults to now when omitted", func(t *testing.T) {
		ts.DB.Truncate(t)

		before := time.Now().Add(-time.Minute)
		resp := testutil.PostJSON(t, ts.APIURL("/scrims"), map[string]interface{}{
			"opponent": "Cloud Nine",
			"score":    "0-2",
		})

		var scrim domain.Scrim
		testutil.AssertJSONResponse(t, resp, http.StatusOK, &scrim)
		assert.True(t, scrim.Date.After(before))
	})

	t.Run("opponent and score are required", func(t *testing.T) {
		ts.DB.Truncate(t)

		resp := testutil.PostJSON(t, ts.APIURL("/scrims"), map[string]interface{}{
			"score": "2-0",
		})
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "opponent name is required")

		resp = testutil.PostJSON(t, ts.APIURL("/scrims"), map[string]interface{}{
			"opponent": "Cloud Nine",
		})
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "score is required")
	})
}

func TestListScrims(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("ordered by date ascending", func(t *testing.T) {
		ts.DB.Truncate(t)

		testutil.NewScrimBuilder().
			WithOpponent("Later").
			WithDate(time.Date(2024, 3, 2, 18, 0, 0, 0, time.UTC)).
			Build(t, ts.DB.DB)
		testutil.NewScrimBuilder().
			WithOpponent("Earlier").
			WithDate(time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)).
			Build(t, ts.DB.DB)

		resp, err := http.Get(ts.APIURL("/scrims"))
		require.NoError(t, err)

		var scrims []domain.Scrim
		testutil.AssertJSONResponse(t, resp, http.StatusOK, &scrims)
		require.Len(t, scrims, 2)
		assert.Equal(t, "Earlier", scrims[0].Opponent)
		assert.Equal(t, "Later", scrims[1].Opponent)
	})
}

func TestUpdateScrim(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		ts.DB.Truncate(t)

		scrim := testutil.NewScrimBuilder().
			WithOpponent("Cloud Nine").
			WithLoss("0-2").
			WithComments("rough vod review").
			Build(t, ts.DB.DB)

		resp := testutil.PutJSON(t, ts.APIURL("/scrims/"+scrim.ID.String()), map[string]interface{}{
			"isWin": true,
			"score": "2-1",
		})

		var updated domain.Scrim
		testutil.AssertJSONResponse(t, resp, http.StatusOK, &updated)
		assert.True(t, updated.IsWin)
		assert.Equal(t, "2-1", updated.Score)
		assert.Equal(t, "Cloud Nine", updated.Opponent)
		assert.Equal(t, "rough vod review", updated.Comments)
	})

	t.Run("rejects blanking the opponent", func(t *testing.T) {
		ts.DB.Truncate(t)
		scrim := testutil.NewScrimBuilder().Build(t, ts.DB.DB)

		resp := testutil.PutJSON(t, ts.APIURL("/scrims/"+scrim.ID.String()), map[string]interface{}{
			"opponent": "  ",
		})
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "opponent name cannot be empty")
	})

	t.Run("unknown scrim is a 404", func(t *testing.T) {
		ts.DB.Truncate(t)

		resp := testutil.PutJSON(t, ts.APIURL("/scrims/"+uuid.New().String()), map[string]interface{}{
			"score": "1-1",
		})
		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "")
	})
}

func TestDeleteScrim(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("removes the scrim", func(t *testing.T) {
		ts.DB.Truncate(t)
		scrim := testutil.NewScrimBuilder().Build(t, ts.DB.DB)

		resp := testutil.Delete(t, ts.APIURL("/scrims/"+scrim.ID.String()))
		var result map[string]bool
		testutil.AssertJSONResponse(t, resp, http.StatusOK, &result)
		assert.True(t, result["success"])

		var count int64
		require.NoError(t, ts.DB.DB.Model(&domain.Scrim{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})
}

func TestScrimStatistics(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("aggregates the full snapshot", func(t *testing.T) {
		ts.DB.Truncate(t)

		day := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)
		draft := testutil.NewDraftBuilder().
			WithTeamChampions("Gnar", "LeeSin", "Ahri", "Jinx", "Thresh").
			Build(t, ts.DB.DB)

		testutil.NewScrimBuilder().
			WithDate(day).
			WithWin("2-0").
			WithGameDrafts(
				domain.GameDraft{GameNumber: 1, DraftID: draft.ID.String()},
				domain.GameDraft{GameNumber: 2, DraftID: draft.ID.String()},
			).
			Build(t, ts.DB.DB)
		testutil.NewScrimBuilder().
			WithDate(day.AddDate(0, 0, 1)).
			WithLoss("1-2").
			WithGameDrafts(domain.GameDraft{GameNumber: 1, DraftID: draft.ID.String()}).
			Build(t, ts.DB.DB)

		resp, err := http.Get(ts.APIURL("/scrims/statistics"))
		require.NoError(t, err)

		var stats domain.ScrimStatistics
		testutil.AssertJSONResponse(t, resp, http.StatusOK, &stats)

		assert.Equal(t, 2, stats.TotalScrims)
		assert.Equal(t, 1, stats.Wins)
		assert.Equal(t, 1, stats.Losses)
		assert.Equal(t, 50, stats.Winrate)

		require.Len(t, stats.DraftPerformance, 1)
		assert.Equal(t, 3, stats.DraftPerformance[0].Total)
		assert.Equal(t, 2, stats.DraftPerformance[0].Wins)
		assert.Equal(t, 67, stats.DraftPerformance[0].Winrate)

		require.Len(t, stats.TopChampions, 5)
		require.Len(t, stats.PerformanceOverTime, 2)
		assert.Equal(t, "2024-03-01", stats.PerformanceOverTime[0].Date)
	})

	t.Run("empty store reports zeros", func(t *testing.T) {
		ts.DB.Truncate(t)

		resp, err := http.Get(ts.APIURL("/scrims/statistics"))
		require.NoError(t, err)

		var stats domain.ScrimStatistics
		testutil.AssertJSONResponse(t, resp, http.StatusOK, &stats)
		assert.Equal(t, 0, stats.TotalScrims)
		assert.Equal(t, 0, stats.Winrate)
		assert.Empty(t, stats.DraftPerformance)
	})
}
