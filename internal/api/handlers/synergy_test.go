package handlers_test

import (
	"net/http"
	"testing"

	"github.com/dom/league-team-hub/internal/domain"
	"github.com/dom/league-team-hub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSynergy(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("records a positive pairing", func(t *testing.T) {
		ts.DB.Truncate(t)

		resp := testutil.PostJSON(t, ts.APIURL("/synergies"), map[string]interface{}{
			"champion1Id": "Xayah",
			"champion2Id": "Rakan",
			"synergyType": "positive",
			"rating":      3,
			"notes":       "lane duo",
		})

		var synergy domain.ChampionSynergy
		testutil.AssertJSONResponse(t, resp, http.StatusOK, &synergy)
		assert.Equal(t, "Xayah", synergy.Champion1ID)
		assert.Equal(t, domain.SynergyPositive, synergy.SynergyType)
		assert.Equal(t, 3, synergy.Rating)
	})

	t.Run("rejects an unknown synergy type", func(t *testing.T) {
		ts.DB.Truncate(t)

		resp := testutil.PostJSON(t, ts.APIURL("/synergies"), map[string]interface{}{
			"champion1Id": "Xayah",
			"champion2Id": "Rakan",
			"synergyType": "neutral",
			"rating":      2,
		})
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "synergyType must be positive or negative")
	})

	t.Run("rejects an out-of-range rating", func(t *testing.T) {
		ts.DB.Truncate(t)

		resp := testutil.PostJSON(t, ts.APIURL("/synergies"), map[string]interface{}{
			"champion1Id": "Xayah",
			"champion2Id": "Rakan",
			"synergyType": "positive",
			"rating":      5,
		})
		payload := testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "rating must be between 0 and 3")
		assert.Equal(t, []string{"rating"}, payload.Fields)
	})

	t.Run("both champion ids are required", func(t *testing.T) {
		ts.DB.Truncate(t)

		resp := testutil.PostJSON(t, ts.APIURL("/synergies"), map[string]interface{}{
			"champion2Id": "Rakan",
			"synergyType": "positive",
			"rating":      1,
		})
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "champion 1 id is required")
	})
}

func TestDeleteSynergy(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("removes the pairing", func(t *testing.T) {
		ts.DB.Truncate(t)

		resp := testutil.PostJSON(t, ts.APIURL("/synergies"), map[string]interface{}{
			"champion1Id": "Lucian",
			"champion2Id": "Nami",
			"synergyType": "positive",
			"rating":      2,
		})
		var synergy domain.ChampionSynergy
		testutil.AssertJSONResponse(t, resp, http.StatusOK, &synergy)

		resp = testutil.Delete(t, ts.APIURL("/synergies/"+synergy.ID.String()))
		var result map[string]bool
		testutil.AssertJSONResponse(t, resp, http.StatusOK, &result)
		assert.True(t, result["success"])

		var count int64
		require.NoError(t, ts.DB.DB.Model(&domain.ChampionSynergy{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})
}
