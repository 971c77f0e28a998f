package handlers_test

import (
	"net/http"
	"testing"

	"github.com/dom/league-team-hub/internal/domain"
	"github.com/dom/league-team-hub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListChampions(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("empty catalog", func(t *testing.T) {
		ts.DB.Truncate(t)

		resp, err := http.Get(ts.APIURL("/champions"))
		require.NoError(t, err)

		var champions []domain.ChampionWithEvaluation
		testutil.AssertJSONResponse(t, resp, http.StatusOK, &champions)
		assert.Empty(t, champions)
	})

	t.Run("attaches evaluations only where one exists", func(t *testing.T) {
		ts.DB.Truncate(t)

		testutil.NewChampionBuilder("Ahri").WithRoles(domain.RoleMid).Build(t, ts.DB.DB)
		testutil.NewChampionBuilder("Braum").WithRoles(domain.RoleSup).Build(t, ts.DB.DB)

		resp := testutil.PostJSON(t, ts.APIURL("/champions/evaluate"), map[string]interface{}{
			"championId": "Ahri",
			"engage":     2,
		})
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, err := http.Get(ts.APIURL("/champions"))
		require.NoError(t, err)

		var champions []domain.ChampionWithEvaluation
		testutil.AssertJSONResponse(t, resp, http.StatusOK, &champions)
		require.Len(t, champions, 2)

		// Sorted by name, so Ahri comes first.
		assert.Equal(t, "Ahri", champions[0].ID)
		require.NotNil(t, champions[0].Evaluation)
		assert.Equal(t, 2, champions[0].Evaluation.Engage)

		assert.Equal(t, "Braum", champions[1].ID)
		assert.Nil(t, champions[1].Evaluation)
	})
}

func TestUpdateChampionRoles(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("replaces the role set", func(t *testing.T) {
		ts.DB.Truncate(t)
		testutil.NewChampionBuilder("Gragas").WithRoles(domain.RoleJgl).Build(t, ts.DB.DB)

		resp := testutil.PutJSON(t, ts.APIURL("/champions/Gragas/roles"), map[string]interface{}{
			"roles": []string{"TOP", "MID"},
		})

		var champion domain.Champion
		testutil.AssertJSONResponse(t, resp, http.StatusOK, &champion)
		assert.Equal(t, []domain.Role{domain.RoleTop, domain.RoleMid}, []domain.Role(champion.Roles))
	})

	t.Run("clears roles with an empty array", func(t *testing.T) {
		ts.DB.Truncate(t)
		testutil.NewChampionBuilder("Gragas").WithRoles(domain.RoleJgl).Build(t, ts.DB.DB)

		resp := testutil.PutJSON(t, ts.APIURL("/champions/Gragas/roles"), map[string]interface{}{
			"roles": []string{},
		})

		var champion domain.Champion
		testutil.AssertJSONResponse(t, resp, http.StatusOK, &champion)
		assert.Empty(t, champion.Roles)
	})

	t.Run("rejects unknown role tokens and writes nothing", func(t *testing.T) {
		ts.DB.Truncate(t)
		testutil.NewChampionBuilder("Gragas").WithRoles(domain.RoleJgl).Build(t, ts.DB.DB)

		resp := testutil.PutJSON(t, ts.APIURL("/champions/Gragas/roles"), map[string]interface{}{
			"roles": []string{"TOP", "BOT"},
		})

		payload := testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "invalid roles")
		assert.Equal(t, []string{"BOT"}, payload.Fields)

		var stored domain.Champion
		require.NoError(t, ts.DB.DB.First(&stored, "id = ?", "Gragas").Error)
		assert.Equal(t, []domain.Role{domain.RoleJgl}, []domain.Role(stored.Roles))
	})

	t.Run("missing roles field is a 400", func(t *testing.T) {
		ts.DB.Truncate(t)
		testutil.NewChampionBuilder("Gragas").Build(t, ts.DB.DB)

		resp := testutil.PutJSON(t, ts.APIURL("/champions/Gragas/roles"), map[string]interface{}{})
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "roles must be an array")
	})

	t.Run("unknown champion is a 404", func(t *testing.T) {
		ts.DB.Truncate(t)

		resp := testutil.PutJSON(t, ts.APIURL("/champions/Nobody/roles"), map[string]interface{}{
			"roles": []string{"TOP"},
		})
		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "")
	})
}

func TestEvaluateChampion(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("first evaluation defaults omitted fields to zero", func(t *testing.T) {
		ts.DB.Truncate(t)
		testutil.NewChampionBuilder("Malphite").Build(t, ts.DB.DB)

		resp := testutil.PostJSON(t, ts.APIURL("/champions/evaluate"), map[string]interface{}{
			"championId": "Malphite",
			"engage":     2,
		})

		var eval domain.ChampionEvaluation
		testutil.AssertJSONResponse(t, resp, http.StatusOK, &eval)
		assert.Equal(t, "Malphite", eval.ChampionID)
		assert.Equal(t, 2, eval.Engage)
		assert.Equal(t, 0, eval.Split)
		assert.Equal(t, 0, eval.PrioLane)
	})

	t.Run("later evaluations merge instead of replacing", func(t *testing.T) {
		ts.DB.Truncate(t)
		testutil.NewChampionBuilder("Malphite").Build(t, ts.DB.DB)

		resp := testutil.PostJSON(t, ts.APIURL("/champions/evaluate"), map[string]interface{}{
			"championId": "Malphite",
			"engage":     2,
		})
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = testutil.PostJSON(t, ts.APIURL("/champions/evaluate"), map[string]interface{}{
			"championId": "Malphite",
			"split":      3,
		})

		var eval domain.ChampionEvaluation
		testutil.AssertJSONResponse(t, resp, http.StatusOK, &eval)
		assert.Equal(t, 2, eval.Engage)
		assert.Equal(t, 3, eval.Split)

		// Still a single row for the champion.
		var count int64
		require.NoError(t, ts.DB.DB.Model(&domain.ChampionEvaluation{}).
			Where("champion_id = ?", "Malphite").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("rejects out-of-range ratings", func(t *testing.T) {
		ts.DB.Truncate(t)
		testutil.NewChampionBuilder("Malphite").Build(t, ts.DB.DB)

		resp := testutil.PostJSON(t, ts.APIURL("/champions/evaluate"), map[string]interface{}{
			"championId": "Malphite",
			"engage":     4,
			"peeling":    -1,
		})

		payload := testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "ratings must be between 0 and 3")
		assert.ElementsMatch(t, []string{"engage", "peeling"}, payload.Fields)

		var count int64
		require.NoError(t, ts.DB.DB.Model(&domain.ChampionEvaluation{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})

	t.Run("missing championId is a 400", func(t *testing.T) {
		ts.DB.Truncate(t)

		resp := testutil.PostJSON(t, ts.APIURL("/champions/evaluate"), map[string]interface{}{
			"engage": 2,
		})
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "championId is required")
	})
}
