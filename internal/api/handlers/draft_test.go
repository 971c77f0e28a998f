package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/dom/league-team-hub/internal/domain"
	"github.com/dom/league-team-hub/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDraft(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("creates with slots and bans", func(t *testing.T) {
		ts.DB.Truncate(t)

		resp := testutil.PostJSON(t, ts.APIURL("/drafts"), map[string]interface{}{
			"name":               "Blue side priority",
			"teamTopChampionId":  "Gnar",
			"enemyMidChampionId": "Ahri",
			"teamBans":           []string{"Kalista", "Nocturne"},
		})

		var draft domain.Draft
		testutil.AssertJSONResponse(t, resp, http.StatusOK, &draft)
		assert.Equal(t, "Blue side priority", draft.Name)
		require.NotNil(t, draft.TeamTopChampionID)
		assert.Equal(t, "Gnar", *draft.TeamTopChampionID)
		assert.Nil(t, draft.TeamJglChampionID)
		assert.Equal(t, []string{"Kalista", "Nocturne"}, []string(draft.TeamBans))
		assert.Equal(t, []string{}, []string(draft.EnemyBans))
	})

	t.Run("name is required", func(t *testing.T) {
		ts.DB.Truncate(t)

		resp := testutil.PostJSON(t, ts.APIURL("/drafts"), map[string]interface{}{
			"name": "   ",
		})
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "draft name is required")
	})
}

func TestListDrafts(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("resolves slots and skips stale references", func(t *testing.T) {
		ts.DB.Truncate(t)

		testutil.NewChampionBuilder("Gnar").Build(t, ts.DB.DB)
		testutil.NewDraftBuilder().
			WithName("Scaling comp").
			WithTeamChampions("Gnar", "", "", "", "").
			WithEnemyChampions("DeletedChamp", "", "", "", "").
			Build(t, ts.DB.DB)

		resp, err := http.Get(ts.APIURL("/drafts"))
		require.NoError(t, err)

		var drafts []domain.DraftWithDetails
		testutil.AssertJSONResponse(t, resp, http.StatusOK, &drafts)
		require.Len(t, drafts, 1)

		require.NotNil(t, drafts[0].TeamTopChampion)
		assert.Equal(t, "Gnar", drafts[0].TeamTopChampion.ID)

		// The reference survives but resolves to nothing.
		require.NotNil(t, drafts[0].EnemyTopChampionID)
		assert.Equal(t, "DeletedChamp", *drafts[0].EnemyTopChampionID)
		assert.Nil(t, drafts[0].EnemyTopChampion)
	})

	t.Run("attaches variants to their draft", func(t *testing.T) {
		ts.DB.Truncate(t)

		draft := testutil.NewDraftBuilder().WithName("With variants").Build(t, ts.DB.DB)

		resp := testutil.PostJSON(t, ts.APIURL(fmt.Sprintf("/drafts/%s/variants", draft.ID)), map[string]interface{}{
			"name":          "Tank flex",
			"topChampionId": "Ornn",
		})
		var variant domain.DraftVariant
		testutil.AssertJSONResponse(t, resp, http.StatusOK, &variant)
		assert.Equal(t, draft.ID, variant.DraftID)

		resp, err := http.Get(ts.APIURL("/drafts"))
		require.NoError(t, err)

		var drafts []domain.DraftWithDetails
		testutil.AssertJSONResponse(t, resp, http.StatusOK, &drafts)
		require.Len(t, drafts, 1)
		require.Len(t, drafts[0].Variants, 1)
		assert.Equal(t, "Tank flex", drafts[0].Variants[0].Name)
	})
}

func TestUpdateDraft(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("replaces mutable fields", func(t *testing.T) {
		ts.DB.Truncate(t)

		draft := testutil.NewDraftBuilder().
			WithName("Before").
			WithTeamChampions("Gnar", "LeeSin", "", "", "").
			Build(t, ts.DB.DB)

		resp := testutil.PutJSON(t, ts.APIURL("/drafts/"+draft.ID.String()), map[string]interface{}{
			"name":              "After",
			"teamMidChampionId": "Ahri",
		})

		var updated domain.Draft
		testutil.AssertJSONResponse(t, resp, http.StatusOK, &updated)
		assert.Equal(t, "After", updated.Name)
		require.NotNil(t, updated.TeamMidChampionID)
		assert.Equal(t, "Ahri", *updated.TeamMidChampionID)

		// Omitted slots are cleared, not kept.
		assert.Nil(t, updated.TeamTopChampionID)
		assert.Nil(t, updated.TeamJglChampionID)
	})

	t.Run("unknown draft is a 404", func(t *testing.T) {
		ts.DB.Truncate(t)

		resp := testutil.PutJSON(t, ts.APIURL("/drafts/"+uuid.New().String()), map[string]interface{}{
			"name": "Whatever",
		})
		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "")
	})

	t.Run("malformed id is a 400", func(t *testing.T) {
		resp := testutil.PutJSON(t, ts.APIURL("/drafts/not-a-uuid"), map[string]interface{}{
			"name": "Whatever",
		})
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "invalid draft id")
	})
}

func TestDeleteDraft(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("removes the draft and its variants", func(t *testing.T) {
		ts.DB.Truncate(t)

		draft := testutil.NewDraftBuilder().WithName("Doomed").Build(t, ts.DB.DB)

		resp := testutil.PostJSON(t, ts.APIURL(fmt.Sprintf("/drafts/%s/variants", draft.ID)), map[string]interface{}{
			"name": "Doomed variant",
		})
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = testutil.Delete(t, ts.APIURL("/drafts/"+draft.ID.String()))
		var result map[string]bool
		testutil.AssertJSONResponse(t, resp, http.StatusOK, &result)
		assert.True(t, result["success"])

		var draftCount, variantCount int64
		require.NoError(t, ts.DB.DB.Model(&domain.Draft{}).Count(&draftCount).Error)
		require.NoError(t, ts.DB.DB.Model(&domain.DraftVariant{}).Count(&variantCount).Error)
		assert.Equal(t, int64(0), draftCount)
		assert.Equal(t, int64(0), variantCount)
	})

	t.Run("deleting an unknown draft still succeeds", func(t *testing.T) {
		ts.DB.Truncate(t)

		resp := testutil.Delete(t, ts.APIURL("/drafts/"+uuid.New().String()))
		var result map[string]bool
		testutil.AssertJSONResponse(t, resp, http.StatusOK, &result)
		assert.True(t, result["success"])
	})
}

func TestDraftVariants(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("variant requires an existing draft", func(t *testing.T) {
		ts.DB.Truncate(t)

		resp := testutil.PostJSON(t, ts.APIURL(fmt.Sprintf("/drafts/%s/variants", uuid.New())), map[string]interface{}{
			"name": "Orphan",
		})
		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "")
	})

	t.Run("variant name is required", func(t *testing.T) {
		ts.DB.Truncate(t)
		draft := testutil.NewDraftBuilder().Build(t, ts.DB.DB)

		resp := testutil.PostJSON(t, ts.APIURL(fmt.Sprintf("/drafts/%s/variants", draft.ID)), map[string]interface{}{
			"name": "",
		})
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "variant name is required")
	})

	t.Run("deletes a single variant", func(t *testing.T) {
		ts.DB.Truncate(t)
		draft := testutil.NewDraftBuilder().Build(t, ts.DB.DB)

		resp := testutil.PostJSON(t, ts.APIURL(fmt.Sprintf("/drafts/%s/variants", draft.ID)), map[string]interface{}{
			"name": "Keep the draft",
		})
		var variant domain.DraftVariant
		testutil.AssertJSONResponse(t, resp, http.StatusOK, &variant)

		resp = testutil.Delete(t, ts.APIURL("/drafts/variants/"+variant.ID.String()))
		var result map[string]bool
		testutil.AssertJSONResponse(t, resp, http.StatusOK, &result)
		assert.True(t, result["success"])

		var draftCount, variantCount int64
		require.NoError(t, ts.DB.DB.Model(&domain.Draft{}).Count(&draftCount).Error)
		require.NoError(t, ts.DB.DB.Model(&domain.DraftVariant{}).Count(&variantCount).Error)
		assert.Equal(t, int64(1), draftCount)
		assert.Equal(t, int64(0), variantCount)
	})
}
