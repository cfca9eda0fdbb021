package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"court-proforma/internal/api/models"
)

func computeRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewComputeHandler()
	r.POST("/api/v1/compute", h.Run)
	r.POST("/api/v1/scenarios/compare", h.Compare)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestComputeEndpoint(t *testing.T) {
	r := computeRouter()

	w := postJSON(t, r, "/api/v1/compute", `{}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ComputeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
	assert.False(t, resp.Cached)
	require.NotNil(t, resp.Result)
	assert.InDelta(t, 148.0, resp.Result.PrimeCHWeek, 1e-6)
	assert.Equal(t, 14, resp.Result.Weekly.LeagueBlocks)

	// Debug sections are omitted unless requested.
	assert.Zero(t, resp.Result.CourtDebug.UtilPrimeCH)
}

func TestComputeEndpointCachesByConfig(t *testing.T) {
	r := computeRouter()

	first := postJSON(t, r, "/api/v1/compute", `{"config":{"facility":{"courts":6}}}`)
	require.Equal(t, http.StatusOK, first.Code)
	second := postJSON(t, r, "/api/v1/compute", `{"config":{"facility":{"courts":6}}}`)
	require.Equal(t, http.StatusOK, second.Code)

	var a, b models.ComputeResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))
	assert.False(t, a.Cached)
	assert.True(t, b.Cached)
	assert.Equal(t, a.Result.Annual, b.Result.Annual)
}

func TestComputeEndpointRejectsInvalidConfig(t *testing.T) {
	r := computeRouter()

	w := postJSON(t, r, "/api/v1/compute", `{"config":{"facility":{"courts":-1}}}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_CONFIG", resp.Error.Code)
}

func TestCompareEndpoint(t *testing.T) {
	r := computeRouter()

	body := `{
		"variations": [
			{"name": "baseline", "config": {}},
			{"name": "six courts", "config": {"facility":{"courts":6}}},
			{"name": "broken", "config": {"facility":{"courts":-1}}}
		]
	}`
	w := postJSON(t, r, "/api/v1/scenarios/compare", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CompareResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// The invalid variation is skipped, not fatal.
	require.Len(t, resp.Comparison, 2)
	assert.Equal(t, "baseline", resp.Comparison[0].Name)
	assert.Greater(t, resp.Comparison[1].AvailableCHYear, resp.Comparison[0].AvailableCHYear)

	require.Len(t, resp.Ranking, 2)
	assert.GreaterOrEqual(t, resp.Ranking[0].RevPACH, resp.Ranking[1].RevPACH)
}

func TestConfigKeyIsStable(t *testing.T) {
	cfg, _, err := buildConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, configKey(cfg), configKey(cfg))

	other, _, err := buildConfig(json.RawMessage(`{"facility":{"courts":6}}`))
	require.NoError(t, err)
	assert.NotEqual(t, configKey(cfg), configKey(other))
}
