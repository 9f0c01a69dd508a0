package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListStates(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/states", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	states, ok := body["states"].([]any)
	require.True(t, ok)
	require.Len(t, states, 2)

	first, ok := states[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "california", first["slug"])
}

func TestGetStateBySlug(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/states/texas", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Texas", body["name"])
	assert.Equal(t, float64(0), body["cardFee"])
}

func TestGetStateUnknownSlug(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/states/atlantis", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
