package common_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/theater-billing/internal/common"
)

func TestJSONData(t *testing.T) {
	rec := httptest.NewRecorder()
	common.JSONData(rec, http.StatusOK, map[string]string{"hello": "world"})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var body struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "world", body.Data["hello"])
}

func TestJSONError(t *testing.T) {
	rec := httptest.NewRecorder()
	common.JSONError(rec, http.StatusUnprocessableEntity, "UNKNOWN_PLAY", "unknown play id: macbeth", map[string]string{"playID": "macbeth"})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Error common.ErrorBody `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "UNKNOWN_PLAY", body.Error.Code)
	require.Equal(t, "unknown play id: macbeth", body.Error.Message)
}

func TestText(t *testing.T) {
	rec := httptest.NewRecorder()
	common.Text(rec, http.StatusOK, "Statement for BigCo\n")

	require.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	require.Equal(t, "Statement for BigCo\n", rec.Body.String())
}
