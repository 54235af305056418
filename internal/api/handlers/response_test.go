package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec, "пространство не найдено")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Code: 404, Message: "пространство не найдено"}, body)
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Salle Eiffel"}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, "Salle Eiffel", v.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x","unknown":1}`))
	assert.Error(t, DecodeJSON(req, &v))
}

func TestPathInt64(t *testing.T) {
	router := mux.NewRouter()
	var got int64
	var gotErr error
	router.HandleFunc("/items/{itemId}", func(w http.ResponseWriter, r *http.Request) {
		got, gotErr = PathInt64(r, "itemId")
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/42", nil))
	require.NoError(t, gotErr)
	assert.Equal(t, int64(42), got)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/0", nil))
	assert.Error(t, gotErr)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/abc", nil))
	assert.Error(t, gotErr)
}

func TestQueryDate(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/?from=2026-10-19&bad=19/10/2026", nil)

	date, err := QueryDate(req, "from", paris)
	require.NoError(t, err)
	assert.True(t, date.Equal(time.Date(2026, 10, 19, 0, 0, 0, 0, paris)))

	date, err = QueryDate(req, "to", paris)
	require.NoError(t, err)
	assert.Nil(t, date)

	_, err = QueryDate(req, "bad", paris)
	assert.Error(t, err)
}
