package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dittner/DerTutor/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newVocRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()

	handler := NewVocHandler(db)
	router := gin.New()
	router.GET("/api/vocs", handler.GetVocs)
	router.POST("/api/vocs", handler.CreateVoc)
	router.PATCH("/api/vocs/reorder", handler.ReorderVoc)
	return router
}

func TestVocHandler_CreateAndListInManualOrder(t *testing.T) {
	db := openTestDB(t)
	lang := &models.Lang{Code: "de", Name: "Deutsch"}
	require.NoError(t, db.Create(lang).Error)
	router := newVocRouter(t, db)

	for _, name := range []string{"Lexikon", "Verben", "Phrasen"} {
		body := fmt.Sprintf(`{"lang_id": %d, "name": "%s"}`, lang.ID, name)
		req := httptest.NewRequest(http.MethodPost, "/api/vocs", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"sort_notes":"id:desc"`)
	}

	// Move Phrasen to the front.
	var phrasen models.Voc
	require.NoError(t, db.Where("name = ?", "Phrasen").First(&phrasen).Error)
	for _, voc := range []struct {
		id    uint
		order int
	}{{phrasen.ID, 0}, {phrasen.ID - 1, 1}, {phrasen.ID - 2, 2}} {
		body := fmt.Sprintf(`{"id": %d, "order": %d}`, voc.id, voc.order)
		req := httptest.NewRequest(http.MethodPatch, "/api/vocs/reorder", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/vocs?lang_id=%d", lang.ID), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var vocs []models.Voc
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vocs))
	require.Len(t, vocs, 3)
	assert.Equal(t, "Phrasen", vocs[0].Name)
	assert.Equal(t, "Verben", vocs[1].Name)
	assert.Equal(t, "Lexikon", vocs[2].Name)
}

func TestVocHandler_ReorderMissingVoc(t *testing.T) {
	db := openTestDB(t)
	router := newVocRouter(t, db)

	req := httptest.NewRequest(http.MethodPatch, "/api/vocs/reorder", strings.NewReader(`{"id": 999, "order": 1}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
