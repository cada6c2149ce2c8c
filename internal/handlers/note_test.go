package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dittner/DerTutor/internal/models"
	"github.com/Dittner/DerTutor/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newNoteRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()

	handler := NewNoteHandler(services.NewNoteService(db, t.TempDir()))
	router := gin.New()
	router.GET("/api/notes", handler.GetNote)
	router.GET("/api/notes/search", handler.SearchNotes)
	return router
}

func seedNotes(t *testing.T, db *gorm.DB, count int) *models.Lang {
	t.Helper()

	lang := &models.Lang{Code: "en", Name: "English"}
	require.NoError(t, db.Create(lang).Error)
	voc := &models.Voc{LangID: lang.ID, Name: "Lexicon", SortNotes: "id:desc"}
	require.NoError(t, db.Create(voc).Error)

	for i := 0; i < count; i++ {
		note := &models.Note{LangID: lang.ID, VocID: voc.ID, Name: fmt.Sprintf("note %03d", i)}
		require.NoError(t, db.Create(note).Error)
	}
	return lang
}

func TestNoteHandler_SearchDefaults(t *testing.T) {
	db := openTestDB(t)
	lang := seedNotes(t, db, 60)
	router := newNoteRouter(t, db)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/notes/search?lang_id=%d", lang.ID), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var page models.Page[models.Note]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 50, page.Size)
	assert.Equal(t, 60, page.Total)
	assert.Equal(t, 2, page.Pages)
	assert.Len(t, page.Items, 50)
}

func TestNoteHandler_SearchValidation(t *testing.T) {
	db := openTestDB(t)
	lang := seedNotes(t, db, 1)
	router := newNoteRouter(t, db)

	tests := []struct {
		name     string
		query    string
		wantCode int
	}{
		{name: "missing lang_id", query: "", wantCode: http.StatusUnprocessableEntity},
		{name: "key too short", query: fmt.Sprintf("lang_id=%d&key=a", lang.ID), wantCode: http.StatusUnprocessableEntity},
		{name: "size too large", query: fmt.Sprintf("lang_id=%d&size=500", lang.ID), wantCode: http.StatusUnprocessableEntity},
		{name: "lang_id not a number", query: "lang_id=en", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/notes/search?"+tt.query, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestNoteHandler_GetNote(t *testing.T) {
	db := openTestDB(t)
	seedNotes(t, db, 1)
	router := newNoteRouter(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/notes?note_id=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "note 000")

	req = httptest.NewRequest(http.MethodGet, "/api/notes?note_id=999", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/api/notes?note_id=abc", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
