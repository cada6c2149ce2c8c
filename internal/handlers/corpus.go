package handlers

import (
	"fmt"
	"net/http"

	"github.com/Dittner/DerTutor/internal/corpus"
	"github.com/Dittner/DerTutor/internal/utils"

	"github.com/gin-gonic/gin"
)

// CorpusHandler serves read-only lookups over the pre-built corpora.
// A store left unconnected by config answers 503 on its routes.
type CorpusHandler struct {
	corpora *corpus.Corpora
}

func NewCorpusHandler(corpora *corpus.Corpora) *CorpusHandler {
	return &CorpusHandler{corpora: corpora}
}

func (h *CorpusHandler) CheckDeAudio(c *gin.Context) {
	h.checkAudio(c, h.corpora.DePron)
}

func (h *CorpusHandler) GetDeAudio(c *gin.Context) {
	h.getAudio(c, h.corpora.DePron)
}

func (h *CorpusHandler) CheckEnAudio(c *gin.Context) {
	h.checkAudio(c, h.corpora.EnPron)
}

func (h *CorpusHandler) GetEnAudio(c *gin.Context) {
	h.getAudio(c, h.corpora.EnPron)
}

func (h *CorpusHandler) checkAudio(c *gin.Context, db *corpus.KeyValueDB) {
	if db == nil {
		utils.Error(c, http.StatusServiceUnavailable, "Corpus is not connected")
		return
	}
	key := c.Query("key")
	if !db.Has(key) {
		utils.NotFound(c, fmt.Sprintf("Audio <%s> not found", key))
		return
	}
	c.Status(http.StatusOK)
}

func (h *CorpusHandler) getAudio(c *gin.Context, db *corpus.KeyValueDB) {
	if db == nil {
		utils.Error(c, http.StatusServiceUnavailable, "Corpus is not connected")
		return
	}
	key := c.Query("key")
	bb, err := db.Read(key)
	if err != nil {
		utils.NotFound(c, fmt.Sprintf("Audio <%s> not found", key))
		return
	}
	c.Data(http.StatusOK, "audio/mpeg", bb)
}

func (h *CorpusHandler) CheckTranslation(c *gin.Context) {
	if h.corpora.EnRu == nil {
		utils.Error(c, http.StatusServiceUnavailable, "Corpus is not connected")
		return
	}
	key := c.Query("key")
	if !h.corpora.EnRu.Has(key) {
		utils.NotFound(c, fmt.Sprintf("Translation of <%s> not found", key))
		return
	}
	c.Status(http.StatusOK)
}

func (h *CorpusHandler) GetTranslation(c *gin.Context) {
	if h.corpora.EnRu == nil {
		utils.Error(c, http.StatusServiceUnavailable, "Corpus is not connected")
		return
	}
	key := c.Query("key")
	item, err := h.corpora.EnRu.Read(key)
	if err != nil {
		utils.NotFound(c, fmt.Sprintf("Translation of <%s> not found", key))
		return
	}
	utils.Success(c, item)
}
