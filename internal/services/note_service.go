package services

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Dittner/DerTutor/internal/apperr"
	"github.com/Dittner/DerTutor/internal/models"
	"github.com/Dittner/DerTutor/internal/store"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NoteService struct {
	db        *gorm.DB
	notes     *store.Store[models.Note]
	storePath string
}

func NewNoteService(db *gorm.DB, storePath string) *NoteService {
	return &NoteService{
		db:        db,
		notes:     store.New[models.Note](db),
		storePath: storePath,
	}
}

func (s *NoteService) Create(req *models.NoteCreateRequest) (*models.Note, error) {
	return s.notes.Create(&models.Note{
		LangID:   req.LangID,
		VocID:    req.VocID,
		Name:     req.Name,
		Text:     req.Text,
		AudioURL: req.AudioURL,
		Level:    req.Level,
		TagID:    req.TagID,
	})
}

func (s *NoteService) Update(req *models.NoteUpdateRequest) (*models.Note, error) {
	return s.notes.UpdateOne(req.ID, store.Fields{
		"voc_id":    req.VocID,
		"name":      req.Name,
		"text":      req.Text,
		"audio_url": req.AudioURL,
		"level":     req.Level,
		"tag_id":    req.TagID,
	})
}

func (s *NoteService) Rename(id uint, name string) (*models.Note, error) {
	return s.notes.UpdateOne(id, store.Fields{"name": name})
}

// FindWithMedia returns the note with its media preloaded, or nil when
// no such note exists.
func (s *NoteService) FindWithMedia(noteID uint) (*models.Note, error) {
	var note models.Note
	err := s.db.Preload("Media").Where("id = ?", noteID).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &note, nil
}

// Search builds one filtered, ranked, paginated query over the notes
// collection. When a key is present, exact-prefix matches on the name
// rank before other name matches, which rank before text-only matches;
// id DESC is the stable tiebreak and the sole order without a key.
func (s *NoteService) Search(req *models.NoteSearchRequest) (*models.Page[models.Note], error) {
	query := s.db.Model(&models.Note{}).Where("lang_id = ?", req.LangID)

	if req.Key != "" {
		pattern := "%" + strings.ToLower(req.Key) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(text) LIKE ?", pattern, pattern)
	}
	if req.VocID != nil {
		query = query.Where("voc_id = ?", *req.VocID)
	}
	if req.Level != nil {
		query = query.Where("level = ?", *req.Level)
	}
	if req.TagID != nil {
		query = query.Where("tag_id = ?", *req.TagID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	if req.Key != "" {
		key := strings.ToLower(req.Key)
		query = query.Clauses(clause.OrderBy{
			Expression: clause.Expr{
				SQL:                "CASE WHEN LOWER(name) LIKE ? THEN 0 WHEN LOWER(name) LIKE ? THEN 1 ELSE 2 END, id DESC",
				Vars:               []interface{}{key + "%", "%" + key + "%"},
				WithoutParentheses: true,
			},
		})
	} else {
		query = query.Order("id DESC")
	}

	var items []models.Note
	offset := req.Size * (req.Page - 1)
	if err := query.Limit(req.Size).Offset(offset).Find(&items).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	if items == nil {
		items = []models.Note{}
	}

	return &models.Page[models.Note]{
		Items: items,
		Total: int(total),
		Page:  req.Page,
		Pages: int(math.Ceil(float64(total) / float64(req.Size))),
		Size:  req.Size,
	}, nil
}

// Delete removes the note, its media rows and its entire on-disk media
// directory as one logical operation. A filesystem failure rolls the
// row deletions back.
func (s *NoteService) Delete(noteID uint) (*models.Note, error) {
	var note models.Note
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", noteID).First(&note).Error; err != nil {
			return err
		}
		if err := tx.Where("note_id = ?", noteID).Delete(&models.Media{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&note).Error; err != nil {
			return err
		}

		mediaDir := s.mediaDir(noteID)
		if _, err := os.Stat(mediaDir); err == nil {
			if err := os.RemoveAll(mediaDir); err != nil {
				return fmt.Errorf("failed to remove media dir %s: %w", mediaDir, err)
			}
			logrus.WithField("dir", mediaDir).Info("all media files of the deleted note are removed")
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Note")
		}
		return nil, apperr.Internal(err)
	}
	return &note, nil
}

func (s *NoteService) mediaDir(noteID uint) string {
	return filepath.Join(s.storePath, "media", strconv.FormatUint(uint64(noteID), 10))
}
