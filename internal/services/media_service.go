package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Dittner/DerTutor/internal/apperr"
	"github.com/Dittner/DerTutor/internal/models"
	"github.com/Dittner/DerTutor/internal/store"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MediaService keeps the Media invariant: a row exists if and only if
// its blob exists under the local store. Attach writes the blob before
// the short row-insert transaction; Detach deletes the row first, the
// blob second.
type MediaService struct {
	media     *store.Store[models.Media]
	notes     *store.Store[models.Note]
	storePath string
}

func NewMediaService(db *gorm.DB, storePath string) *MediaService {
	return &MediaService{
		media:     store.New[models.Media](db),
		notes:     store.New[models.Note](db),
		storePath: storePath,
	}
}

func (s *MediaService) FindAllByNote(noteID uint) ([]models.Media, error) {
	return s.media.FindAll(store.Filter{"note_id": noteID})
}

// Attach binds an uploaded blob to a note. The storage path is derived
// from the note id and a fresh uid, preserving the file suffix:
// <store>/media/<note_id>/<uid><suffix>. If the row insert fails after
// the blob is written, the blob is left as a logged orphan; it is not
// removed and the write is not retried.
func (s *MediaService) Attach(noteID uint, blob io.Reader, filename, mediaType string) (*models.Media, error) {
	if _, err := s.notes.FindOne(store.Filter{"id": noteID}); err != nil {
		return nil, err
	}

	uid := uuid.New().String()
	suffix := filepath.Ext(filename)
	url := fmt.Sprintf("/media/%d/%s%s", noteID, uid, suffix)

	dir := filepath.Join(s.storePath, "media", strconv.FormatUint(uint64(noteID), 10))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, apperr.Internal(err)
	}

	path := filepath.Join(dir, uid+suffix)
	dst, err := os.Create(path)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if _, err := io.Copy(dst, blob); err != nil {
		dst.Close()
		return nil, apperr.Internal(err)
	}
	if err := dst.Close(); err != nil {
		return nil, apperr.Internal(err)
	}

	record, err := s.media.Create(&models.Media{
		UID:       uid,
		NoteID:    noteID,
		Name:      filename,
		MediaType: mediaType,
		URL:       url,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"path": path,
			"uid":  uid,
		}).Warn("media row insert failed, blob left orphaned")
		return nil, err
	}

	logrus.WithField("url", url).Info("media file stored")
	return record, nil
}

// Detach deletes the media row, then its blob. A missing blob is not an
// error; the returned flag tells the caller whether cleanup found one.
func (s *MediaService) Detach(uid string) (removed bool, err error) {
	record, err := s.media.DeleteOne(store.Filter{"uid": uid})
	if err != nil {
		return false, err
	}

	path := filepath.Join(s.storePath, filepath.FromSlash(record.URL))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logrus.WithField("url", record.URL).Warn("deleting media file not found")
		return false, nil
	}
	if err := os.Remove(path); err != nil {
		return false, apperr.Internal(err)
	}

	logrus.WithField("path", path).Info("media file deleted")
	return true, nil
}

// BlobPath resolves the on-disk location of a stored blob. The file
// segment is a uid plus suffix generated by Attach; path separators are
// rejected so a crafted name cannot escape the media directory.
func (s *MediaService) BlobPath(noteID uint, file string) (string, error) {
	if file != filepath.Base(file) {
		return "", apperr.NotFound("Media file")
	}
	path := filepath.Join(s.storePath, "media", strconv.FormatUint(uint64(noteID), 10), file)
	if _, err := os.Stat(path); err != nil {
		return "", apperr.NotFound("Media file")
	}
	return path, nil
}
