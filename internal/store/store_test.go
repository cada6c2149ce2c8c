package store

import (
	"path/filepath"
	"testing"

	"github.com/Dittner/DerTutor/internal/apperr"
	"github.com/Dittner/DerTutor/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Lang{}))
	return db
}

func TestStore_CreateAssignsID(t *testing.T) {
	users := New[models.User](openTestDB(t))

	created, err := users.Create(&models.User{Username: "admin", HashedPassword: "x"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestStore_CreateDuplicateIsConflict(t *testing.T) {
	users := New[models.User](openTestDB(t))

	_, err := users.Create(&models.User{Username: "admin", HashedPassword: "x"})
	require.NoError(t, err)

	_, err = users.Create(&models.User{Username: "admin", HashedPassword: "y"})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestStore_FindOne(t *testing.T) {
	users := New[models.User](openTestDB(t))

	_, err := users.Create(&models.User{Username: "admin", HashedPassword: "x", IsActive: true})
	require.NoError(t, err)

	found, err := users.FindOne(Filter{"username": "admin"})
	require.NoError(t, err)
	assert.True(t, found.IsActive)

	_, err = users.FindOne(Filter{"username": "ghost"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestStore_FindOneOrNone(t *testing.T) {
	users := New[models.User](openTestDB(t))

	found, err := users.FindOneOrNone(Filter{"username": "ghost"})
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestStore_UpdateOnePartial(t *testing.T) {
	langs := New[models.Lang](openTestDB(t))

	created, err := langs.Create(&models.Lang{Code: "de", Name: "Deutsch"})
	require.NoError(t, err)

	updated, err := langs.UpdateOne(created.ID, Fields{"name": "German"})
	require.NoError(t, err)
	assert.Equal(t, "German", updated.Name)
	assert.Equal(t, "de", updated.Code, "untouched fields keep their values")
}

func TestStore_UpdateOneMissingLeavesStoreUnchanged(t *testing.T) {
	db := openTestDB(t)
	langs := New[models.Lang](db)

	created, err := langs.Create(&models.Lang{Code: "de", Name: "Deutsch"})
	require.NoError(t, err)

	_, err = langs.UpdateOne(created.ID+100, Fields{"name": "German"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	after, err := langs.FindOne(Filter{"id": created.ID})
	require.NoError(t, err)
	assert.Equal(t, "Deutsch", after.Name)

	var count int64
	require.NoError(t, db.Model(&models.Lang{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestStore_DeleteOneReturnsPriorState(t *testing.T) {
	langs := New[models.Lang](openTestDB(t))

	created, err := langs.Create(&models.Lang{Code: "de", Name: "Deutsch"})
	require.NoError(t, err)

	deleted, err := langs.DeleteOne(Filter{"id": created.ID})
	require.NoError(t, err)
	assert.Equal(t, "Deutsch", deleted.Name)

	_, err = langs.FindOne(Filter{"id": created.ID})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = langs.DeleteOne(Filter{"id": created.ID})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
