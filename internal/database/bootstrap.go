package database

import (
	"github.com/Dittner/DerTutor/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// InsertDefaultRows seeds an empty database: one bootstrap superuser,
// the de/en languages and their default vocabulary and tag. An empty
// langs table is the proxy for "database is empty"; a populated one
// makes this a no-op.
func InsertDefaultRows(db *gorm.DB, adminName, adminHashedPwd string) error {
	var count int64
	if err := db.Model(&models.Lang{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logrus.Info("empty database, inserting default rows")

	return db.Transaction(func(tx *gorm.DB) error {
		admin := models.User{
			Username:       adminName,
			HashedPassword: adminHashedPwd,
			IsActive:       true,
			IsSuperuser:    true,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		de := models.Lang{Code: "de", Name: "Deutsch"}
		en := models.Lang{Code: "en", Name: "English"}
		if err := tx.Create(&de).Error; err != nil {
			return err
		}
		if err := tx.Create(&en).Error; err != nil {
			return err
		}

		vocs := []models.Voc{
			{LangID: de.ID, Name: "Lexikon", SortNotes: "id:desc"},
			{LangID: en.ID, Name: "Lexicon", SortNotes: "id:desc"},
		}
		if err := tx.Create(&vocs).Error; err != nil {
			return err
		}

		tags := []models.Tag{
			{LangID: de.ID, Name: "Unregelmäßige Verben"},
			{LangID: en.ID, Name: "Irregular verbs"},
		}
		return tx.Create(&tags).Error
	})
}
