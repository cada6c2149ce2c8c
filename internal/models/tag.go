package models

type Tag struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	LangID uint   `json:"lang_id" gorm:"not null;index"`
	Name   string `json:"name" gorm:"size:256;not null"`

	Lang *Lang `json:"-" gorm:"foreignKey:LangID"`
}

type TagCreateRequest struct {
	LangID uint   `json:"lang_id" validate:"required"`
	Name   string `json:"name" validate:"required,max=256"`
}

type TagRenameRequest struct {
	ID   uint   `json:"id" validate:"required"`
	Name string `json:"name" validate:"required,max=256"`
}

type TagDeleteRequest struct {
	ID uint `json:"id" validate:"required"`
}
