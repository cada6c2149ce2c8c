package models

// Voc is a vocabulary group of notes within one language. SortNotes is a
// client-facing sort specification for the notes of the group, e.g.
// "id:desc" or "name:asc".
type Voc struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	LangID      uint   `json:"lang_id" gorm:"not null;index"`
	Name        string `json:"name" gorm:"size:256;not null"`
	Order       int    `json:"order" gorm:"column:order;not null;default:0"`
	Description string `json:"description" gorm:"size:10000;default:''"`
	SortNotes   string `json:"sort_notes" gorm:"size:255;not null;default:'id:desc'"`

	Lang *Lang `json:"-" gorm:"foreignKey:LangID"`
}

type VocCreateRequest struct {
	LangID uint   `json:"lang_id" validate:"required"`
	Name   string `json:"name" validate:"required,max=256"`
}

type VocUpdateRequest struct {
	ID          uint   `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required,max=256"`
	Description string `json:"description" validate:"max=10000"`
	SortNotes   string `json:"sort_notes" validate:"required,max=255"`
}

type VocRenameRequest struct {
	ID   uint   `json:"id" validate:"required"`
	Name string `json:"name" validate:"required,max=256"`
}

type VocReorderRequest struct {
	ID    uint `json:"id" validate:"required"`
	Order int  `json:"order" validate:"min=0"`
}

type VocDeleteRequest struct {
	ID uint `json:"id" validate:"required"`
}
