package models

type Note struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	LangID   uint   `json:"lang_id" gorm:"not null;index"`
	VocID    uint   `json:"voc_id" gorm:"not null;index"`
	Name     string `json:"name" gorm:"size:256;not null"`
	Text     string `json:"text" gorm:"type:text"`
	AudioURL string `json:"audio_url" gorm:"size:512"`
	Level    *int   `json:"level"`
	TagID    *uint  `json:"tag_id" gorm:"index"`

	Lang  *Lang   `json:"-" gorm:"foreignKey:LangID"`
	Voc   *Voc    `json:"-" gorm:"foreignKey:VocID"`
	Tag   *Tag    `json:"-" gorm:"foreignKey:TagID"`
	Media []Media `json:"media,omitempty" gorm:"foreignKey:NoteID"`
}

type NoteCreateRequest struct {
	LangID   uint   `json:"lang_id" validate:"required"`
	VocID    uint   `json:"voc_id" validate:"required"`
	Name     string `json:"name" validate:"required,max=256"`
	Text     string `json:"text"`
	AudioURL string `json:"audio_url" validate:"max=512"`
	Level    *int   `json:"level" validate:"omitempty,min=1"`
	TagID    *uint  `json:"tag_id" validate:"omitempty,min=1"`
}

type NoteUpdateRequest struct {
	ID       uint   `json:"id" validate:"required"`
	VocID    uint   `json:"voc_id" validate:"required"`
	Name     string `json:"name" validate:"required,max=256"`
	Text     string `json:"text"`
	AudioURL string `json:"audio_url" validate:"max=512"`
	Level    *int   `json:"level" validate:"omitempty,min=1"`
	TagID    *uint  `json:"tag_id" validate:"omitempty,min=1"`
}

type NoteRenameRequest struct {
	ID   uint   `json:"id" validate:"required"`
	Name string `json:"name" validate:"required,max=256"`
}

type NoteDeleteRequest struct {
	ID uint `json:"id" validate:"required"`
}

// NoteSearchRequest is the filter set of the note search endpoint.
// Defaults (page 1, size 50) are applied by the handler.
type NoteSearchRequest struct {
	LangID uint   `form:"lang_id" validate:"required"`
	Size   int    `form:"size" validate:"min=1,max=100"`
	Page   int    `form:"page" validate:"min=1"`
	Key    string `form:"key" validate:"omitempty,min=2"`
	VocID  *uint  `form:"voc_id" validate:"omitempty,min=1"`
	Level  *int   `form:"level" validate:"omitempty,min=1"`
	TagID  *uint  `form:"tag_id" validate:"omitempty,min=1"`
}
