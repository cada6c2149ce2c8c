package models

type Lang struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Code string `json:"code" gorm:"size:8;not null"`
	Name string `json:"name" gorm:"size:256;not null"`

	Vocs []Voc `json:"vocs,omitempty" gorm:"foreignKey:LangID"`
	Tags []Tag `json:"tags,omitempty" gorm:"foreignKey:LangID"`
}

type LangCreateRequest struct {
	Code string `json:"code" validate:"required,max=8"`
	Name string `json:"name" validate:"required,max=256"`
}

type LangUpdateRequest struct {
	ID   uint   `json:"id" validate:"required"`
	Code string `json:"code" validate:"required,max=8"`
	Name string `json:"name" validate:"required,max=256"`
}

type LangDeleteRequest struct {
	ID uint `json:"id" validate:"required"`
}
