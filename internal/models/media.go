package models

// Media is a binary blob attached to a note. A row exists if and only if
// the blob exists at URL under the local store; the two are created and
// destroyed together by the media service.
type Media struct {
	ID        uint   `json:"-" gorm:"primaryKey"`
	UID       string `json:"uid" gorm:"uniqueIndex;size:64;not null"`
	NoteID    uint   `json:"note_id" gorm:"not null;index"`
	Name      string `json:"name" gorm:"size:255;not null"`
	MediaType string `json:"media_type" gorm:"size:100;not null"`
	URL       string `json:"url" gorm:"size:255;not null"`

	Note *Note `json:"-" gorm:"foreignKey:NoteID"`
}

type MediaDeleteRequest struct {
	UID string `json:"uid" validate:"required"`
}
