package models

type User struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Username       string `json:"username" gorm:"uniqueIndex;size:256;not null"`
	HashedPassword string `json:"-" gorm:"size:255;not null"`
	IsActive       bool   `json:"is_active" gorm:"not null;default:true"`
	IsSuperuser    bool   `json:"is_superuser" gorm:"not null;default:false"`
}

type UserAuthRequest struct {
	Username string `json:"username" validate:"required,max=256"`
	Password string `json:"password" validate:"required"`
}
