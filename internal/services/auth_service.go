package services

import (
	"github.com/Dittner/DerTutor/internal/apperr"
	"github.com/Dittner/DerTutor/internal/models"
	"github.com/Dittner/DerTutor/internal/store"
	"github.com/Dittner/DerTutor/internal/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	users *store.Store[models.User]
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{users: store.New[models.User](db)}
}

// Login verifies the password of an existing user. The caller issues
// the token pair on success.
func (s *AuthService) Login(username, password string) (*models.User, error) {
	user, err := s.users.FindOne(store.Filter{"username": username})
	if err != nil {
		return nil, err
	}
	if !utils.VerifyPassword(password, user.HashedPassword) {
		return nil, apperr.Unauthenticated("Password not valid")
	}
	return user, nil
}

// Register creates a regular (non-superuser) active user. A duplicate
// username surfaces as Conflict.
func (s *AuthService) Register(username, password string) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return s.users.Create(&models.User{
		Username:       username,
		HashedPassword: hashed,
		IsActive:       true,
		IsSuperuser:    false,
	})
}

func (s *AuthService) GetUsers() ([]models.User, error) {
	return s.users.FindAll(store.Filter{}, "id")
}

func (s *AuthService) GetUserByID(id uint) (*models.User, error) {
	return s.users.FindOne(store.Filter{"id": id})
}
