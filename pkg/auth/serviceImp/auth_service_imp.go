package serviceImp

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"agriportal/entities"
	"agriportal/pkg/auth/service"
)

// EnvAdminID marks the actor logged in through ADMIN_EMAIL/ADMIN_PASSWORD
// rather than a user row.
const EnvAdminID = "00000000-0000-0000-0000-000000000000"

type AdminConfig struct {
	Email       string
	Password    string
	RegisterKey string
}

type authService struct {
	db    *gorm.DB
	admin AdminConfig
}

func New(db *gorm.DB, admin AdminConfig) service.AuthService {
	return &authService{db: db, admin: admin}
}

func (s *authService) Login(email, password string) (*entities.Actor, error) {
	if s.admin.Email != "" && s.admin.Password != "" && email == s.admin.Email && password == s.admin.Password {
		return &entities.Actor{ID: EnvAdminID, Email: email, Name: "システム管理者", IsAdmin: true}, nil
	}

	var u entities.User
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrUserNotFound
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, service.ErrWrongPassword
	}
	return &entities.Actor{ID: u.ID, Email: u.Email, Name: u.Name, IsAdmin: u.IsAdmin}, nil
}

func (s *authService) Register(secret, email, name, password string, isAdmin bool) (*entities.User, error) {
	if secret != s.admin.RegisterKey {
		return nil, service.ErrBadSecret
	}

	var count int64
	if err := s.db.Model(&entities.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, service.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entities.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
	}
	if err := s.db.Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}
