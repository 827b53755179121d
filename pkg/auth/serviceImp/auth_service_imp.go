package serviceImp

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fms/entities"
	"fms/pkg/auth/service"
)

type AuthSvc struct {
	db       *gorm.DB
	secret   []byte
	tokenTTL time.Duration
}

func New(db *gorm.DB, secret string, ttl time.Duration) *AuthSvc {
	return &AuthSvc{db: db, secret: []byte(secret), tokenTTL: ttl}
}

func (s *AuthSvc) Register(email, password, name, role string) (string, error) {
	var existing entities.User
	err := s.db.First(&existing, "email = ?", email).Error
	if err == nil {
		return "", service.ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	u := &entities.User{Email: email, PasswordHash: string(hash), Name: name, Role: role}
	if err := s.db.Create(u).Error; err != nil {
		return "", err
	}
	return s.token(u)
}

func (s *AuthSvc) Login(email, password string) (string, error) {
	var u entities.User
	if err := s.db.First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", service.ErrInvalidCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", service.ErrInvalidCredentials
	}
	return s.token(&u)
}

func (s *AuthSvc) CreateMember(name, email, role string) (*entities.User, error) {
	if email == "" {
		// "Jane Smith" -> "janesmith@farm.com"
		email = strings.ReplaceAll(strings.ToLower(name), " ", "") + "@farm.com"
	}
	var existing entities.User
	err := s.db.First(&existing, "email = ?", email).Error
	if err == nil {
		return nil, service.ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(service.DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entities.User{Email: email, PasswordHash: string(hash), Name: name, Role: role}
	if err := s.db.Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthSvc) ResetPassword(user *entities.User, current, next string) error {
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return service.ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.db.Model(&entities.User{}).Where("id = ?", user.ID).
		Update("password_hash", string(hash)).Error
}

func (s *AuthSvc) IsDefaultPassword(user *entities.User) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(service.DefaultPassword)) == nil
}

func (s *AuthSvc) token(u *entities.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  u.ID,
		"role": u.Role,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
