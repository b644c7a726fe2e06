package services

import (
	"errors"
	"strings"
	"time"

	"stallpos/entity"
	"stallpos/pkg/apperr"
	"stallpos/repository"
	"stallpos/utils"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	Repo      *repository.StaffRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.StaffRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Repo: repo, jwtSecret: secret, jwtTTL: ttl}
}

// Login checks the password and mints a JWT.
func (s *AuthService) Login(username, password string) (string, *entity.Staff, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	staff, err := s.Repo.FindByUsername(username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := utils.GenerateToken(staff.ID, staff.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, staff, nil
}

// Register creates a staff account; only owners reach this.
func (s *AuthService) Register(username, password, role string) (*entity.Staff, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, apperr.Validationf("username is required")
	}
	if len(password) < 6 {
		return nil, apperr.Validationf("password must be at least 6 characters")
	}
	switch role {
	case "":
		role = "staff"
	case "staff", "owner":
	default:
		return nil, apperr.Validationf("unknown role %q", role)
	}

	count, err := s.Repo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Validationf("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}
	staff := &entity.Staff{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.Repo.Create(staff); err != nil {
		return nil, err
	}
	return staff, nil
}
