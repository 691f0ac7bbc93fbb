package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Kariqs/wagas-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Default cost for bcrypt password hashing
const bcryptCost = 10

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	List(ctx context.Context) ([]models.User, error)
}

type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// Register creates a new account. The username and email must both be
// unused; the role is fixed at creation and never re-derived afterwards.
func (s *AuthService) Register(ctx context.Context, data models.SignupData) (*models.User, error) {
	if data.Username == "" || data.Email == "" || data.Password == "" {
		return nil, ErrMissingFields
	}

	exists, err := s.users.ExistsByUsernameOrEmail(ctx, data.Username, data.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	hashedPassword, err := hashPassword(data.Password)
	if err != nil {
		return nil, err
	}

	role := models.RoleUser
	if strings.EqualFold(data.Username, models.RoleAdmin) {
		role = models.RoleAdmin
	}

	user := models.User{
		Username: data.Username,
		Email:    data.Email,
		Password: hashedPassword,
		Role:     role,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies a credential against the account matching the
// identifier, which may be a username or an email.
func (s *AuthService) Login(ctx context.Context, data models.LoginData) (*models.User, error) {
	user, err := s.users.FindByIdentifier(ctx, data.Identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := comparePasswords(user.Password, data.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}
