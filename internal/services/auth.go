package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/turagency/backoffice/internal/models"
)

var (
	ErrUserIsNotExist      = errors.New("user does not exist")
	ErrPasswordIsIncorrect = errors.New("password is incorrect")
)

// AuthService authenticates back-office accounts against the users
// collection. There is no self-service registration; accounts are seeded.
type AuthService struct {
	storage authStorage
}

type authStorage interface {
	GetUsers() ([]models.User, error)
	SaveAllUsers(users []models.User) error
}

func NewAuthService(storage authStorage) *AuthService {
	return &AuthService{storage: storage}
}

// Login verifies the credentials and returns the matching user.
func (auth *AuthService) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	if err := validateCredentials(creds); err != nil {
		return nil, err
	}

	user, err := auth.findUser(*creds.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserIsNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Hash), []byte(*creds.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrPasswordIsIncorrect
		}
		return nil, fmt.Errorf("comparing passwords: %w", err)
	}

	return user, nil
}

// GetUser returns the account for a username, used when resolving sessions.
func (auth *AuthService) GetUser(ctx context.Context, username string) (*models.User, error) {
	user, err := auth.findUser(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserIsNotExist
	}
	return user, nil
}

// EnsureAdmin seeds an owner account when the users collection is empty, so a
// fresh deployment is reachable. No-op once any user exists.
func (auth *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	users, err := auth.storage.GetUsers()
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	users = append(users, models.User{
		ID:          uuid.NewString(),
		Username:    username,
		DisplayName: username,
		Role:        models.RoleOwner,
		Hash:        string(hash),
	})
	return auth.storage.SaveAllUsers(users)
}

func (auth *AuthService) findUser(username string) (*models.User, error) {
	users, err := auth.storage.GetUsers()
	if err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, nil
}

func validateCredentials(creds models.Credentials) error {
	if creds.Username == nil || *creds.Username == "" {
		return fmt.Errorf("%w: username must not be empty", ErrValidation)
	}
	if creds.Password == nil || *creds.Password == "" {
		return fmt.Errorf("%w: password must not be empty", ErrValidation)
	}
	return nil
}
