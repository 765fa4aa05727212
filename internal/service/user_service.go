package service

import (
	"context"
	"errors"
	"strings"

	dom "github.com/gustavokauee/TaskFlex/internal/domain"
	"github.com/gustavokauee/TaskFlex/internal/repo"
	"github.com/gustavokauee/TaskFlex/internal/utils"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrUserExists         = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserService handles registration and credential checks.
type UserService struct {
	repo repo.UserRepo
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new user with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, username, email, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return dom.User{}, ErrMissingFields
	}
	taken, err := s.repo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return dom.User{}, err
	}
	if taken {
		return dom.User{}, ErrUserExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, username, email, string(hash))
	if err != nil {
		// Lost the race between the existence check and the insert.
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, ErrUserExists
		}
		return dom.User{}, err
	}
	return u, nil
}

// Authenticate checks username and password; returns the user if valid.
// Unknown username and wrong password collapse into the same error on
// purpose, so the caller cannot probe which usernames exist.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}
