package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"skarchitects/internal/auth"
	"skarchitects/internal/model"
	"skarchitects/internal/repository"
)

const bcryptCost = 10

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// The message is deliberately identical for unknown-email and
	// wrong-password to avoid user enumeration.
	ErrInvalidCredentials = errors.New("Invalid Credentials")
	// ErrUserAlreadyExists is returned when registering an existing email.
	ErrUserAlreadyExists = errors.New("User already exists")
)

// AuthService handles registration, login and user administration.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (token string, err error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	ListEmployees(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a user with a bcrypt-hashed password and returns a
// signed token. Role defaults to employee when empty; an explicit admin
// role is honored as the bootstrap path for the first dashboard user.
// Email uniqueness is backed by a unique index, so two racing
// registrations cannot both land even if both pass the pre-check.
func (s *authService) Register(ctx context.Context, name, email, password, role string) (string, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return "", ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	if role == "" {
		role = model.RoleEmployee
	}

	user := &model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", ErrUserAlreadyExists
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user.ID.String(), user.Role)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	return token, nil
}

// Login authenticates a user and returns a signed token plus the user
// record for the role/name fields in the response.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID.String(), user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}

// ListEmployees returns all employee users, newest first. Password
// hashes never leave the model's JSON boundary.
func (s *authService) ListEmployees(ctx context.Context) ([]model.User, error) {
	return s.userRepo.ListByRole(ctx, model.RoleEmployee)
}

// DeleteUser removes a user unconditionally; deleting an absent id
// still succeeds.
func (s *authService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.userRepo.Delete(ctx, id)
}
