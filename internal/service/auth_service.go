package service

import (
	"context"
	"employabilityWeb/internal/models"
	"employabilityWeb/internal/repository"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidInput = errors.New("invalid input")

// invalidInput carries a message the user can act on and still matches ErrInvalidInput.
func invalidInput(message string) error {
	return &repository.RequestError{Message: message, Err: ErrInvalidInput}
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userRepo repository.UserRepository
	validate *validator.Validate
}

func NewAuthService(userRepo repository.UserRepository, validate *validator.Validate) AuthService {
	return &authService{
		userRepo: userRepo,
		validate: validate,
	}
}

type loginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	input := loginInput{Email: strings.TrimSpace(email), Password: password}
	if err := s.validate.Struct(input); err != nil {
		return nil, invalidInput("A valid email and a password are required")
	}

	resp, err := s.userRepo.Login(ctx, repository.LoginRequest{Email: input.Email, Password: input.Password})
	if err != nil {
		return nil, err
	}

	user := resp.User
	user.Role = models.Role(strings.ToLower(strings.TrimSpace(string(user.Role))))
	if !user.Role.Valid() {
		return nil, &repository.RequestError{Message: fmt.Sprintf("Unsupported account role %q", resp.User.Role)}
	}
	if user.Email == "" {
		user.Email = input.Email
	}

	return &models.Session{Token: resp.Token, User: user}, nil
}

// Logout tells the backend the token is done. Local cleanup does not depend on it.
func (s *authService) Logout(ctx context.Context, token string) error {
	return s.userRepo.Logout(ctx, token)
}
