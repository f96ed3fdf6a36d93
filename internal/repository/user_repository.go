package repository

import (
	"context"
	"employabilityWeb/internal/models"
	"fmt"
	"net/http"
)

type userRepository struct {
	client *Client
}

func NewUserRepository(client *Client) UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	raw, err := r.client.do(ctx, "", http.MethodPost, "/auth/login", nil, req)
	if err != nil {
		return nil, err
	}

	resp, err := decodeOne[LoginResponse](raw)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, &RequestError{Message: "Login response did not contain a token"}
	}
	return resp, nil
}

func (r *userRepository) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if _, err := r.client.do(ctx, token, http.MethodPost, "/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("backend logout: %w", err)
	}
	return nil
}

func (r *userRepository) GetProfile(ctx context.Context, token string) (*models.Profile, error) {
	raw, err := r.client.do(ctx, token, http.MethodGet, "/students/profile", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[models.Profile](raw, "profile", "student")
}
