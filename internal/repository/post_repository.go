package repository

import (
	"context"
	"employabilityWeb/internal/models"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

type postRepository struct {
	client *Client
}

func NewPostRepository(client *Client) PostRepository {
	return &postRepository{client: client}
}

func (r *postRepository) List(ctx context.Context, token string, page, limit int) (*PostsPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	raw, err := r.client.do(ctx, token, http.MethodGet, "/posts/feed", query, nil)
	if err != nil {
		return nil, err
	}

	posts, err := decodeList[models.Post](raw, "posts")
	if err != nil {
		return nil, err
	}

	result := &PostsPage{
		Posts:      posts,
		Pagination: models.Pagination{Page: page, Limit: limit},
	}

	// pagination is optional in the feed payload
	var meta struct {
		Pagination *models.Pagination `json:"pagination"`
	}
	if len(raw) > 0 && raw[0] == '{' {
		if err := json.Unmarshal(raw, &meta); err == nil && meta.Pagination != nil {
			result.Pagination = *meta.Pagination
		}
	}

	return result, nil
}

func (r *postRepository) ListReported(ctx context.Context, token string) ([]models.Post, error) {
	raw, err := r.client.do(ctx, token, http.MethodGet, "/posts/reported", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Post](raw, "posts")
}

func (r *postRepository) SetHidden(ctx context.Context, token, postID string, hidden bool) error {
	body := map[string]bool{"isHidden": hidden}
	_, err := r.client.do(ctx, token, http.MethodPut, fmt.Sprintf("/posts/%s/hide", url.PathEscape(postID)), nil, body)
	return err
}

func (r *postRepository) Delete(ctx context.Context, token, postID string) error {
	_, err := r.client.do(ctx, token, http.MethodDelete, "/posts/"+url.PathEscape(postID), nil, nil)
	return err
}
