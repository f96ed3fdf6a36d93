package service

import (
	"context"
	"employabilityWeb/internal/models"
	"employabilityWeb/internal/repository"
	"fmt"
	"strings"
)

const (
	PostTabAll      = "all"
	PostTabReported = "reported"
)

type PostService interface {
	List(ctx context.Context, token, tab string, page int) ([]models.Post, error)
	SetHidden(ctx context.Context, token, postID string, hidden bool) error
	Delete(ctx context.Context, token, postID string) error
}

type postService struct {
	postRepo repository.PostRepository
	pageSize int
}

func NewPostService(postRepo repository.PostRepository, pageSize int) PostService {
	if pageSize < 1 {
		pageSize = 10
	}
	return &postService{
		postRepo: postRepo,
		pageSize: pageSize,
	}
}

func NormalizePostTab(tab string) string {
	if strings.ToLower(strings.TrimSpace(tab)) == PostTabReported {
		return PostTabReported
	}
	return PostTabAll
}

func PostsEmptyMessage(tab string, page int) string {
	if NormalizePostTab(tab) == PostTabReported {
		return "No reported posts to review"
	}
	if page > 1 {
		return fmt.Sprintf("No posts on page %d", page)
	}
	return "No posts yet"
}

// List returns the feed page, or every reported post on the reported tab.
func (p *postService) List(ctx context.Context, token, tab string, page int) ([]models.Post, error) {
	if NormalizePostTab(tab) == PostTabReported {
		return p.postRepo.ListReported(ctx, token)
	}
	if page < 1 {
		page = 1
	}
	result, err := p.postRepo.List(ctx, token, page, p.pageSize)
	if err != nil {
		return nil, err
	}
	return result.Posts, nil
}

func (p *postService) SetHidden(ctx context.Context, token, postID string, hidden bool) error {
	return p.postRepo.SetHidden(ctx, token, postID, hidden)
}

func (p *postService) Delete(ctx context.Context, token, postID string) error {
	return p.postRepo.Delete(ctx, token, postID)
}
