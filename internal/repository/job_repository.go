package repository

import (
	"context"
	"employabilityWeb/internal/models"
	"fmt"
	"net/http"
	"net/url"
)

type jobRepository struct {
	client *Client
}

func NewJobRepository(client *Client) JobRepository {
	return &jobRepository{client: client}
}

// List returns jobs, optionally narrowed to one status. An empty status lists all.
func (r *jobRepository) List(ctx context.Context, token, status string) ([]models.Job, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}

	raw, err := r.client.do(ctx, token, http.MethodGet, "/jobs", query, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Job](raw, "jobs")
}

func (r *jobRepository) GetByID(ctx context.Context, token, jobID string) (*models.Job, error) {
	raw, err := r.client.do(ctx, token, http.MethodGet, "/jobs/"+url.PathEscape(jobID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[models.Job](raw, "job")
}

func (r *jobRepository) Approve(ctx context.Context, token, jobID string) error {
	_, err := r.client.do(ctx, token, http.MethodPut, fmt.Sprintf("/jobs/%s/approve", url.PathEscape(jobID)), nil, nil)
	return err
}

func (r *jobRepository) Reject(ctx context.Context, token, jobID, reason string) error {
	body := map[string]string{"reason": reason}
	_, err := r.client.do(ctx, token, http.MethodPut, fmt.Sprintf("/jobs/%s/reject", url.PathEscape(jobID)), nil, body)
	return err
}

func (r *jobRepository) Delete(ctx context.Context, token, jobID string) error {
	_, err := r.client.do(ctx, token, http.MethodDelete, "/jobs/"+url.PathEscape(jobID), nil, nil)
	return err
}
