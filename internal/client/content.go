package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Devdiop221/deenquest/internal/models"
)

type ContentAPI struct {
	baseURL string
	client  *http.Client
}

func NewContentAPI(baseURL string, client *http.Client) *ContentAPI {
	return &ContentAPI{baseURL: baseURL, client: client}
}

func (c *ContentAPI) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := getJSON(ctx, c.client, c.baseURL+"/categories", &categories); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

func (c *ContentAPI) Quizzes(ctx context.Context) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	if err := getJSON(ctx, c.client, c.baseURL+"/quizzes", &quizzes); err != nil {
		return nil, fmt.Errorf("failed to fetch quizzes: %w", err)
	}
	return quizzes, nil
}

func (c *ContentAPI) Lectures(ctx context.Context) ([]models.Lecture, error) {
	var lectures []models.Lecture
	if err := getJSON(ctx, c.client, c.baseURL+"/lectures", &lectures); err != nil {
		return nil, fmt.Errorf("failed to fetch lectures: %w", err)
	}
	return lectures, nil
}
