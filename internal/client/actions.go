package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Devdiop221/deenquest/internal/models"
)

// ActionAPI carries one remote operation per offline-action kind. The
// remote applies each of them idempotently, so at-least-once delivery
// from the sync drain is safe.
type ActionAPI struct {
	baseURL string
	client  *http.Client
}

func NewActionAPI(baseURL string, client *http.Client) *ActionAPI {
	return &ActionAPI{baseURL: baseURL, client: client}
}

func (a *ActionAPI) SubmitQuizAnswer(ctx context.Context, p models.QuizAnswerPayload) (models.QuizAnswerResult, error) {
	var result models.QuizAnswerResult
	if err := postJSON(ctx, a.client, a.baseURL+"/quizzes/answer", p, &result); err != nil {
		return models.QuizAnswerResult{}, fmt.Errorf("failed to submit quiz answer: %w", err)
	}
	return result, nil
}

func (a *ActionAPI) CompleteLecture(ctx context.Context, p models.LectureCompletePayload) (models.LectureCompleteResult, error) {
	var result models.LectureCompleteResult
	if err := postJSON(ctx, a.client, a.baseURL+"/lectures/complete", p, &result); err != nil {
		return models.LectureCompleteResult{}, fmt.Errorf("failed to complete lecture: %w", err)
	}
	return result, nil
}

func (a *ActionAPI) AddFavorite(ctx context.Context, p models.FavoritePayload) error {
	if err := postJSON(ctx, a.client, a.baseURL+"/favorites/add", p, nil); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (a *ActionAPI) RemoveFavorite(ctx context.Context, p models.FavoritePayload) error {
	if err := postJSON(ctx, a.client, a.baseURL+"/favorites/remove", p, nil); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}
