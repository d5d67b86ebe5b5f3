package cache

import (
	"sync"

	"github.com/Devdiop221/deenquest/internal/models"
)

// Cache holds in-memory provisional quiz outcomes keyed by the queued
// action id, until the sync drain confirms them against the remote.
type Cache struct {
	mu      sync.Mutex
	results map[string]models.QuizAnswerResult
}

func NewCache() *Cache {
	return &Cache{
		results: make(map[string]models.QuizAnswerResult),
	}
}

func (c *Cache) SetResult(actionID string, result models.QuizAnswerResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[actionID] = result
}

func (c *Cache) Result(actionID string) (models.QuizAnswerResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	result, exists := c.results[actionID]
	return result, exists
}

func (c *Cache) DeleteResult(actionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.results, actionID)
}
