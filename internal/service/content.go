package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Devdiop221/deenquest/internal/models"
	"github.com/Devdiop221/deenquest/internal/storage/store"
	"go.uber.org/zap"
)

const (
	keyCategories = "content_categories"
	keyQuizzes    = "content_quizzes"
	keyLectures   = "content_lectures"
)

// ContentS serves content live when online and from the cached snapshot
// otherwise. A successful fetch replaces a content type's snapshot
// wholesale; failures leave it untouched. It never returns an error:
// a broken cache read just means an empty slice.
type ContentS struct {
	api     ContentAPII
	storage StorageI
	monitor MonitorI
	log     *zap.Logger
}

func NewContentService(api ContentAPII, storage StorageI, monitor MonitorI, log *zap.Logger) *ContentS {
	return &ContentS{
		api:     api,
		storage: storage,
		monitor: monitor,
		log:     log,
	}
}

// Categories returns the category list and whether it came from cache.
func (c *ContentS) Categories(ctx context.Context) ([]models.Category, bool) {
	if c.monitor.CurrentlyOnline() {
		items, err := c.api.Categories(ctx)
		if err == nil {
			c.storeSnapshot(ctx, keyCategories, models.CategorySnapshot{Items: items, CapturedAt: time.Now()})
			return items, false
		}
		c.log.Warn("live categories fetch failed, serving cache", zap.Error(err))
	}

	var snap models.CategorySnapshot
	if !c.loadSnapshot(ctx, keyCategories, &snap) {
		return nil, true
	}
	return snap.Items, true
}

// Quizzes returns the quiz list and whether it came from cache.
func (c *ContentS) Quizzes(ctx context.Context) ([]models.Quiz, bool) {
	if c.monitor.CurrentlyOnline() {
		items, err := c.api.Quizzes(ctx)
		if err == nil {
			c.storeSnapshot(ctx, keyQuizzes, models.QuizSnapshot{Items: items, CapturedAt: time.Now()})
			return items, false
		}
		c.log.Warn("live quizzes fetch failed, serving cache", zap.Error(err))
	}

	var snap models.QuizSnapshot
	if !c.loadSnapshot(ctx, keyQuizzes, &snap) {
		return nil, true
	}
	return snap.Items, true
}

// Lectures returns the lecture list and whether it came from cache.
func (c *ContentS) Lectures(ctx context.Context) ([]models.Lecture, bool) {
	if c.monitor.CurrentlyOnline() {
		items, err := c.api.Lectures(ctx)
		if err == nil {
			c.storeSnapshot(ctx, keyLectures, models.LectureSnapshot{Items: items, CapturedAt: time.Now()})
			return items, false
		}
		c.log.Warn("live lectures fetch failed, serving cache", zap.Error(err))
	}

	var snap models.LectureSnapshot
	if !c.loadSnapshot(ctx, keyLectures, &snap) {
		return nil, true
	}
	return snap.Items, true
}

func (c *ContentS) storeSnapshot(ctx context.Context, key string, snap any) {
	data, err := json.Marshal(snap)
	if err != nil {
		c.log.Warn("failed to encode snapshot", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.storage.Set(ctx, key, data); err != nil {
		c.log.Warn("failed to cache snapshot", zap.String("key", key), zap.Error(err))
	}
}

func (c *ContentS) loadSnapshot(ctx context.Context, key string, dest any) bool {
	data, err := c.storage.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			c.log.Warn("failed to read cached snapshot", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		c.log.Warn("failed to decode cached snapshot", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}
