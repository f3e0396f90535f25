package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"mealmentor/internal/models"
)

const (
	articleCacheKeyPrefix = "article:"
	articleListCacheKey   = "articles:list:"
	tipsCacheKey          = "tips:all"
	cacheExpiration       = 30 * time.Minute
)

// cachePatterns match every key this repository writes.
var cachePatterns = []string{articleCacheKeyPrefix + "*", articleListCacheKey + "*", tipsCacheKey}

type ArticleRepository interface {
	Create(article *models.Article) error
	FindAll(category string) ([]models.Article, error)
	FindByID(id uint) (*models.Article, error)
	CreateTip(tip *models.Tip) error
	FindAllTips() ([]models.Tip, error)
	InvalidateAllCache() error
}

type articleRepository struct {
	db    *gorm.DB
	cache *redis.Client
	ctx   context.Context
}

func getCacheKey(id uint) string {
	return fmt.Sprintf("%s%d", articleCacheKeyPrefix, id)
}

func getListCacheKey(category string) string {
	if category == "" {
		category = "all"
	}
	return articleListCacheKey + category
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{
		db:  db,
		ctx: context.Background(),
	}
}

// NewCachedArticleRepository reads through redisClient before hitting the
// database. Cache failures are logged and fall back to the database.
func NewCachedArticleRepository(db *gorm.DB, redisClient *redis.Client) ArticleRepository {
	return &articleRepository{
		db:    db,
		cache: redisClient,
		ctx:   context.Background(),
	}
}

func (r *articleRepository) Create(article *models.Article) error {
	if err := r.db.Create(article).Error; err != nil {
		zap.L().Error("Error creating article", zap.Error(err))
		return err
	}
	_ = r.InvalidateAllCache()
	return nil
}

func (r *articleRepository) FindAll(category string) ([]models.Article, error) {
	var articles []models.Article
	if r.cacheGet(getListCacheKey(category), &articles) {
		return articles, nil
	}

	query := r.db.Order("id")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&articles).Error; err != nil {
		return nil, err
	}

	r.cacheSet(getListCacheKey(category), articles)
	return articles, nil
}

func (r *articleRepository) FindByID(id uint) (*models.Article, error) {
	var article models.Article
	if r.cacheGet(getCacheKey(id), &article) {
		zap.L().Debug("Cache hit for article", zap.Uint("id", id))
		return &article, nil
	}

	if err := r.db.First(&article, id).Error; err != nil {
		return nil, err
	}

	r.cacheSet(getCacheKey(id), article)
	return &article, nil
}

func (r *articleRepository) CreateTip(tip *models.Tip) error {
	if err := r.db.Create(tip).Error; err != nil {
		return err
	}
	if r.cache != nil {
		_ = r.cache.Del(r.ctx, tipsCacheKey).Err()
	}
	return nil
}

func (r *articleRepository) FindAllTips() ([]models.Tip, error) {
	var tips []models.Tip
	if r.cacheGet(tipsCacheKey, &tips) {
		return tips, nil
	}
	if err := r.db.Order("id").Find(&tips).Error; err != nil {
		return nil, err
	}
	r.cacheSet(tipsCacheKey, tips)
	return tips, nil
}

// InvalidateAllCache drops every cached article, article list and the tips.
func (r *articleRepository) InvalidateAllCache() error {
	if r.cache == nil {
		return nil
	}
	var keys []string
	for _, pattern := range cachePatterns {
		iter := r.cache.Scan(r.ctx, 0, pattern, 0).Iterator()
		for iter.Next(r.ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return err
		}
	}
	if len(keys) == 0 {
		return nil
	}
	return r.cache.Del(r.ctx, keys...).Err()
}

func (r *articleRepository) cacheGet(key string, dst interface{}) bool {
	if r.cache == nil {
		return false
	}
	cached, err := r.cache.Get(r.ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			zap.L().Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(cached), dst); err != nil {
		zap.L().Warn("Failed to unmarshal cached value", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (r *articleRepository) cacheSet(key string, value interface{}) {
	if r.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := r.cache.Set(r.ctx, key, data, cacheExpiration).Err(); err != nil {
		zap.L().Warn("Failed to cache value", zap.String("key", key), zap.Error(err))
	}
}
