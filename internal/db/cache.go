package cloudz

import (
	"context"
	"fmt"
	"strconv"
	"time"

	config "github.com/clouddistrictclub/cloud-district-app/internal/config"
	models "github.com/clouddistrictclub/cloud-district-app/internal/models"
	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"
)

const balanceTTL = 5 * time.Minute

type CacheService struct {
	client *redis.Client
}

func NewCacheService(cfg config.CacheConfig) (serv *CacheService, err error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("env CLOUDZ_CACHE_URL is not set")
	}
	// redis
	db := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		Username:    cfg.User,
		DB:          0,
		MaxRetries:  5,
		DialTimeout: 10 * time.Second,
	})
	err = db.Ping(context.Background()).Err()
	if err != nil {
		return nil, err
	}

	return NewCacheFromClient(db), nil
}

func NewCacheFromClient(client *redis.Client) *CacheService {
	return &CacheService{client}
}

func balanceKey(userId uuid.UUID) string {
	return "cloudz:balance:" + userId.String()
}

func (c *CacheService) GetBalance(ctx context.Context, userId uuid.UUID) (points int64, err error) {
	val, err := c.client.Get(ctx, balanceKey(userId)).Result()
	if err == redis.Nil {
		return 0, models.ErrNotFound
	} else if err != nil {
		return 0, err
	}

	points, err = strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, err
	}
	return points, nil
}

func (c *CacheService) SetBalance(ctx context.Context, userId uuid.UUID, points int64) (err error) {
	return c.client.Set(ctx, balanceKey(userId), points, balanceTTL).Err()
}

func (c *CacheService) InvalidateBalance(ctx context.Context, userId uuid.UUID) error {
	return c.client.Del(ctx, balanceKey(userId)).Err()
}

func (c *CacheService) Close() error {
	return c.client.Close()
}
