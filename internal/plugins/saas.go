package plugins

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/arnav-motiramani/daily-doodles/internal/core"
	"github.com/arnav-motiramani/daily-doodles/pkg/utils"
)

var _ core.Plugins = (*SaaSPlugin)(nil)

func newSaaSPlugin() *SaaSPlugin {
	return &SaaSPlugin{
		Appid: "doodles",
	}
}

type SaaSCustomConfig struct {
	Redis         RedisConfig         `toml:"redis"`
	ObjectStorage ObjectStorageDriver `toml:"object_storage"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type SaaSPlugin struct {
	core  *core.Core
	Appid string

	redis *redis.Client
	cache *RedisCache

	core.FileStorage

	// custom config
	customConfig SaaSCustomConfig
}

func (s *SaaSPlugin) Name() string {
	return "saas"
}

func (s *SaaSPlugin) DefaultAppid() string {
	return s.Appid
}

func (s *SaaSPlugin) Install(c *core.Core) error {
	s.core = c
	utils.SetupIDWorker(1) // TODO: Cluster id by redis

	customConfig := core.NewCustomConfigPayload[SaaSCustomConfig]()
	if err := s.core.Cfg().LoadCustomConfig(&customConfig); err != nil {
		return fmt.Errorf("Failed to install custom config, %w", err)
	}
	s.customConfig = customConfig.CustomConfig

	s.redis = redis.NewClient(&redis.Options{
		Addr:     s.customConfig.Redis.Addr,
		Password: s.customConfig.Redis.Password,
		DB:       s.customConfig.Redis.DB,
	})
	s.cache = &RedisCache{client: s.redis}
	return nil
}

type RedisCache struct {
	client *redis.Client
}

func (c *RedisCache) SetEx(ctx context.Context, key, value string, expiresAt time.Duration) error {
	return c.client.SetEx(ctx, key, value, expiresAt).Err()
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (s *SaaSPlugin) Cache() core.Cache {
	return s.cache
}

const lockTTL = time.Second * 30

func (s *SaaSPlugin) TryLock(ctx context.Context, key string) (bool, error) {
	return s.redis.SetNX(ctx, "lock:"+key, "1", lockTTL).Result()
}

// ratelimit 代表每分钟允许的数量
func (s *SaaSPlugin) UseLimiter(key string, method string, defaultRatelimit int) core.Limiter {
	limiterMu.Lock()
	defer limiterMu.Unlock()
	l, exist := limiter[key]
	if !exist {
		limit := rate.Every(time.Minute / time.Duration(defaultRatelimit))
		limiter[key] = rate.NewLimiter(limit, defaultRatelimit*2)
		l = limiter[key]
	}

	return l
}

func (s *SaaSPlugin) FileUploader() core.FileStorage {
	if s.FileStorage != nil {
		return s.FileStorage
	}

	s.FileStorage = SetupObjectStorage(s.customConfig.ObjectStorage)

	return s.FileStorage
}
