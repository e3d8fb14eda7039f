package plugins

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/arnav-motiramani/daily-doodles/internal/core"
	"github.com/arnav-motiramani/daily-doodles/pkg/safe"
	"github.com/arnav-motiramani/daily-doodles/pkg/utils"
)

var _ core.Plugins = (*SelfHostPlugin)(nil)

func newSelfHostPlugin() *SelfHostPlugin {
	return &SelfHostPlugin{
		Appid:      "doodles-selfhost",
		singleLock: NewSingleLock(),
	}
}

type SelfHostCustomConfig struct {
	ObjectStorage ObjectStorageDriver `toml:"object_storage"`
}

func NewSingleLock() *SingleLock {
	return &SingleLock{
		locks: make(map[string]bool),
	}
}

type SingleLock struct {
	mu    sync.Mutex
	locks map[string]bool
}

func (s *SingleLock) TryLock(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locks[key] {
		return false, nil
	}
	s.locks[key] = true
	go safe.Run(func() {
		<-ctx.Done()
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.locks, key)
	})
	return true, nil
}

type memoryCacheItem struct {
	value     string
	expiresAt time.Time
}

// MemoryCache 单机部署时的本地缓存
type MemoryCache struct {
	mu    sync.RWMutex
	items map[string]memoryCacheItem
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		items: make(map[string]memoryCacheItem),
	}
}

func (c *MemoryCache) SetEx(ctx context.Context, key, value string, expiresAt time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = memoryCacheItem{
		value:     value,
		expiresAt: time.Now().Add(expiresAt),
	}
	return nil
}

func (c *MemoryCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.RLock()
	item, exist := c.items[key]
	c.mu.RUnlock()
	if !exist {
		return "", nil
	}
	if time.Now().After(item.expiresAt) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return "", nil
	}
	return item.value, nil
}

type SelfHostPlugin struct {
	core       *core.Core
	Appid      string
	singleLock *SingleLock
	cache      *MemoryCache

	core.FileStorage

	customConfig SelfHostCustomConfig
}

func (s *SelfHostPlugin) Name() string {
	return "selfhost"
}

func (s *SelfHostPlugin) DefaultAppid() string {
	return s.Appid
}

func (s *SelfHostPlugin) Install(c *core.Core) error {
	s.core = c
	utils.SetupIDWorker(1)

	customConfig := core.NewCustomConfigPayload[SelfHostCustomConfig]()
	if err := s.core.Cfg().LoadCustomConfig(&customConfig); err != nil {
		return fmt.Errorf("Failed to install custom config, %w", err)
	}
	s.customConfig = customConfig.CustomConfig
	s.cache = NewMemoryCache()
	return nil
}

func (s *SelfHostPlugin) Cache() core.Cache {
	return s.cache
}

func (s *SelfHostPlugin) TryLock(ctx context.Context, key string) (bool, error) {
	return s.singleLock.TryLock(ctx, key)
}

var (
	limiterMu sync.Mutex
	limiter   = make(map[string]*rate.Limiter)
)

// ratelimit 代表每分钟允许的数量
func (s *SelfHostPlugin) UseLimiter(key string, method string, defaultRatelimit int) core.Limiter {
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

func (s *SelfHostPlugin) FileUploader() core.FileStorage {
	if s.FileStorage != nil {
		return s.FileStorage
	}

	s.FileStorage = SetupObjectStorage(s.customConfig.ObjectStorage)

	return s.FileStorage
}
