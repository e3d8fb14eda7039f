package core

import (
	"context"
	"time"
)

type Plugins interface {
	Install(*Core) error
	Name() string
	DefaultAppid() string
	TryLock(ctx context.Context, key string) (bool, error)
	UseLimiter(key string, method string, defaultRatelimit int) Limiter
	Cache() Cache
	FileUploader() FileStorage
}

type Limiter interface {
	Allow() bool
}

type Cache interface {
	SetEx(ctx context.Context, key, value string, expiresAt time.Duration) error
	Get(ctx context.Context, key string) (string, error)
}

type UploadFileMeta struct {
	UploadEndpoint string `json:"endpoint"`
	FullPath       string `json:"full_path"`
	Domain         string `json:"domain"`
}

// FileStorage interface defines methods for file operations.
type FileStorage interface {
	GetStaticDomain() string
	GenUploadFileMeta(ctx context.Context, filePath, fileName string) (UploadFileMeta, error)
	SaveFile(ctx context.Context, filePath, fileName string, content []byte) error
	DeleteFile(ctx context.Context, fullFilePath string) error
}

type SetupFunc func() Plugins

func (c *Core) InstallPlugins(p Plugins) {
	if err := p.Install(c); err != nil {
		panic(err)
	}
	c.Plugins = p
}
