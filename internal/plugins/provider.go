package plugins

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arnav-motiramani/daily-doodles/internal/core"
	"github.com/arnav-motiramani/daily-doodles/pkg/s3"
)

func Setup(install func(p core.Plugins), mode string) {
	p := provider[mode]
	if p == nil {
		panic("Setup mode not found: " + mode)
	}
	install(p())
}

var provider = map[string]core.SetupFunc{
	"selfhost": func() core.Plugins {
		return newSelfHostPlugin()
	},
	"saas": func() core.Plugins {
		return newSaaSPlugin()
	},
}

type ObjectStorageDriver struct {
	StaticDomain string    `toml:"static_domain"`
	Driver       string    `toml:"driver"` // default: none
	S3           *S3Config `toml:"s3"`
}

type S3Config struct {
	Bucket    string `toml:"bucket"`
	Region    string `toml:"region"`
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
}

func SetupObjectStorage(cfg ObjectStorageDriver) core.FileStorage {
	var s core.FileStorage
	switch strings.ToLower(cfg.Driver) {
	case "s3":
		s3Cfg := cfg.S3
		s = &S3FileStorage{
			StaticDomain: cfg.StaticDomain,
			Client:       s3.NewClient(s3Cfg.Endpoint, s3Cfg.Region, s3Cfg.Bucket, s3Cfg.AccessKey, s3Cfg.SecretKey),
		}
	case "local":
		s = &LocalFileStorage{
			StaticDomain: cfg.StaticDomain,
		}
	default:
		s = &NoneFileStorage{}
	}

	return s
}

type NoneFileStorage struct {
}

func (lfs *NoneFileStorage) GetStaticDomain() string {
	return ""
}

func (lfs *NoneFileStorage) GenUploadFileMeta(ctx context.Context, filePath, fileName string) (core.UploadFileMeta, error) {
	return core.UploadFileMeta{}, fmt.Errorf("Unsupported")
}

func (lfs *NoneFileStorage) SaveFile(ctx context.Context, filePath, fileName string, content []byte) error {
	return fmt.Errorf("Unsupported")
}

func (lfs *NoneFileStorage) DeleteFile(ctx context.Context, fullFilePath string) error {
	return fmt.Errorf("Unsupported")
}

type LocalFileStorage struct {
	StaticDomain string
}

func (lfs *LocalFileStorage) GetStaticDomain() string {
	return lfs.StaticDomain
}

func (lfs *LocalFileStorage) GenUploadFileMeta(ctx context.Context, filePath, fileName string) (core.UploadFileMeta, error) {
	return core.UploadFileMeta{
		FullPath: filepath.Join(filePath, fileName),
		Domain:   lfs.StaticDomain,
	}, nil
}

// SaveFile stores a file on the local file system.
func (lfs *LocalFileStorage) SaveFile(ctx context.Context, filePath, fileName string, content []byte) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(filePath, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %v", err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to check directory: %v", err)
	}

	fullPath := filepath.Join(filePath, fileName)
	if err = os.WriteFile(fullPath, content, 0644); err != nil {
		return fmt.Errorf("failed to save file: %v", err)
	}

	return nil
}

func (lfs *LocalFileStorage) DeleteFile(ctx context.Context, fullFilePath string) error {
	if err := os.Remove(fullFilePath); err != nil {
		return fmt.Errorf("failed to delete file: %v", err)
	}
	return nil
}

type S3FileStorage struct {
	StaticDomain string
	*s3.Client
}

func (fs *S3FileStorage) GetStaticDomain() string {
	return fs.StaticDomain
}

func (fs *S3FileStorage) GenUploadFileMeta(ctx context.Context, filePath, fileName string) (core.UploadFileMeta, error) {
	key, err := fs.Client.GenClientUploadKey(ctx, filePath, fileName)
	if err != nil {
		return core.UploadFileMeta{}, err
	}
	return core.UploadFileMeta{
		FullPath:       filepath.Join(filePath, fileName),
		UploadEndpoint: key,
		Domain:         fs.StaticDomain,
	}, nil
}

// SaveFile stores a file
func (fs *S3FileStorage) SaveFile(ctx context.Context, filePath, fileName string, content []byte) error {
	return fs.Upload(ctx, filePath, fileName, bytes.NewReader(content))
}

// DeleteFile deletes a file
func (fs *S3FileStorage) DeleteFile(ctx context.Context, fullFilePath string) error {
	return fs.Delete(ctx, fullFilePath)
}
