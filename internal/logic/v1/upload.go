package v1

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arnav-motiramani/daily-doodles/internal/core"
	"github.com/arnav-motiramani/daily-doodles/pkg/errors"
	"github.com/arnav-motiramani/daily-doodles/pkg/i18n"
	"github.com/arnav-motiramani/daily-doodles/pkg/utils"
)

type UploadLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewUploadLogic(ctx context.Context, core *core.Core) *UploadLogic {
	l := &UploadLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: setupUserInfo(ctx, core),
	}

	return l
}

type UploadKey struct {
	Key      string `json:"key"`
	FullPath string `json:"full_path"`
}

func hashFileName(fileName string) string {
	result := strings.Split(fileName, ".")
	var suffix string
	if len(result) > 1 {
		suffix = "." + result[len(result)-1]
		fileName = strings.TrimSuffix(fileName, suffix)
	}

	return utils.MD5(fileName) + suffix
}

func genUserFilePath(userID, objectType string) string {
	return fmt.Sprintf("%s/%s/%d", userID, objectType, time.Now().Year())
}

// GenClientUploadKey 生成客户端直传凭证
func (l *UploadLogic) GenClientUploadKey(objectType, fileName string) (UploadKey, error) {
	userID := l.GetUserInfo().User
	filePath := genUserFilePath(userID, objectType)
	fileName = hashFileName(fileName)

	meta, err := l.core.Plugins.FileUploader().GenUploadFileMeta(l.ctx, filePath, fileName)
	if err != nil {
		return UploadKey{}, errors.New("UploadLogic.GenClientUploadKey.FileUploader.GenUploadFileMeta", i18n.ERROR_INTERNAL, err)
	}

	return UploadKey{
		Key:      meta.UploadEndpoint,
		FullPath: meta.FullPath,
	}, nil
}
