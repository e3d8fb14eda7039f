package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/arnav-motiramani/daily-doodles/internal/logic/v1"
	"github.com/arnav-motiramani/daily-doodles/internal/response"
	"github.com/arnav-motiramani/daily-doodles/pkg/utils"
)

type GenUploadKeyRequest struct {
	ObjectType string `json:"object_type" binding:"required"`
	FileName   string `json:"file_name" binding:"required"`
}

// GenUploadKey
func (s *HttpSrv) GenUploadKey(c *gin.Context) {
	var (
		err error
		req GenUploadKeyRequest
	)

	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	logic := v1.NewUploadLogic(c, s.Core)
	result, err := logic.GenClientUploadKey(req.ObjectType, req.FileName)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, result)
}
