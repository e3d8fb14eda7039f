package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/arnav-motiramani/daily-doodles/internal/logic/v1"
	"github.com/arnav-motiramani/daily-doodles/internal/response"
	"github.com/arnav-motiramani/daily-doodles/pkg/utils"
)

type SignupRequest struct {
	Name     string `json:"name" form:"name" binding:"max=32"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6,max=64"`
}

type AuthResponse struct {
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
	ServiceMode string `json:"service_mode"`
}

func (s *HttpSrv) Signup(c *gin.Context) {
	var (
		err error
		req SignupRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	result, err := v1.NewUserLogic(c, s.Core).Register(s.Core.DefaultAppid(), req.Name, req.Email, req.Password)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, AuthResponse{
		UserID:      result.User.ID,
		UserName:    result.User.Name,
		Email:       result.User.Email,
		AccessToken: result.AccessToken,
		ServiceMode: s.Core.Plugins.Name(),
	})
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

func (s *HttpSrv) Login(c *gin.Context) {
	var (
		err error
		req LoginRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	result, err := v1.NewUserLogic(c, s.Core).Login(s.Core.DefaultAppid(), req.Email, req.Password)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, AuthResponse{
		UserID:      result.User.ID,
		UserName:    result.User.Name,
		Email:       result.User.Email,
		AccessToken: result.AccessToken,
		ServiceMode: s.Core.Plugins.Name(),
	})
}

func (s *HttpSrv) Logout(c *gin.Context) {
	token := c.GetHeader("X-Access-Token")

	if err := v1.NewAuthedUserLogic(c, s.Core).Logout(token); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

type UserInfoResponse struct {
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	Avatar      string `json:"avatar"`
	Email       string `json:"email"`
	ServiceMode string `json:"service_mode"`
}

func (s *HttpSrv) GetUser(c *gin.Context) {
	user, err := v1.NewAuthedUserLogic(c, s.Core).GetUser()
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, UserInfoResponse{
		UserID:      user.ID,
		Avatar:      user.Avatar,
		UserName:    user.Name,
		Email:       user.Email,
		ServiceMode: s.Core.Plugins.Name(),
	})
}

type UpdateUserProfileRequest struct {
	UserName string `json:"user_name" form:"user_name" binding:"required,max=32"`
	Email    string `json:"email" form:"email" binding:"required,email"`
}

func (s *HttpSrv) UpdateUserProfile(c *gin.Context) {
	var (
		err error
		req UpdateUserProfileRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	err = v1.NewAuthedUserLogic(c, s.Core).UpdateUserProfile(req.UserName, req.Email)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, nil)
}
