package service

import (
	"github.com/gin-gonic/gin"

	"github.com/arnav-motiramani/daily-doodles/cmd/service/handler"
	"github.com/arnav-motiramani/daily-doodles/internal/core"
	v1 "github.com/arnav-motiramani/daily-doodles/internal/logic/v1"
	"github.com/arnav-motiramani/daily-doodles/internal/response"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	core.HttpEngine().Run(core.Cfg().Addr)
}

func GetIPLimitBuilder(core *core.Core) func(key string) gin.HandlerFunc {
	return func(key string) gin.HandlerFunc {
		return UseLimit(core, key, func(c *gin.Context) string {
			return key + ":" + c.ClientIP()
		})
	}
}

func GetUserLimitBuilder(core *core.Core) func(key string) gin.HandlerFunc {
	return func(key string) gin.HandlerFunc {
		return UseLimit(core, key, func(c *gin.Context) string {
			token, _ := v1.InjectTokenClaim(c)
			return key + ":" + token.User
		})
	}
}

func setupHttpRouter(s *handler.HttpSrv) {
	ipLimit := GetIPLimitBuilder(s.Core)
	userLimit := GetUserLimitBuilder(s.Core)

	s.Engine.Use(I18n(), response.NewResponse())
	s.Engine.Use(Cors)
	s.Engine.Use(Observe(s.Core))

	s.Engine.GET("/metrics", gin.WrapH(s.Core.Metrics().Handler()))

	apiV1 := s.Engine.Group("/api/v1")
	{
		apiV1.GET("/mode", func(c *gin.Context) {
			response.APISuccess(c, s.Core.Plugins.Name())
		})

		apiV1.POST("/signup", ipLimit("signup"), s.Signup)
		apiV1.POST("/login", ipLimit("login"), s.Login)

		apiV1.GET("/voice/connect", AuthorizationFromQuery(s.Core), s.VoiceConnect)

		authed := apiV1.Group("")
		authed.Use(Authorization(s.Core))

		authed.POST("/logout", s.Logout)

		user := authed.Group("/user")
		{
			user.GET("/info", s.GetUser)
			user.PUT("/profile", userLimit("profile"), s.UpdateUserProfile)
		}

		journal := authed.Group("/journal")
		{
			journal.GET("/list", s.ListJournal)
			journal.GET("/stats", s.JournalStats)
			journal.GET("", s.GetJournal)
			journal.POST("", userLimit("journal_modify"), s.CreateJournal)
			journal.PUT("", userLimit("journal_modify"), s.UpdateJournal)
			journal.DELETE("", s.DeleteJournal)
		}

		assistant := authed.Group("/assistant")
		{
			assistant.GET("/prompt", userLimit("assistant_prompt"), s.AssistantPrompt)
			assistant.POST("/analyze", userLimit("assistant_analyze"), s.AssistantAnalyze)
		}

		object := authed.Group("/object")
		{
			object.POST("/upload/key", userLimit("upload"), s.GenUploadKey)
		}
	}
}
