package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/arnav-motiramani/daily-doodles/internal/logic/v1"
	"github.com/arnav-motiramani/daily-doodles/internal/response"
	"github.com/arnav-motiramani/daily-doodles/pkg/utils"
)

type AssistantPromptResponse struct {
	Prompt string `json:"prompt"`
}

func (s *HttpSrv) AssistantPrompt(c *gin.Context) {
	prompt := v1.NewAssistantLogic(c, s.Core).GeneratePrompt()
	response.APISuccess(c, AssistantPromptResponse{
		Prompt: prompt,
	})
}

type AssistantAnalyzeRequest struct {
	Content string `json:"content" form:"content" binding:"required"`
}

type AssistantAnalyzeResponse struct {
	Mood    string `json:"mood"`
	Insight string `json:"insight"`
}

func (s *HttpSrv) AssistantAnalyze(c *gin.Context) {
	var (
		err error
		req AssistantAnalyzeRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	result := v1.NewAssistantLogic(c, s.Core).AnalyzeEntry(req.Content)
	response.APISuccess(c, AssistantAnalyzeResponse{
		Mood:    result.Mood,
		Insight: result.Insight,
	})
}
