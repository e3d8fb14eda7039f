package v1

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/arnav-motiramani/daily-doodles/internal/core"
	"github.com/arnav-motiramani/daily-doodles/pkg/ai"
	"github.com/arnav-motiramani/daily-doodles/pkg/types"
)

type AssistantLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewAssistantLogic(ctx context.Context, core *core.Core) *AssistantLogic {
	l := &AssistantLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: setupUserInfo(ctx, core),
	}

	return l
}

const (
	promptCacheKeyPrefix = "assistant:prompt:"
	promptCacheTTL       = time.Minute * 5
	aiCallTimeout        = time.Second * 20
)

// GeneratePrompt 生成今日的引导语，任何失败都降级为固定文案
func (l *AssistantLogic) GeneratePrompt() string {
	claims := l.GetUserInfo()

	cacheKey := promptCacheKeyPrefix + claims.User
	if cached, err := l.core.Cache().Get(l.ctx, cacheKey); err == nil && cached != "" {
		return cached
	}

	name := claims.UserName
	if name == "" {
		name = types.DEFAULT_USER_NAME
	}

	ctx, cancel := context.WithTimeout(l.ctx, aiCallTimeout)
	defer cancel()

	result, err := l.core.Srv().AI().GenerateJournalPrompt(ctx, name)
	l.core.Metrics().RecordAI("prompt", err)
	if err != nil {
		slog.Error("Failed to generate journal prompt, use fallback",
			slog.String("user_id", claims.User),
			slog.String("error", err.Error()))
		return ai.FALLBACK_PROMPT
	}

	text := strings.TrimSpace(result.Text)
	if text == "" {
		return ai.EMPTY_RESPONSE_PROMPT
	}

	if err := l.core.Cache().SetEx(l.ctx, cacheKey, text, promptCacheTTL); err != nil {
		slog.Error("Failed to cache journal prompt", slog.String("error", err.Error()))
	}
	return text
}

// AnalyzeEntry never fails outward: oversized input, transport errors
// and malformed model output all map to a stored fallback pair.
func (l *AssistantLogic) AnalyzeEntry(content string) ai.AnalyzeResult {
	claims := l.GetUserInfo()

	if ai.ContentIsOverLimit(content, "") {
		slog.Warn("Journal entry over analyze token limit, use fallback",
			slog.String("user_id", claims.User))
		return ai.FallbackAnalyze()
	}

	ctx, cancel := context.WithTimeout(l.ctx, aiCallTimeout)
	defer cancel()

	result, err := l.core.Srv().AI().AnalyzeEntry(ctx, content)
	l.core.Metrics().RecordAI("analyze", err)
	if err != nil {
		slog.Error("Failed to analyze journal entry, use fallback",
			slog.String("user_id", claims.User),
			slog.String("error", err.Error()))
		return ai.FallbackAnalyze()
	}

	if result.Mood == "" || result.Insight == "" {
		return ai.MalformedAnalyze()
	}
	return result
}
