package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/arnav-motiramani/daily-doodles/pkg/errors"
	"github.com/arnav-motiramani/daily-doodles/pkg/i18n"
)

const (
	LOCALIZER_CONTEXT_KEY = "__localizer"
	LANG_CONTEXT_KEY      = "__lang"
)

type Body struct {
	Meta Meta `json:"meta"`
	Data any  `json:"data"`
}

type Meta struct {
	RequestID string `json:"request_id,omitempty"`
	Message   string `json:"message"`
}

// NewResponse 统一响应头
func NewResponse() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "application/json; charset=utf-8")
		c.Next()
	}
}

// ProvideResponseLocalizer resolves the request language once so APIError
// can render messages without touching the header again.
func ProvideResponseLocalizer(l *i18n.Localizer) gin.HandlerFunc {
	matcher := language.NewMatcher([]language.Tag{
		language.English,
		language.SimplifiedChinese,
	})
	return func(c *gin.Context) {
		lang := i18n.DEFAULT_LANG
		if accept := c.GetHeader("Accept-Language"); accept != "" {
			if tag, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tag) > 0 {
				matched, _, _ := matcher.Match(tag...)
				if base, conf := matched.Base(); conf != language.No && base.String() == "zh" {
					lang = "zh-CN"
				}
			}
		}
		c.Set(LOCALIZER_CONTEXT_KEY, l)
		c.Set(LANG_CONTEXT_KEY, lang)
		c.Next()
	}
}

func APISuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Body{
		Meta: Meta{
			RequestID: c.GetHeader("X-Request-ID"),
			Message:   "ok",
		},
		Data: data,
	})
}

func APIError(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	key := i18n.ERROR_INTERNAL
	if e, ok := err.(*errors.Error); ok {
		code = e.StatusCode()
		key = e.Key()
	}

	if code >= http.StatusInternalServerError {
		slog.Error("request failed", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	}

	message := key
	if l, exist := c.Get(LOCALIZER_CONTEXT_KEY); exist {
		lang, _ := c.Get(LANG_CONTEXT_KEY)
		langStr, _ := lang.(string)
		message = l.(*i18n.Localizer).Get(langStr, key)
	}

	c.AbortWithStatusJSON(code, Body{
		Meta: Meta{
			RequestID: c.GetHeader("X-Request-ID"),
			Message:   message,
		},
	})
}
