package i18n

import (
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var messages = map[string]map[string]string{
	"en": {
		ERROR_INTERNAL:               "Something went wrong, please try again later",
		ERROR_NOTFOUND:               "Not found",
		ERROR_INVALIDARGUMENT:        "Invalid request argument",
		ERROR_PERMISSION_DENIED:      "Permission denied",
		ERROR_UNAUTHORIZED:           "Unauthorized",
		ERROR_EXIST:                  "Already exists",
		ERROR_FORBIDDEN:              "Forbidden",
		ERROR_TOO_MANY_REQUESTS:      "Too many requests",
		ERROR_UNSUPPORTED_FEATURE:    "Unsupported feature",
		ERROR_INVALID_TOKEN:          "Invalid access token",
		ERROR_INVALID_ACCOUNT:        "Incorrect email or password",
		ERROR_EMAIL_ALREADY_REGISTED: "This email has already been registered",
	},
	"zh-CN": {
		ERROR_INTERNAL:               "服务异常，请稍后再试",
		ERROR_NOTFOUND:               "内容不存在",
		ERROR_INVALIDARGUMENT:        "请求参数有误",
		ERROR_PERMISSION_DENIED:      "权限不足",
		ERROR_UNAUTHORIZED:           "未登录",
		ERROR_EXIST:                  "内容已存在",
		ERROR_FORBIDDEN:              "禁止访问",
		ERROR_TOO_MANY_REQUESTS:      "请求过于频繁",
		ERROR_UNSUPPORTED_FEATURE:    "暂不支持该功能",
		ERROR_INVALID_TOKEN:          "登录凭证已失效",
		ERROR_INVALID_ACCOUNT:        "邮箱或密码错误",
		ERROR_EMAIL_ALREADY_REGISTED: "该邮箱已被注册",
	},
}

type Localizer struct {
	bundle     *goi18n.Bundle
	localizers map[string]*goi18n.Localizer
}

func NewLocalizer(langs ...string) *Localizer {
	bundle := goi18n.NewBundle(language.English)
	l := &Localizer{
		bundle:     bundle,
		localizers: make(map[string]*goi18n.Localizer),
	}

	for lang, msgs := range messages {
		for id, other := range msgs {
			if err := bundle.AddMessages(language.Make(lang), &goi18n.Message{
				ID:    id,
				Other: other,
			}); err != nil {
				panic(err)
			}
		}
	}

	for _, lang := range langs {
		if !ALLOW_LANG[lang] {
			continue
		}
		l.localizers[lang] = goi18n.NewLocalizer(bundle, lang)
	}
	if _, exist := l.localizers[DEFAULT_LANG]; !exist {
		l.localizers[DEFAULT_LANG] = goi18n.NewLocalizer(bundle, DEFAULT_LANG)
	}
	return l
}

// Get resolves the message for key in lang, falling back to the default
// language and finally to the key itself.
func (l *Localizer) Get(lang, key string) string {
	localizer, exist := l.localizers[lang]
	if !exist {
		localizer = l.localizers[DEFAULT_LANG]
	}

	msg, err := localizer.Localize(&goi18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return key
	}
	return msg
}
