package v1

import (
	"context"
	"net/http"
	"unicode"
	"unicode/utf8"

	"github.com/arnav-motiramani/daily-doodles/internal/core"
	"github.com/arnav-motiramani/daily-doodles/internal/core/srv"
	"github.com/arnav-motiramani/daily-doodles/pkg/ai"
	"github.com/arnav-motiramani/daily-doodles/pkg/errors"
	"github.com/arnav-motiramani/daily-doodles/pkg/i18n"
)

type VoiceLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewVoiceLogic(ctx context.Context, core *core.Core) *VoiceLogic {
	l := &VoiceLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: setupUserInfo(ctx, core),
	}

	return l
}

// OpenTranscription opens a live transcription session on the configured
// driver.
func (l *VoiceLogic) OpenTranscription() (ai.TranscriptionSession, error) {
	session, err := l.core.Srv().AI().OpenTranscription(l.ctx)
	l.core.Metrics().RecordAI("transcribe", err)
	if err != nil {
		errMsg := i18n.ERROR_INTERNAL
		code := http.StatusInternalServerError

		if err == srv.ERROR_UNSUPPORTED_FEATURE {
			errMsg = i18n.ERROR_UNSUPPORTED_FEATURE
			code = http.StatusForbidden
		}
		return nil, errors.New("VoiceLogic.OpenTranscription.Srv.AI.OpenTranscription", errMsg, err).Code(code)
	}

	return session, nil
}

// AppendTranscript joins an incremental transcript onto the running
// draft with exactly one separating space. Empty or whitespace-ended
// content never gains a double separator.
func AppendTranscript(content, text string) string {
	if text == "" {
		return content
	}
	if content == "" {
		return content + text
	}
	last, _ := utf8.DecodeLastRuneInString(content)
	if unicode.IsSpace(last) {
		return content + text
	}
	return content + " " + text
}
