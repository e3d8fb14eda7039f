package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	v1 "github.com/arnav-motiramani/daily-doodles/internal/logic/v1"
	"github.com/arnav-motiramani/daily-doodles/internal/response"
	"github.com/arnav-motiramani/daily-doodles/pkg/audio"
	"github.com/arnav-motiramani/daily-doodles/pkg/safe"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024 * 16,
	WriteBufferSize: 1024 * 4,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type voiceClientMessage struct {
	Type string `json:"type"`
}

// closeVoiceConn surfaces a session error to the client, then sends the
// close frame. The caller holds the write lock.
func closeVoiceConn(conn *websocket.Conn, err error) {
	conn.SetWriteDeadline(time.Now().Add(time.Second * 5))
	if err != nil {
		if payload, merr := json.Marshal(voiceServerMessage{Type: "error", Error: err.Error()}); merr == nil {
			conn.WriteMessage(websocket.TextMessage, payload)
		}
	}
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()
}

type voiceServerMessage struct {
	Type    string `json:"type"`
	Text    string `json:"text,omitempty"`
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

// VoiceConnect bridges a browser microphone socket onto the live
// transcription session. Client frames are little-endian float32 PCM at
// 16kHz; transcripts stream back with the running draft content.
func (s *HttpSrv) VoiceConnect(c *gin.Context) {
	session, err := v1.NewVoiceLogic(c, s.Core).OpenTranscription()
	if err != nil {
		response.APIError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		session.Close()
		slog.Error("Failed to upgrade voice connection", slog.String("error", err.Error()))
		return
	}

	var (
		closeOnce sync.Once
		writeMu   sync.Mutex
	)
	teardown := func() {
		closeOnce.Do(func() {
			err := session.Close()
			writeMu.Lock()
			closeVoiceConn(conn, err)
			writeMu.Unlock()
		})
	}
	defer teardown()

	// 以客户端草稿为起点续写
	content := c.Query("content")

	go safe.Run(func() {
		defer teardown()
		for event := range session.Events() {
			content = v1.AppendTranscript(content, event.Text)
			payload, err := json.Marshal(voiceServerMessage{
				Type:    "transcript",
				Text:    event.Text,
				Content: content,
			})
			if err != nil {
				continue
			}
			writeMu.Lock()
			conn.SetWriteDeadline(time.Now().Add(time.Second * 10))
			err = conn.WriteMessage(websocket.TextMessage, payload)
			writeMu.Unlock()
			if err != nil {
				return
			}
		}
	})

	for {
		messageType, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		switch messageType {
		case websocket.BinaryMessage:
			samples, err := audio.DecodeFloat32(raw)
			if err != nil {
				slog.Warn("Dropped malformed audio frame", slog.String("error", err.Error()))
				continue
			}
			chunk := audio.NewChunk(audio.Float32ToPCM16(samples))
			if err := session.SendAudio(chunk); err != nil {
				return
			}
		case websocket.TextMessage:
			var msg voiceClientMessage
			if err := json.Unmarshal(raw, &msg); err != nil {
				continue
			}
			if msg.Type == "stop" {
				return
			}
		}
	}
}
