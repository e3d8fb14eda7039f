package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/arnav-motiramani/daily-doodles/pkg/ai"
	"github.com/arnav-motiramani/daily-doodles/pkg/audio"
)

const liveEndpoint = "wss://generativelanguage.googleapis.com/ws/google.ai.generativelanguage.v1alpha.GenerativeService.BidiGenerateContent"

// OpenTranscription connects a live session configured for silent
// input transcription: the model never speaks back, it only emits
// transcription events for the pushed audio.
func (s *Driver) OpenTranscription(ctx context.Context) (ai.TranscriptionSession, error) {
	if strings.TrimSpace(s.token) == "" {
		return nil, errors.New("gemini api token is not configured")
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, liveURL(s.token), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect live session: %w", err)
	}

	if err = conn.WriteJSON(setupMessage(s.model.LiveModel)); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to send live session setup: %w", err)
	}

	session := &liveSession{
		conn:   conn,
		events: make(chan ai.TranscriptEvent, 64),
		audio:  make(chan audio.Chunk, 32),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	session.wg.Add(2)
	go session.readLoop()
	go session.writeLoop()
	go func() {
		session.wg.Wait()
		close(session.events)
		close(session.done)
		_ = conn.Close()
	}()

	go func() {
		<-ctx.Done()
		_ = session.Close()
	}()

	return session, nil
}

type liveSession struct {
	conn *websocket.Conn

	events chan ai.TranscriptEvent
	audio  chan audio.Chunk

	// quit closes first, on Close; SendAudio and the loops observe it
	// so the audio channel is never closed while senders are live.
	quit chan struct{}
	done chan struct{}

	wg sync.WaitGroup

	errMu sync.Mutex
	err   error

	closeOnce sync.Once
}

func (s *liveSession) SendAudio(chunk audio.Chunk) error {
	if chunk.Data == "" {
		return nil
	}

	select {
	case <-s.quit:
		return errors.New("audio stream is already closed")
	default:
	}

	select {
	case s.audio <- chunk:
		return nil
	case <-s.quit:
		if err := s.sessionErr(); err != nil {
			return err
		}
		return errors.New("session closed")
	}
}

func (s *liveSession) Events() <-chan ai.TranscriptEvent {
	return s.events
}

func (s *liveSession) Close() error {
	s.shutdown()
	<-s.done
	return s.sessionErr()
}

func (s *liveSession) shutdown() {
	s.closeOnce.Do(func() {
		close(s.quit)
		_ = s.conn.Close()
	})
}

func (s *liveSession) sessionErr() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.err
}

func (s *liveSession) setErr(err error) {
	if err == nil {
		return
	}
	if websocket.IsCloseError(err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway,
		websocket.CloseNoStatusReceived,
	) {
		return
	}

	s.errMu.Lock()
	defer s.errMu.Unlock()
	if s.err == nil {
		s.err = err
	}
}

func (s *liveSession) writeLoop() {
	defer s.wg.Done()

	for {
		select {
		case chunk := <-s.audio:
			msg := realtimeInputMessage{}
			msg.RealtimeInput.MediaChunks = []audio.Chunk{chunk}
			if err := s.conn.WriteJSON(msg); err != nil {
				s.setErr(fmt.Errorf("failed to send audio chunk: %w", err))
				return
			}
		case <-s.quit:
			return
		}
	}
}

func (s *liveSession) readLoop() {
	defer s.wg.Done()
	// 远端断开时同样要唤醒 writeLoop
	defer s.shutdown()

	for {
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			select {
			case <-s.quit:
				// expected read failure, the session is tearing down
			default:
				s.setErr(fmt.Errorf("failed to read live session event: %w", err))
			}
			return
		}

		text := extractTranscription(payload)
		if text == "" {
			continue
		}
		s.emit(ai.TranscriptEvent{Text: text})
	}
}

// emit blocks until the consumer takes the event or the session quits,
// transcripts must not be dropped while anyone is still reading.
func (s *liveSession) emit(event ai.TranscriptEvent) {
	select {
	case s.events <- event:
	case <-s.quit:
	}
}

type setupPayload struct {
	Setup struct {
		Model            string `json:"model"`
		GenerationConfig struct {
			ResponseModalities []string `json:"response_modalities"`
		} `json:"generation_config"`
		SystemInstruction struct {
			Parts []textPart `json:"parts"`
		} `json:"system_instruction"`
		InputAudioTranscription struct{} `json:"input_audio_transcription"`
	} `json:"setup"`
}

type textPart struct {
	Text string `json:"text"`
}

type realtimeInputMessage struct {
	RealtimeInput struct {
		MediaChunks []audio.Chunk `json:"media_chunks"`
	} `json:"realtime_input"`
}

type serverMessage struct {
	ServerContent struct {
		InputTranscription struct {
			Text string `json:"text"`
		} `json:"inputTranscription"`
	} `json:"serverContent"`
}

func setupMessage(model string) setupPayload {
	var msg setupPayload
	msg.Setup.Model = "models/" + model
	msg.Setup.GenerationConfig.ResponseModalities = []string{"AUDIO"}
	msg.Setup.SystemInstruction.Parts = []textPart{{Text: ai.TRANSCRIBE_SYSTEM_INSTRUCTION}}
	return msg
}

func extractTranscription(payload []byte) string {
	var msg serverMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return ""
	}
	return strings.TrimSpace(msg.ServerContent.InputTranscription.Text)
}

func liveURL(token string) string {
	return liveEndpoint + "?key=" + url.QueryEscape(token)
}
