package gemini

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"github.com/arnav-motiramani/daily-doodles/pkg/ai"
	"github.com/arnav-motiramani/daily-doodles/pkg/audio"
)

var testUpgrader = websocket.Upgrader{}

func dialTestConn(t *testing.T) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(server.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	assert.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestSendAudioDuringClose(t *testing.T) {
	s := &liveSession{
		conn:   dialTestConn(t),
		events: make(chan ai.TranscriptEvent, 1),
		audio:  make(chan audio.Chunk),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	sendErr := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				sendErr <- fmt.Errorf("send panicked: %v", r)
			}
		}()
		sendErr <- s.SendAudio(audio.NewChunk([]byte{0, 0}))
	}()

	// 等 sender 阻塞在发送上再触发关闭
	time.Sleep(50 * time.Millisecond)
	s.shutdown()

	select {
	case err := <-sendErr:
		assert.EqualError(t, err, "session closed")
	case <-time.After(time.Second):
		t.Fatal("sender still blocked after close")
	}

	assert.EqualError(t, s.SendAudio(audio.NewChunk([]byte{0, 0})), "audio stream is already closed")

	close(s.done)
	assert.NoError(t, s.Close())
}

func TestEmitNeverDropsForLiveConsumer(t *testing.T) {
	s := &liveSession{
		events: make(chan ai.TranscriptEvent),
		quit:   make(chan struct{}),
	}

	go s.emit(ai.TranscriptEvent{Text: "hello"})

	select {
	case event := <-s.events:
		assert.Equal(t, "hello", event.Text)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}

	close(s.quit)

	emitted := make(chan struct{})
	go func() {
		s.emit(ai.TranscriptEvent{Text: "late"})
		close(emitted)
	}()
	select {
	case <-emitted:
	case <-time.After(time.Second):
		t.Fatal("emit blocked after session quit")
	}
}

func TestWriteLoopStopsOnQuit(t *testing.T) {
	s := &liveSession{
		conn:  dialTestConn(t),
		audio: make(chan audio.Chunk, 1),
		quit:  make(chan struct{}),
	}

	s.wg.Add(1)
	go s.writeLoop()

	assert.NoError(t, s.SendAudio(audio.NewChunk([]byte{1, 0})))
	s.shutdown()

	finished := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("write loop did not stop")
	}
}

func TestExtractTranscription(t *testing.T) {
	payload := []byte(`{"serverContent":{"inputTranscription":{"text":" hello there "}}}`)
	assert.Equal(t, "hello there", extractTranscription(payload))
}

func TestExtractTranscriptionIgnoresOtherEvents(t *testing.T) {
	assert.Equal(t, "", extractTranscription([]byte(`{"setupComplete":{}}`)))
	assert.Equal(t, "", extractTranscription([]byte(`not json`)))
}

func TestSetupMessage(t *testing.T) {
	raw, err := json.Marshal(setupMessage("live-model"))
	assert.NoError(t, err)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(raw, &decoded))

	setup := decoded["setup"].(map[string]any)
	assert.Equal(t, "models/live-model", setup["model"])

	instruction := setup["system_instruction"].(map[string]any)
	parts := instruction["parts"].([]any)
	assert.Equal(t, ai.TRANSCRIBE_SYSTEM_INSTRUCTION, parts[0].(map[string]any)["text"])
}

func TestRealtimeInputMessageWireFormat(t *testing.T) {
	msg := realtimeInputMessage{}
	msg.RealtimeInput.MediaChunks = []audio.Chunk{audio.NewChunk([]byte{0, 1})}

	raw, err := json.Marshal(msg)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), `"realtime_input"`)
	assert.Contains(t, string(raw), `"media_chunks"`)
	assert.Contains(t, string(raw), audio.PCMMimeType)
}

func TestLiveURLEscapesToken(t *testing.T) {
	u := liveURL("a&b")
	assert.True(t, strings.HasSuffix(u, "?key=a%26b"))
}
