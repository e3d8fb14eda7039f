package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func dialVoiceTestConn(t *testing.T, serverSide func(conn *websocket.Conn)) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		serverSide(conn)
	}))
	t.Cleanup(server.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	assert.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestCloseVoiceConnSurfacesSessionError(t *testing.T) {
	client := dialVoiceTestConn(t, func(conn *websocket.Conn) {
		closeVoiceConn(conn, errors.New("provider went away"))
	})

	messageType, raw, err := client.ReadMessage()
	assert.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, messageType)

	var msg voiceServerMessage
	assert.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, "error", msg.Type)
	assert.Equal(t, "provider went away", msg.Error)

	_, _, err = client.ReadMessage()
	var closeErr *websocket.CloseError
	assert.True(t, errors.As(err, &closeErr))
	assert.Equal(t, websocket.CloseNormalClosure, closeErr.Code)
}

func TestCloseVoiceConnCleanShutdown(t *testing.T) {
	client := dialVoiceTestConn(t, func(conn *websocket.Conn) {
		closeVoiceConn(conn, nil)
	})

	_, _, err := client.ReadMessage()
	var closeErr *websocket.CloseError
	assert.True(t, errors.As(err, &closeErr))
	assert.Equal(t, websocket.CloseNormalClosure, closeErr.Code)
}
