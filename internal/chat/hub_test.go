package chat

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turagency/backoffice/internal/models"
	"github.com/turagency/backoffice/internal/store"
)

func newChatServer(t *testing.T) (*httptest.Server, *store.Store) {
	storage, err := store.New(t.TempDir())
	require.NoError(t, err)

	hub := NewHub(storage)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWS(w, r, models.PublicUser{Username: "admin", DisplayName: "Admin", Role: models.RoleOwner})
	}))
	t.Cleanup(server.Close)

	return server, storage
}

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) (string, json.RawMessage) {
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var frame struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &frame))
	return frame.Type, frame.Data
}

func TestJoiningClientReceivesHistory(t *testing.T) {
	server, storage := newChatServer(t)

	require.NoError(t, storage.SaveAllChatHistory([]models.ChatMessage{
		{ID: "1", Sender: "Admin", Text: "hello"},
	}))

	conn := dial(t, server)

	frameType, data := readEnvelope(t, conn)
	require.Equal(t, "history", frameType)

	var history []models.ChatMessage
	require.NoError(t, json.Unmarshal(data, &history))
	require.Len(t, history, 1)
	assert.Equal(t, "hello", history[0].Text)
}

func TestHistoryIsCappedForJoiners(t *testing.T) {
	server, storage := newChatServer(t)

	messages := make([]models.ChatMessage, historyDepth+10)
	for i := range messages {
		messages[i] = models.ChatMessage{ID: "m", Text: "old"}
	}
	messages[len(messages)-1].Text = "newest"
	require.NoError(t, storage.SaveAllChatHistory(messages))

	conn := dial(t, server)

	frameType, data := readEnvelope(t, conn)
	require.Equal(t, "history", frameType)

	var history []models.ChatMessage
	require.NoError(t, json.Unmarshal(data, &history))
	require.Len(t, history, historyDepth)
	assert.Equal(t, "newest", history[len(history)-1].Text)
}

func TestMessageIsBroadcastAndPersisted(t *testing.T) {
	server, storage := newChatServer(t)

	sender := dial(t, server)
	receiver := dial(t, server)

	frameType, _ := readEnvelope(t, sender)
	require.Equal(t, "history", frameType)
	frameType, _ = readEnvelope(t, receiver)
	require.Equal(t, "history", frameType)

	require.NoError(t, sender.WriteJSON(map[string]string{"text": "salam"}))

	frameType, data := readEnvelope(t, receiver)
	require.Equal(t, "message", frameType)

	var msg models.ChatMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, "salam", msg.Text)
	assert.Equal(t, "Admin", msg.Sender)
	assert.Equal(t, models.RoleOwner, msg.Role)
	assert.NotEmpty(t, msg.ID)

	// Broadcast also reaches the sender's own socket.
	frameType, _ = readEnvelope(t, sender)
	assert.Equal(t, "message", frameType)

	require.Eventually(t, func() bool {
		history, err := storage.GetChatHistory()
		return err == nil && len(history) == 1
	}, 2*time.Second, 20*time.Millisecond)
}

func TestUnparseableMessagesAreDropped(t *testing.T) {
	server, storage := newChatServer(t)

	conn := dial(t, server)
	frameType, _ := readEnvelope(t, conn)
	require.Equal(t, "history", frameType)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	require.NoError(t, conn.WriteJSON(map[string]string{"text": ""}))
	require.NoError(t, conn.WriteJSON(map[string]string{"text": "valid"}))

	frameType, data := readEnvelope(t, conn)
	require.Equal(t, "message", frameType)

	var msg models.ChatMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, "valid", msg.Text)

	history, err := storage.GetChatHistory()
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
