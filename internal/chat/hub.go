package chat

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/turagency/backoffice/internal/logger"
	"github.com/turagency/backoffice/internal/models"
	"github.com/turagency/backoffice/internal/utils"
)

// historyDepth is how many persisted messages a joining client receives.
const historyDepth = 50

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The UI is served from the same origin; cross-origin sockets are fine
	// for the office deployments behind a proxy.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type historyStore interface {
	GetChatHistory() ([]models.ChatMessage, error)
	SaveAllChatHistory(messages []models.ChatMessage) error
}

// envelope is the wire frame: history on join, message afterwards.
type envelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type inbound struct {
	Text string `json:"text"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub broadcasts every chat message to all open sockets and appends it to the
// persisted history.
type Hub struct {
	store historyStore

	mu      sync.Mutex
	clients map[*client]struct{}
}

func NewHub(store historyStore) *Hub {
	return &Hub{
		store:   store,
		clients: make(map[*client]struct{}),
	}
}

// ServeWS upgrades the request and runs the connection until the peer goes
// away. The caller has already authenticated the user.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, user models.PublicUser) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	cl := &client{conn: conn, send: make(chan []byte, 16)}

	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()
	logger.Log.Info("chat client joined", zap.String("user", user.Username))

	go cl.writeLoop()
	h.sendHistory(cl)
	h.readLoop(cl, user)

	h.mu.Lock()
	delete(h.clients, cl)
	h.mu.Unlock()
	close(cl.send)
	logger.Log.Info("chat client left", zap.String("user", user.Username))
}

func (h *Hub) sendHistory(cl *client) {
	history, err := h.store.GetChatHistory()
	if err != nil {
		logger.Log.Error("loading chat history", zap.Error(err))
		history = nil
	}
	if len(history) > historyDepth {
		history = history[len(history)-historyDepth:]
	}
	if history == nil {
		history = []models.ChatMessage{}
	}

	data, err := json.Marshal(envelope{Type: "history", Data: history})
	if err != nil {
		return
	}
	select {
	case cl.send <- data:
	default:
	}
}

func (h *Hub) readLoop(cl *client, user models.PublicUser) {
	defer cl.conn.Close()

	for {
		_, raw, err := cl.conn.ReadMessage()
		if err != nil {
			return
		}

		var in inbound
		if err := json.Unmarshal(raw, &in); err != nil || in.Text == "" {
			logger.Log.Warn("dropping unparseable chat message")
			continue
		}

		sender := user.DisplayName
		if sender == "" {
			sender = user.Username
		}
		msg := models.ChatMessage{
			ID:        uuid.NewString(),
			Sender:    sender,
			Role:      user.Role,
			Text:      in.Text,
			Timestamp: utils.NowStamp(),
		}

		h.appendHistory(msg)
		h.broadcast(msg)
	}
}

// appendHistory persists best effort: a failed write must not kill the chat.
func (h *Hub) appendHistory(msg models.ChatMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	history, err := h.store.GetChatHistory()
	if err == nil {
		history = append(history, msg)
		err = h.store.SaveAllChatHistory(history)
	}
	if err != nil {
		logger.Log.Error("persisting chat message", zap.Error(err))
	}
}

func (h *Hub) broadcast(msg models.ChatMessage) {
	data, err := json.Marshal(envelope{Type: "message", Data: msg})
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for cl := range h.clients {
		select {
		case cl.send <- data:
		default:
			// Slow consumer: skip rather than block the room.
		}
	}
}

// writeLoop is the single writer for the connection, as the websocket
// package requires.
func (cl *client) writeLoop() {
	for data := range cl.send {
		if err := cl.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}
