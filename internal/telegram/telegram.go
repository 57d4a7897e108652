package telegram

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/turagency/backoffice/internal/logger"
)

const apiBase = "https://api.telegram.org"

// Client talks to the Telegram Bot API for audit mirroring and data backups.
// A client with empty credentials is valid and silently does nothing, so
// callers never need to branch on configuration.
type Client struct {
	http   *resty.Client
	token  string
	chatID string
}

func New(token, chatID string) *Client {
	return &Client{
		http:   resty.New().SetBaseURL(apiBase),
		token:  token,
		chatID: chatID,
	}
}

// Enabled reports whether credentials are configured.
func (c *Client) Enabled() bool {
	return c != nil && c.token != "" && c.chatID != ""
}

// SendLog posts an HTML-formatted line to the configured chat. Fire and
// forget: the caller's request must never wait on or fail with Telegram.
func (c *Client) SendLog(text string) {
	if !c.Enabled() {
		return
	}

	go func() {
		resp, err := c.http.R().
			SetFormData(map[string]string{
				"chat_id":    c.chatID,
				"text":       text,
				"parse_mode": "HTML",
			}).
			Post(fmt.Sprintf("/bot%s/sendMessage", c.token))
		if err != nil {
			logger.Log.Warn("sending telegram log", zap.Error(err))
			return
		}
		if resp.StatusCode() != http.StatusOK {
			logger.Log.Warn("telegram rejected log message",
				zap.Int("status", resp.StatusCode()))
		}
	}()
}

// SendDocument uploads a file to the configured chat, used by the backup
// shipper.
func (c *Client) SendDocument(name string, payload []byte) error {
	if !c.Enabled() {
		return nil
	}

	resp, err := c.http.R().
		SetFileReader("document", name, bytes.NewReader(payload)).
		SetFormData(map[string]string{"chat_id": c.chatID}).
		Post(fmt.Sprintf("/bot%s/sendDocument", c.token))
	if err != nil {
		return fmt.Errorf("sending document %s: %w", name, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("telegram rejected document %s: status %d", name, resp.StatusCode())
	}
	return nil
}
