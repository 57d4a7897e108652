package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/turagency/backoffice/internal/logger"
	"github.com/turagency/backoffice/internal/models"
	"github.com/turagency/backoffice/internal/utils"
)

// Notifier forwards audit lines to an external channel (Telegram in
// production). Delivery is best effort.
type Notifier interface {
	SendLog(text string)
}

// AuditLogService appends sensitive actions to the audit-log collection and
// mirrors them to the notifier. Recording never fails the caller's request:
// persistence errors are logged and swallowed.
type AuditLogService struct {
	storage  auditStorage
	notifier Notifier
	mu       sync.Mutex
}

type auditStorage interface {
	GetAuditLog() ([]models.AuditEntry, error)
	SaveAllAuditLog(entries []models.AuditEntry) error
}

func NewAuditLogService(storage auditStorage, notifier Notifier) *AuditLogService {
	return &AuditLogService{storage: storage, notifier: notifier}
}

func (a *AuditLogService) Record(user models.PublicUser, action string, details map[string]any) {
	entry := models.AuditEntry{
		ID:        uuid.NewString(),
		User:      user.Username,
		Action:    action,
		Details:   details,
		Timestamp: utils.NowStamp(),
	}

	a.mu.Lock()
	entries, err := a.storage.GetAuditLog()
	if err == nil {
		entries = append(entries, entry)
		err = a.storage.SaveAllAuditLog(entries)
	}
	a.mu.Unlock()
	if err != nil {
		logger.Log.Error("appending audit entry",
			zap.String("action", action), zap.Error(err))
	}

	if a.notifier != nil {
		a.notifier.SendLog(formatAuditLine(user, action, details))
	}
}

func (a *AuditLogService) Entries(ctx context.Context) ([]models.AuditEntry, error) {
	return a.storage.GetAuditLog()
}

func formatAuditLine(user models.PublicUser, action string, details map[string]any) string {
	name := user.DisplayName
	if name == "" {
		name = user.Username
	}
	line := fmt.Sprintf("<b>%s</b> (%s): %s", name, user.Role, action)
	if len(details) > 0 {
		line += fmt.Sprintf(" %v", details)
	}
	return line
}
