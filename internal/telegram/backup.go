package telegram

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/turagency/backoffice/internal/logger"
)

// StartBackupSchedule ships every data file to the backup chat on a fixed
// interval until the context is canceled. Disabled when the client has no
// credentials or the interval is zero.
func StartBackupSchedule(ctx context.Context, c *Client, dataDir string, interval time.Duration) {
	if !c.Enabled() || interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.backupDataDir(dataDir)
			}
		}
	}()
}

// backupDataDir sends each JSON data file as a separate document. One failed
// file does not stop the rest.
func (c *Client) backupDataDir(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Log.Error("reading data dir for backup", zap.Error(err))
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		payload, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			logger.Log.Error("reading data file for backup",
				zap.String("file", entry.Name()), zap.Error(err))
			continue
		}

		if err := c.SendDocument(entry.Name(), payload); err != nil {
			logger.Log.Error("shipping backup", zap.Error(err))
		}
	}
}
