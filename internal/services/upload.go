package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/turagency/backoffice/internal/logger"
	"github.com/turagency/backoffice/internal/models"
	"github.com/turagency/backoffice/internal/utils"
)

var ErrUploadNotConfigured = errors.New("image hosting is not configured")

const imgurEndpoint = "https://api.imgur.com/3/image"

// ImgurUploadService proxies image uploads to Imgur and records each
// resulting link in the photo log.
type ImgurUploadService struct {
	http     *resty.Client
	clientID string
	storage  photoStorage
	mu       sync.Mutex
}

type photoStorage interface {
	GetPhotoLog() ([]models.PhotoEntry, error)
	SaveAllPhotoLog(entries []models.PhotoEntry) error
}

type imgurResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Link string `json:"link"`
	} `json:"data"`
}

func NewImgurUploadService(clientID string, storage photoStorage) *ImgurUploadService {
	return &ImgurUploadService{
		http:     resty.New(),
		clientID: clientID,
		storage:  storage,
	}
}

// Upload ships the image to Imgur (base64 form field, Client-ID auth) and
// returns the hosted link.
func (u *ImgurUploadService) Upload(ctx context.Context, filename string, data []byte, user string) (string, error) {
	if u.clientID == "" {
		return "", ErrUploadNotConfigured
	}

	var parsed imgurResponse
	resp, err := u.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Client-ID "+u.clientID).
		SetFormData(map[string]string{"image": base64.StdEncoding.EncodeToString(data)}).
		SetResult(&parsed).
		Post(imgurEndpoint)
	if err != nil {
		return "", fmt.Errorf("uploading image: %w", err)
	}
	if resp.StatusCode() != http.StatusOK || !parsed.Success || parsed.Data.Link == "" {
		return "", fmt.Errorf("image host rejected upload: status %d", resp.StatusCode())
	}

	u.appendPhotoLog(models.PhotoEntry{
		Link: parsed.Data.Link,
		User: user,
		Date: utils.NowStamp(),
	})

	return parsed.Data.Link, nil
}

// appendPhotoLog is best effort: a lost log line must not fail the upload
// that already happened.
func (u *ImgurUploadService) appendPhotoLog(entry models.PhotoEntry) {
	u.mu.Lock()
	defer u.mu.Unlock()

	entries, err := u.storage.GetPhotoLog()
	if err == nil {
		entries = append(entries, entry)
		err = u.storage.SaveAllPhotoLog(entries)
	}
	if err != nil {
		logger.Log.Error("appending photo log entry", zap.Error(err))
	}
}
