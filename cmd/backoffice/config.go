package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	endpoint       string
	dataDir        string
	uploadsDir     string
	logLevel       string
	env            string
	authSecretKey  string
	adminUsername  string
	adminPassword  string
	telegramToken  string
	telegramChatID string
	imgurClientID  string
	backupInterval time.Duration
}

func generateRandomString(length int) string {
	b := make([]byte, length)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(b)
}

func NewConfig() Config {
	// Missing .env is fine, the environment may be set by the supervisor.
	_ = godotenv.Load()

	var (
		endpoint   string
		dataDir    string
		uploadsDir string
	)

	flag.StringVar(&endpoint, "a", "localhost:8090", "address and port to run server")
	flag.StringVar(&dataDir, "d", "data", "directory for the JSON collections")
	flag.StringVar(&uploadsDir, "u", "uploads", "directory for uploaded id images")
	flag.Parse()

	if address := os.Getenv("RUN_ADDRESS"); address != "" {
		endpoint = address
	}

	if d := os.Getenv("DATA_DIR"); d != "" {
		dataDir = d
	}

	if u := os.Getenv("UPLOADS_DIR"); u != "" {
		uploadsDir = u
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "error"
	}

	env := os.Getenv("ENV")
	if env == "" {
		env = "production"
	}

	authSecretKey := os.Getenv("AUTH_SECRET_KEY")
	if authSecretKey == "" {
		if env == "production" {
			authSecretKey = generateRandomString(10)
			log.Printf("WARNING: AUTH_SECRET_KEY has to be defined for production environment\n")
		} else {
			authSecretKey = "development-key"
		}
	}

	// Zero disables the backup loop.
	backupInterval := 2 * time.Hour
	if hours := os.Getenv("BACKUP_INTERVAL_HOURS"); hours != "" {
		parsed, err := strconv.Atoi(hours)
		if err != nil || parsed < 0 {
			log.Printf("WARNING: invalid BACKUP_INTERVAL_HOURS %q, keeping 2\n", hours)
		} else {
			backupInterval = time.Duration(parsed) * time.Hour
		}
	}

	return Config{
		endpoint:       endpoint,
		dataDir:        dataDir,
		uploadsDir:     uploadsDir,
		logLevel:       logLevel,
		env:            env,
		authSecretKey:  authSecretKey,
		adminUsername:  os.Getenv("ADMIN_USERNAME"),
		adminPassword:  os.Getenv("ADMIN_PASSWORD"),
		telegramToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		telegramChatID: os.Getenv("TELEGRAM_CHAT_ID"),
		imgurClientID:  os.Getenv("IMGUR_CLIENT_ID"),
		backupInterval: backupInterval,
	}
}
