package main

import (
	"context"
	"log"

	"github.com/turagency/backoffice/internal/chat"
	router "github.com/turagency/backoffice/internal/http"
	"github.com/turagency/backoffice/internal/logger"
	"github.com/turagency/backoffice/internal/services"
	"github.com/turagency/backoffice/internal/store"
	"github.com/turagency/backoffice/internal/telegram"
	"github.com/turagency/backoffice/internal/utils"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	config := NewConfig()

	if err := logger.Initialize(config.logLevel, config.env); err != nil {
		log.Fatalf("Logger wasn't initialized due to %s", err)
	}

	storage, err := store.New(config.dataDir)
	if err != nil {
		log.Fatalf("Storage wasn't initialized due to %s", err)
	}

	telegramClient := telegram.New(config.telegramToken, config.telegramChatID)

	authService := services.NewAuthService(storage)
	if err := authService.EnsureAdmin(ctx, config.adminUsername, config.adminPassword); err != nil {
		log.Fatalf("Admin account wasn't seeded due to %s", err)
	}

	if telegramClient.Enabled() {
		telegram.StartBackupSchedule(ctx, telegramClient, config.dataDir, config.backupInterval)
	}

	utils.HandleTerminationProcess(func() {
		cancel()
		_ = logger.Log.Sync()
	})

	log.Printf("Running server on %s\n", config.endpoint)

	router.New(
		router.Config{Endpoint: config.endpoint, UploadsDir: config.uploadsDir},
		authService,
		services.NewJWTService(config.authSecretKey),
		services.NewFinanceService(storage),
		services.NewRentacarService(storage),
		services.NewRecycleBinService(storage),
		services.NewPartnerService(storage),
		services.NewBookkeepingService(storage),
		services.NewAuditLogService(storage, telegramClient),
		services.NewImgurUploadService(config.imgurClientID, storage),
		chat.NewHub(storage),
	).Run()
}
