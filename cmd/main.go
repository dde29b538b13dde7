package main

import (
	"net/http"
	"time"

	"github.com/agreetime/agreetime-backend/internal/adapters/config"
	"github.com/agreetime/agreetime-backend/internal/adapters/controller/http/handlers"
	"github.com/agreetime/agreetime-backend/internal/adapters/controller/http/middlewares"
	"github.com/agreetime/agreetime-backend/internal/adapters/controller/http/routers"
	postgresStorage "github.com/agreetime/agreetime-backend/internal/adapters/database/postgres"
	"github.com/agreetime/agreetime-backend/internal/adapters/logger"
	"github.com/agreetime/agreetime-backend/internal/domain/service"
	"github.com/agreetime/agreetime-backend/pkg/smtp"
	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"

	_ "time/tzdata"
)

func main() {
	cfg := config.Get()

	eventsLogger, err := logger.Named("events")
	if err != nil {
		logger.Log.Panic(err)
	}
	approvalsLogger, err := logger.Named("approvals")
	if err != nil {
		logger.Log.Panic(err)
	}
	notifyLogger, err := logger.Named("notify")
	if err != nil {
		logger.Log.Panic(err)
	}
	httpLogger, err := logger.Named("http")
	if err != nil {
		logger.Log.Panic(err)
	}

	familyStorage := postgresStorage.NewFamilyStorage(cfg.Database)
	userStorage := postgresStorage.NewUserStorage(cfg.Database)
	eventStorage := postgresStorage.NewEventStorage(cfg.Database)
	participantStorage := postgresStorage.NewEventParticipantStorage(cfg.Database)
	approverStorage := postgresStorage.NewEventApproverStorage(cfg.Database)
	notificationStorage := postgresStorage.NewNotificationStorage(cfg.Database)
	commentStorage := postgresStorage.NewCommentStorage(cfg.Database)
	attachmentStorage := postgresStorage.NewAttachmentStorage(cfg.Database)
	historyStorage := postgresStorage.NewEventHistoryStorage(cfg.Database)

	mailClient := smtp.NewClient(gomail.NewDialer(
		viper.GetString("service.smtp.host"),
		viper.GetInt("service.smtp.port"),
		viper.GetString("service.smtp.user"),
		viper.GetString("service.smtp.pass"),
	))

	notificationService := service.NewNotificationService(
		notifyLogger,
		notificationStorage,
		userStorage,
		cfg.Redis.Notifications,
		mailClient,
	)
	eventService := service.NewEventService(
		eventsLogger,
		eventStorage,
		userStorage,
		participantStorage,
		historyStorage,
		notificationService,
	)
	approvalService := service.NewApprovalService(
		approvalsLogger,
		approverStorage,
		eventStorage,
		historyStorage,
		notificationService,
	)
	commentService := service.NewCommentService(commentStorage, eventStorage)
	attachmentService := service.NewAttachmentService(attachmentStorage, eventStorage)
	familyService := service.NewFamilyService(familyStorage)
	userService := service.NewUserService(userStorage)

	sweepInterval := viper.GetDuration("approval.sweep-interval")
	if sweepInterval == 0 {
		sweepInterval = time.Hour
	}
	approvalService.StartExpiryScheduler(sweepInterval)

	h := handlers.New(httpLogger, eventService, approvalService, notificationService, commentService, attachmentService, familyService, userService)
	router := middlewares.JWT(viper.GetString("auth.jwt-secret"))(routers.MainRouter(h))

	addr := viper.GetString("server.addr")
	logger.Log.Infof("Listening on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Log.Panicf("Server stopped: %v", err)
	}
}
