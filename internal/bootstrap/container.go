package bootstrap

import (
	"context"
	"log"

	"synapsex-be/internal/config"
	"synapsex-be/internal/controller"
	"synapsex-be/internal/pkg/logger"
	"synapsex-be/internal/repository/unitofwork"
	"synapsex-be/internal/service"
	"synapsex-be/internal/websocket"

	pkgNats "synapsex-be/pkg/nats"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	StoryController controller.IStoryController

	// Background services, exposed for main.go to run.
	ReaperService service.IReaperService

	WebSocketHub *websocket.Hub

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// NATS. The API stays up without it; events are best-effort.
	var publisher service.EventPublisher
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		publisher = natsPub
	}
	natsSub, err := pkgNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}

	// WebSocket hub for owner activity pushes
	wsLogger := logger.NewIsolatedLogger("logs/push.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	storyService := service.NewStoryService(
		uowFactory,
		publisher,
		sysLogger,
		cfg.Story.TTL,
		cfg.Story.MessageLimit,
	)

	reaperService := service.NewReaperService(
		uowFactory,
		rdb,
		sysLogger,
		cfg.Story.Retention,
		cfg.Story.ReaperInterval,
	)

	// Bridge stream events to live pushes
	if natsSub != nil {
		notifService := service.NewNotificationService(natsSub, wsHub, wsLogger)
		if err := notifService.Start(); err != nil {
			log.Printf("[WARN] Failed to start notification consumer: %v", err)
		}
	}

	return &Container{
		StoryController: controller.NewStoryController(storyService),
		ReaperService:   reaperService,
		WebSocketHub:    wsHub,
		Logger:          sysLogger,
	}
}
