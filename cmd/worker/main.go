package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"lonelywalls-events/internal/config"
	"lonelywalls-events/internal/events"
	"lonelywalls-events/internal/handler"
	"lonelywalls-events/internal/middleware"
	"lonelywalls-events/internal/push"
	"lonelywalls-events/internal/repository"
	"lonelywalls-events/internal/search"
	"lonelywalls-events/internal/service"
	"lonelywalls-events/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	rdb, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v (event dedupe disabled)", err)
		rdb = nil
	}
	if rdb != nil {
		defer rdb.Close()
	}

	es, err := config.NewElasticClient(cfg)
	if err != nil {
		log.Fatalf("Failed to build search client: %v", err)
	}
	indexer := search.NewClient(es)

	var pusher push.Sender
	if messagingClient, err := config.NewMessagingClient(ctx, cfg); err != nil {
		log.Printf("Warning: Failed to initialize FCM: %v (push delivery disabled)", err)
	} else {
		pusher = push.NewFCMSender(messagingClient)
	}

	var media storage.MediaStore
	if minioClient, err := config.NewMinIOClient(cfg); err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (image cleanup disabled)", err)
	} else {
		media = storage.NewMinIOStore(minioClient, cfg.MinIOBucket)
	}

	publisher := events.NewPublisher(cfg.AMQPURL)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, indexer, pusher, media, publisher, cfg)
	handlers := handler.NewHandlers(services)

	dispatcher := service.NewDispatcher(services)
	consumer := events.NewConsumer(cfg.AMQPURL, rdb, cfg.EventDedupeTTL, dispatcher.Handle)
	go func() {
		if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
			log.Fatalf("Event consumer stopped: %v", err)
		}
	}()

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PATCH, OPTIONS",
	}))

	setupRoutes(app, handlers)

	go func() {
		<-ctx.Done()
		_ = app.Shutdown()
	}()

	log.Printf("Worker listening on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	v1.Post("/search", h.Search.Query)

	users := v1.Group("/users/:userId")
	users.Get("/notifications", h.Notification.List)
	users.Get("/notifications/unseen-count", h.Notification.UnseenCount)
	users.Post("/notifications/seen-all", h.Notification.MarkAllSeen)

	v1.Patch("/notifications/:id/seen", h.Notification.MarkSeen)
}
