package main // Entry point package

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/educenter/room-scheduler/internal/config"
	"github.com/educenter/room-scheduler/internal/database"
	"github.com/educenter/room-scheduler/internal/demo"
	"github.com/educenter/room-scheduler/internal/handler"
	"github.com/educenter/room-scheduler/internal/middleware"
	"github.com/educenter/room-scheduler/internal/queue"
	"github.com/educenter/room-scheduler/internal/repository"
	"github.com/educenter/room-scheduler/internal/router"
	queue_publisher "github.com/educenter/room-scheduler/internal/service"
	"github.com/educenter/room-scheduler/migrations"
)

func main() {
	cfg := config.Load()

	// In demo mode the in-memory provider replaces MySQL entirely; the
	// service then runs self-contained with the sample dataset.
	var (
		rooms    handler.RoomStore
		catalogs handler.CatalogStore
		bookings handler.BookingStore
	)
	if cfg.DemoMode {
		log.Println("demo mode: serving the built-in sample dataset, MySQL disabled")
		p := demo.New()
		rooms, catalogs, bookings = p.Rooms, p.Catalogs, p.Bookings
	} else {
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("mysql: %v", err)
		}
		defer db.Close()
		if err := migrations.Up(db); err != nil {
			log.Fatalf("migrations: %v", err)
		}
		rooms = repository.NewRoomRepo(db)
		catalogs = repository.NewCatalogRepo(db)
		bookings = repository.NewBookingRepo(db)
	}

	h := handler.NewRoomHandler(rooms, catalogs, bookings, queue_publisher.NewPublisher())

	// Redis backs the response cache and the rate limiter; both degrade to
	// pass-throughs when the connection fails.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable: response cache and rate limiting disabled")
	}
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	router.RegisterRoutes(e)
	router.RegisterRooms(e, h, cacheMW)

	// The audit consumer reconnects forever on its own; a broker outage
	// only pauses the audit log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
