package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/drvince/womb-backend/internal/config"
	"github.com/drvince/womb-backend/internal/database"
	"github.com/drvince/womb-backend/internal/handler"
	"github.com/drvince/womb-backend/internal/mailer"
	"github.com/drvince/womb-backend/internal/queue"
	"github.com/drvince/womb-backend/internal/repository"
	"github.com/drvince/womb-backend/internal/router"
	"github.com/drvince/womb-backend/internal/service"
	"github.com/drvince/womb-backend/internal/utils"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	issuer, err := utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTAlgorithm)
	if err != nil {
		log.Fatalf("jwt: %v", err)
	}

	// Redis is optional; a nil client turns the rate limiter and the
	// response cache into pass-throughs.
	rdb := config.NewRedisClient(cfg.Redis)

	userRepo := repository.NewUserRepo(db)
	deviceRepo := repository.NewDeviceRepo(db)
	healthRepo := repository.NewHealthRepo(db)
	contentRepo := repository.NewContentRepo(db)

	mail := mailer.New(cfg)
	events := queue.NewPublisher(cfg.AMQPURL)
	users := service.NewUserService(userRepo, mail, events)

	if cfg.AMQPURL != "" {
		go func() {
			if err := queue.StartStatusConsumer(cfg.AMQPURL); err != nil {
				log.Printf("lifecycle-consumer: %v", err)
			}
		}()
	}

	authH := handler.NewAuthHandler(cfg, issuer, userRepo, mail)
	userAdminH := handler.NewUserAdminHandler(users)
	deviceH := handler.NewDeviceHandler(deviceRepo)
	healthH := handler.NewHealthMonitoringHandler(healthRepo)
	contentH := handler.NewContentHandler(contentRepo)
	publicH := handler.NewPublicHandler(contentRepo)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.CORS())

	router.RegisterPublic(e, db, publicH, cfg.Cache, rdb)
	authed := router.RegisterAuth(e, authH, userRepo, cfg.RateLimit, rdb)
	router.RegisterUserRoutes(authed, deviceH, healthH, contentH)
	router.RegisterAdminRoutes(authed, userAdminH, deviceH, healthH, contentH)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
