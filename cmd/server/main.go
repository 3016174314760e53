package main // Entry point package

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/iliyamo/experience-booking/internal/config"
	"github.com/iliyamo/experience-booking/internal/database"
	"github.com/iliyamo/experience-booking/internal/handler"
	"github.com/iliyamo/experience-booking/internal/logging"
	"github.com/iliyamo/experience-booking/internal/queue"
	"github.com/iliyamo/experience-booking/internal/repository"
	"github.com/iliyamo/experience-booking/internal/router"
	"github.com/iliyamo/experience-booking/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config")
	}
	logging.Init(cfg.Env, cfg.LogLevel)

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.DBMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			logrus.WithError(err).Fatal("migrate")
		}
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		logrus.Warn("redis unavailable: response cache and rate limiting disabled")
	} else {
		defer rdb.Close()
	}

	var events handler.EventPublisher
	if cfg.Queue.PublishEnabled {
		pub := queue.NewPublisher(cfg.Queue.URL)
		defer pub.Close()
		events = pub
	}

	users := repository.NewUserRepo(db)
	bookings := service.NewBookingService(repository.NewBookingRepo(db), nil)
	catalog := service.NewCatalogService(repository.NewExperienceRepo(db), nil)
	promos := service.NewPromoService(repository.NewPromoRepo(db), nil)
	auth := service.NewAuthService(users, cfg.JWTSecret, cfg.JWTTTL, cfg.BcryptCost)

	e := router.New(router.Deps{
		Cfg:         cfg,
		CacheCfg:    config.LoadCacheConfig(),
		RateCfg:     config.LoadRateLimitConfig(),
		Redis:       rdb,
		Auth:        handler.NewAuthHandler(auth),
		Experiences: handler.NewExperienceHandler(catalog),
		Promos:      handler.NewPromoHandler(promos),
		Bookings:    handler.NewBookingHandler(bookings, events),
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := ":" + cfg.Port
		logrus.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env}).Info("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logrus.Info("shutting down")
		return e.Shutdown(shutdownCtx)
	})

	if cfg.Queue.ConsumerEnabled {
		c := &queue.Consumer{URL: cfg.Queue.URL, LogDir: cfg.Queue.LogDir}
		g.Go(func() error { return c.Run(gctx) })
	}

	if err := g.Wait(); err != nil {
		logrus.WithError(err).Error("server exited")
		os.Exit(1)
	}
}
