package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/experience-booking/internal/config"
	"github.com/iliyamo/experience-booking/internal/database"
	"github.com/iliyamo/experience-booking/internal/logging"
)

func main() {
	_ = godotenv.Load()

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

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := database.Migrate(ctx, db); err != nil {
		logrus.WithError(err).Fatal("migrate")
	}
	sum, err := database.Seed(ctx, db, time.Now())
	if err != nil {
		logrus.WithError(err).Fatal("seed")
	}
	logrus.WithFields(logrus.Fields{
		"experiences": sum.Experiences,
		"slots":       sum.Slots,
		"promo_codes": sum.PromoCodes,
	}).Info("database seeded")
}
