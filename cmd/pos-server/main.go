package main

import (
	"context"

	log "github.com/sirupsen/logrus"

	_ "github.com/vanitalunch/pos-backend/docs"
	"github.com/vanitalunch/pos-backend/internal/config"
	"github.com/vanitalunch/pos-backend/internal/db"
	"github.com/vanitalunch/pos-backend/internal/logging"
	"github.com/vanitalunch/pos-backend/internal/menu"
	"github.com/vanitalunch/pos-backend/internal/notify"
	"github.com/vanitalunch/pos-backend/internal/order"
)

// @title        Vanita Lunch Home POS API
// @version      1.0
// @description  Restaurant point-of-sale backend: menu catalog, orders, and a real-time admin channel.
// @BasePath     /api
func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.LogFile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.WithError(err).Fatal("postgres connect failed")
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		log.WithError(err).Fatal("schema migration failed")
	}
	if cfg.SeedMenu {
		if err := db.SeedMenu(ctx, pool); err != nil {
			log.WithError(err).Warn("menu seed failed")
		}
	}

	hub := notify.NewHub()
	var sink notify.Sink = hub
	if len(cfg.KafkaBrokers) > 0 {
		ks := notify.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer ks.Close()
		sink = notify.Multi{hub, ks}
		log.WithField("topic", cfg.KafkaTopic).Info("mirroring order events to kafka")
	}

	r := newRouter(menu.NewPGRepo(pool), order.NewPGRepo(pool), hub, sink, cfg.CORSOrigins)

	log.WithField("addr", cfg.HTTPAddr).Info("pos-server listening")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
