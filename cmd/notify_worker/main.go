package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/growth-sessions/config"
	"github.com/oksasatya/growth-sessions/internal/application"
	"github.com/oksasatya/growth-sessions/internal/common/clock"
	"github.com/oksasatya/growth-sessions/internal/infrastructure/discord"
	pginfra "github.com/oksasatya/growth-sessions/internal/infrastructure/postgres"
	"github.com/oksasatya/growth-sessions/internal/notification"
	"github.com/oksasatya/growth-sessions/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-notify-worker", cfg.Env, cfg.LogLevel)

	sink, dc, err := notification.NewDiscordSinkFromConfig(cfg, logger)
	if err != nil {
		log.Fatalf("discord: %v", err)
	}

	ctx, stopCtx := context.WithCancel(context.Background())
	defer stopCtx()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife, cfg.Location().String())
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	loc := cfg.Location()
	clk := &clock.DefaultClock{}
	sessions := application.NewGrowthSessionService(
		pginfra.NewGrowthSessionRepository(pool, loc),
		pginfra.NewCommentRepository(pool),
		pginfra.NewUserRepository(pool),
		nil, clk, loc, cfg.DefaultEnd(), nil, logger,
	)

	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()
	channels := application.NewChannelService(pginfra.NewDiscordChannelRepository(pool), rdb, 0, logger)

	scheduler := cron.New(cron.WithLocation(loc))
	if dc != nil {
		scheduleJobs(ctx, scheduler, cfg, logger, sessions, channels, dc)
	}
	scheduler.Start()

	done := make(chan struct{})
	if cfg.RabbitMQURL != "" {
		conn, ch, msgs, err := helpers.ConsumeQueue(cfg.RabbitMQURL, cfg.RabbitMQNotifyQueue, 16)
		if err != nil {
			log.Fatalf("amqp consume: %v", err)
		}
		defer func() { _ = conn.Close() }()
		defer func() { _ = ch.Close() }()

		go func() {
			defer close(done)
			for msg := range msgs {
				c, cancel := context.WithTimeout(ctx, 15*time.Second)
				outcome, err := notification.Process(c, sink, msg.Body, msg.Redelivered)
				cancel()
				if err != nil {
					logger.WithError(err).WithFields(logrus.Fields{"outcome": outcome.String(), "message_id": msg.MessageId}).Warn("notification not delivered")
				}
				switch outcome {
				case notification.Ack:
					_ = msg.Ack(false)
				case notification.Requeue:
					_ = msg.Nack(false, true)
				default:
					_ = msg.Nack(false, false)
				}
			}
		}()
		logger.WithField("queue", cfg.RabbitMQNotifyQueue).Info("notify worker listening")
	} else {
		close(done)
		logger.Warn("RABBITMQ_URL not set; only scheduled jobs will run")
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down...")
	<-scheduler.Stop().Done()
	stopCtx()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}

func scheduleJobs(ctx context.Context, scheduler *cron.Cron, cfg *config.Config, logger *logrus.Logger, sessions *application.GrowthSessionService, channels *application.ChannelService, dc *discord.Client) {
	if cfg.DigestCron != "" {
		_, err := scheduler.AddFunc(cfg.DigestCron, func() {
			today := sessions.Today()
			list, err := sessions.OnDay(ctx, today)
			if err != nil {
				logger.WithError(err).Error("digest: list sessions failed")
				return
			}
			posted, err := notification.PostDigest(ctx, dc, cfg.DiscordDefaultChannelID, today, list)
			if err != nil {
				logger.WithError(err).Error("digest: post failed")
				return
			}
			logger.WithFields(logrus.Fields{"date": today.ToDateString(), "posted": posted}).Info("daily digest")
		})
		if err != nil {
			log.Fatalf("invalid DIGEST_CRON %q: %v", cfg.DigestCron, err)
		}
	}
	if cfg.ChannelSyncCron != "" {
		sync := func() {
			if _, err := channels.Sync(ctx, dc); err != nil {
				logger.WithError(err).Error("discord channel sync failed")
			}
		}
		if _, err := scheduler.AddFunc(cfg.ChannelSyncCron, sync); err != nil {
			log.Fatalf("invalid CHANNEL_SYNC_CRON %q: %v", cfg.ChannelSyncCron, err)
		}
		go sync()
	}
}
