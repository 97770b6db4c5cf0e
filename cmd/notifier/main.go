package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"musicschool/internal/config"
	"musicschool/internal/database"
	"musicschool/internal/domain/lead"
	"musicschool/internal/domain/notification"
	"musicschool/internal/jobs"
	"musicschool/internal/logging"
)

// Standalone scheduler for deployments that run the reminder and cleanup
// jobs outside the API process.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logging.Init(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	defer log.Closer()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Sugar.Fatalw("database connection failed", "error", err)
	}

	sqlxDB, err := database.SQLX(db)
	if err != nil {
		log.Sugar.Fatalw("sqlx wrap failed", "error", err)
	}

	leadService := lead.NewService(lead.NewRepository(sqlxDB))
	notificationService := notification.NewService(notification.NewRepository(db), leadService, log.Sugar)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := jobs.New(ctx, log.Sugar)

	if cfg.FollowUpRemindersEnabled {
		runner.Every(cfg.JobInterval, "followup_reminders", func(ctx context.Context) error {
			_, err := notificationService.RemindDueFollowUps(ctx)
			return err
		})
	}

	runner.Every(cfg.JobInterval, "notification_cleanup", func(ctx context.Context) error {
		return notificationService.Cleanup(ctx, cfg.NotificationRetentionDay)
	})

	log.Sugar.Infow("notifier started", "interval", cfg.JobInterval)
	<-ctx.Done()
	log.Sugar.Infow("notifier stopped")
}
