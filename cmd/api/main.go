package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"musicschool/internal/config"
	"musicschool/internal/database"
	"musicschool/internal/domain/admission"
	"musicschool/internal/domain/auth"
	"musicschool/internal/domain/course"
	"musicschool/internal/domain/lead"
	"musicschool/internal/domain/notification"
	"musicschool/internal/domain/user"
	"musicschool/internal/jobs"
	"musicschool/internal/logging"
	"musicschool/internal/middleware"
	jwtsvc "musicschool/internal/pkg/jwt"
)

func migrateModels() []any {
	models := []any{user.Model()}
	models = append(models, course.Models()...)
	return append(models, admission.Model(), notification.Model())
}

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

	if err := database.Migrate(db, migrateModels(), lead.Schema); err != nil {
		log.Sugar.Fatalw("migration failed", "error", err)
	}

	sqlxDB, err := database.SQLX(db)
	if err != nil {
		log.Sugar.Fatalw("sqlx wrap failed", "error", err)
	}

	jwtService := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	// Repositories
	userRepo := user.NewRepository(db)
	leadRepo := lead.NewRepository(sqlxDB)
	courseRepo := course.NewRepository(db)
	admissionRepo := admission.NewRepository(db)
	notificationRepo := notification.NewRepository(db)

	// Services
	userService := user.NewService(userRepo)
	leadService := lead.NewService(leadRepo)
	courseService := course.NewService(courseRepo)
	admissionService := admission.NewService(admissionRepo, leadService, courseService, userRepo)
	notificationService := notification.NewService(notificationRepo, leadService, log.Sugar)
	authService := auth.NewService(userRepo, jwtService)

	// Handlers
	userHandler := user.NewHandler(userService)
	leadHandler := lead.NewHandler(leadService)
	courseHandler := course.NewHandler(courseService)
	admissionHandler := admission.NewHandler(admissionService)
	notificationHandler := notification.NewHandler(notificationService)
	authHandler := auth.NewHandler(authService)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(log.Sugar))
	r.Use(middleware.RequestLogger(log.Sugar))
	r.Use(middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	auth.RegisterRoutes(api, authHandler)

	authed := api.Group("")
	authed.Use(middleware.Auth(jwtService))
	user.RegisterRoutes(authed, userHandler)
	notification.RegisterRoutes(authed, notificationHandler)

	staff := api.Group("")
	staff.Use(middleware.Auth(jwtService), middleware.StaffOnly())
	lead.RegisterRoutes(staff, leadHandler)
	course.RegisterRoutes(staff, courseHandler)
	admission.RegisterRoutes(staff, admissionHandler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.FollowUpRemindersEnabled {
		runner := jobs.New(ctx, log.Sugar)
		runner.Every(cfg.JobInterval, "followup_reminders", func(ctx context.Context) error {
			_, err := notificationService.RemindDueFollowUps(ctx)
			return err
		})
		runner.Every(cfg.JobInterval, "notification_cleanup", func(ctx context.Context) error {
			return notificationService.Cleanup(ctx, cfg.NotificationRetentionDay)
		})
	}

	log.Sugar.Infow("starting server", "addr", cfg.HTTPAddr, "env", cfg.AppEnv)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Sugar.Fatalw("server stopped", "error", err)
	}
}
