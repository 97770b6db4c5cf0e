package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"musicschool/internal/config"
	"musicschool/internal/database"
	"musicschool/internal/domain/admission"
	"musicschool/internal/domain/course"
	"musicschool/internal/domain/lead"
	"musicschool/internal/domain/notification"
	"musicschool/internal/domain/user"
	"musicschool/internal/logging"
)

// Seed creates the schema and the minimum data a fresh install needs:
// the default pipeline stages, a handful of instruments and the first
// super admin account.
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

	models := []any{user.Model()}
	models = append(models, course.Models()...)
	models = append(models, admission.Model(), notification.Model())
	if err := database.Migrate(db, models, lead.Schema); err != nil {
		log.Sugar.Fatalw("migration failed", "error", err)
	}

	sqlxDB, err := database.SQLX(db)
	if err != nil {
		log.Sugar.Fatalw("sqlx wrap failed", "error", err)
	}

	ctx := context.Background()

	seedStages(ctx, log, lead.NewRepository(sqlxDB))
	seedInstruments(ctx, log, course.NewRepository(db))
	seedSuperAdmin(ctx, log, user.NewRepository(db))

	log.Sugar.Infow("seed complete")
}

func seedStages(ctx context.Context, log *logging.Log, repo *lead.Repository) {
	existing, err := repo.ListStages(ctx)
	if err != nil {
		log.Sugar.Fatalw("listing stages failed", "error", err)
	}
	if len(existing) > 0 {
		log.Sugar.Infow("stages already seeded", "count", len(existing))
		return
	}

	stages := []*lead.Stage{
		{Name: "New", Color: "#60a5fa", SortOrder: 1},
		{Name: "Contacted", Color: "#fbbf24", SortOrder: 2},
		{Name: "Trial Lesson", Color: "#a78bfa", SortOrder: 3},
		{Name: "Enrolled", Color: "#34d399", SortOrder: 4, IsOnboarded: true},
	}

	for _, s := range stages {
		s.ID = uuid.NewString()
		s.IsActive = true
		if err := repo.CreateStage(ctx, s); err != nil {
			log.Sugar.Fatalw("seeding stage failed", "stage", s.Name, "error", err)
		}
		log.Sugar.Infow("stage created", "name", s.Name, "id", s.ID)
	}
}

func seedInstruments(ctx context.Context, log *logging.Log, repo *course.Repository) {
	existing, err := repo.ListInstruments(ctx)
	if err != nil {
		log.Sugar.Fatalw("listing instruments failed", "error", err)
	}
	if len(existing) > 0 {
		log.Sugar.Infow("instruments already seeded", "count", len(existing))
		return
	}

	for _, name := range []string{"Piano", "Guitar", "Violin", "Drums", "Vocals"} {
		inst := &course.Instrument{
			ID:     uuid.NewString(),
			Name:   name,
			Active: true,
		}
		if err := repo.CreateInstrument(ctx, inst); err != nil {
			log.Sugar.Fatalw("seeding instrument failed", "instrument", name, "error", err)
		}
		log.Sugar.Infow("instrument created", "name", name, "id", inst.ID)
	}
}

func seedSuperAdmin(ctx context.Context, log *logging.Log, repo *user.Repository) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@musicschool.local"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	exists, err := repo.ExistsByEmail(ctx, email)
	if err != nil {
		log.Sugar.Fatalw("checking admin account failed", "error", err)
	}
	if exists {
		log.Sugar.Infow("super admin already exists", "email", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Sugar.Fatalw("hashing password failed", "error", err)
	}

	admin := &user.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         user.RoleSuperAdmin,
		Name:         "Super Admin",
		Active:       true,
	}
	if err := repo.Create(ctx, admin); err != nil {
		log.Sugar.Fatalw("seeding super admin failed", "error", err)
	}
	log.Sugar.Infow("super admin created", "email", email, "id", admin.ID)
}
