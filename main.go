package main

import (
	"context"
	"log"
	"time"

	"theatre-booking/cmd"
	"theatre-booking/internal/data/entity"
	"theatre-booking/internal/data/repository"
	"theatre-booking/internal/wire"
	"theatre-booking/pkg/database"
	"theatre-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Apply schema migrations
	if err := database.Migrate(context.Background(), db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Seed the bootstrap admin account when configured
	if err := seedAdmin(context.Background(), repos, config, logger); err != nil {
		logger.Fatal("Failed to seed admin account", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

// seedAdmin creates the admin account from ADMIN_EMAIL/ADMIN_PASSWORD if it
// does not exist yet. A no-op when the credentials are unset.
func seedAdmin(ctx context.Context, repos *repository.Repository, config *utils.Config, logger *zap.Logger) error {
	if config.Admin.Email == "" || config.Admin.Password == "" {
		return nil
	}

	existing, err := repos.User.FindByEmail(ctx, config.Admin.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashed, err := utils.HashPassword(config.Admin.Password)
	if err != nil {
		return err
	}

	now := time.Now()
	admin := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     "admin",
		Email:        config.Admin.Email,
		PasswordHash: hashed,
		Role:         entity.RoleAdmin,
		IsActive:     true,
	}

	if err := repos.User.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("Admin account seeded", zap.String("email", admin.Email))
	return nil
}
