package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"

	"github.com/jobportal/api/config"
	"github.com/jobportal/api/db"
	applicationhandler "github.com/jobportal/api/internal/application/handler"
	applicationrepo "github.com/jobportal/api/internal/application/repository/postgres"
	applicationservice "github.com/jobportal/api/internal/application/service"
	authhandler "github.com/jobportal/api/internal/auth/handler"
	authrepo "github.com/jobportal/api/internal/auth/repository/postgres"
	authservice "github.com/jobportal/api/internal/auth/service"
	dashboardhandler "github.com/jobportal/api/internal/dashboard/handler"
	dashboardrepo "github.com/jobportal/api/internal/dashboard/repository/postgres"
	dashboardservice "github.com/jobportal/api/internal/dashboard/service"
	jobhandler "github.com/jobportal/api/internal/job/handler"
	jobrepo "github.com/jobportal/api/internal/job/repository/postgres"
	jobservice "github.com/jobportal/api/internal/job/service"
	recruiterhandler "github.com/jobportal/api/internal/recruiter/handler"
	recruiterrepo "github.com/jobportal/api/internal/recruiter/repository/postgres"
	recruiterservice "github.com/jobportal/api/internal/recruiter/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	if err := db.EnsureAdminUser(ctx, pool, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("seed: %v", err)
	}

	userRepo := authrepo.NewUserRepository(pool)
	refreshTokenRepo := authrepo.NewRefreshTokenRepository(pool)
	recruiterRepo := recruiterrepo.NewRecruiterRepository(pool)
	jobRepo := jobrepo.NewJobRepository(pool)
	applicationRepo := applicationrepo.NewApplicationRepository(pool)
	statsRepo := dashboardrepo.NewStatsRepository(pool)

	tokenService := authservice.NewTokenService(cfg.JWTSecret, cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	authSvc := authservice.NewAuthService(userRepo, refreshTokenRepo, tokenService, authservice.NewBcryptHasher())
	recruiterSvc := recruiterservice.NewRecruiterService(recruiterRepo)
	jobSvc := jobservice.NewJobService(jobRepo, recruiterRepo)
	applicationSvc := applicationservice.NewApplicationService(applicationRepo, jobRepo, userRepo)
	dashboardSvc := dashboardservice.NewDashboardService(statsRepo, userRepo, recruiterRepo)

	authMiddleware := authhandler.NewAuthMiddleware(tokenService)

	app := fiber.New(fiber.Config{
		AppName: "jobportal-api",
	})
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(authMiddleware.Authenticate())

	authhandler.RegisterRoutes(app, authhandler.NewAuthHandler(authSvc), authMiddleware)
	recruiterhandler.RegisterRoutes(app, recruiterhandler.NewRecruiterHandler(recruiterSvc), authMiddleware)
	jobhandler.RegisterRoutes(app, jobhandler.NewJobHandler(jobSvc), authMiddleware)
	applicationhandler.RegisterRoutes(app, applicationhandler.NewApplicationHandler(applicationSvc), authMiddleware)
	dashboardhandler.RegisterRoutes(app,
		dashboardhandler.NewDashboardHandler(dashboardSvc, authSvc), authMiddleware)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
