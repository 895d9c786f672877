package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	_ "github.com/gestorpme/gestor_backend/cmd/docs"
	"github.com/gestorpme/gestor_backend/internal/adapters/database/mongodb"
	"github.com/gestorpme/gestor_backend/internal/core/services"
	"github.com/gestorpme/gestor_backend/internal/dto"
	"github.com/gestorpme/gestor_backend/internal/handlers"
	"github.com/gestorpme/gestor_backend/internal/middleware"
	"github.com/gestorpme/gestor_backend/internal/platform/config"
	"github.com/gestorpme/gestor_backend/internal/platform/mail"
	"github.com/gestorpme/gestor_backend/internal/report"
	"github.com/gestorpme/gestor_backend/pkg/database"
)

const logoPath = "assets/logo.png"

// @title Gestor Backend API
// @version 1.0
// @description Business management backend: employees, cash flow, bills, sales, inventory and PDF reports.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the document store handle. Connection failures are not
	// fatal: the server starts degraded and store-backed endpoints return
	// 503 until the store becomes reachable.
	store := database.NewMongo(cfg.MongoURI, cfg.MongoDatabase)
	store.OnConnect(mongodb.EnsureIndexes)
	if err := store.Connect(context.Background()); err != nil {
		logger.Warn("Document store unreachable at startup; running degraded", slog.String("error", err.Error()))
	} else {
		logger.Info("Document store connection established.")
	}
	defer func() {
		if cerr := store.Close(context.Background()); cerr != nil {
			logger.Error("Error closing document store", slog.String("error", cerr.Error()))
		}
	}()

	if err := dto.RegisterCustomValidations(); err != nil {
		logger.Error("Failed to register custom validations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	mailer := mail.NewRelay(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	renderer := report.NewRenderer(loadLogo(logger))

	repos := mongodb.NewRepositoryProvider(store)
	serviceContainer := services.NewServiceContainer(cfg, store, repos, mailer, renderer)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	authLimiter, err := buildAuthLimiter(cfg.AuthRateLimit)
	if err != nil {
		logger.Error("Invalid AUTH_RATE_LIMIT", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, authLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildAuthLimiter creates the in-memory rate limiter guarding the public
// auth endpoints. The format is ulule/limiter notation, e.g. "10-M".
func buildAuthLimiter(formatted string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}
	return limiter.New(memory.NewStore(), rate), nil
}

// loadLogo reads the report logo if present. Reports render without one
// otherwise.
func loadLogo(logger *slog.Logger) []byte {
	logo, err := os.ReadFile(logoPath)
	if err != nil {
		logger.Warn("Report logo not found; reports will render without it", slog.String("path", logoPath))
		return nil
	}
	return logo
}
